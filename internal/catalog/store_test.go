package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/persist"
	"github.com/mmeshcher/shopstate/internal/repository"
	"github.com/mmeshcher/shopstate/internal/validation"
)

type nopSaver struct{}

func (nopSaver) SaveJSON(key string, v any) {}

var (
	productA = model.Product{ID: "user_a", Name: "Handmade Vase", Price: 40, Category: "Furniture"}
	productB = model.Product{ID: "b", Name: "Gaming Laptop", Price: 1500, Category: "Electronic"}
	productC = model.Product{ID: "c", Name: "Yoga Mat", Price: 25, Category: "Fitness"}
)

func ids(products []model.Product) []string {
	res := make([]string, 0, len(products))
	for _, p := range products {
		res = append(res, p.ID)
	}
	return res
}

func seededStore(t *testing.T, user []model.Product) *Store {
	t.Helper()
	ctx := context.Background()

	kv := repository.NewMemoryKV()
	data, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, model.KeyUserProducts, string(data)))

	s := NewStore(kv, nopSaver{}, zap.NewNop(), WithBuiltin([]model.Product{productB, productC}))
	s.Reload(ctx)
	return s
}

func TestCompose_OrderingAndFiltering(t *testing.T) {
	s := seededStore(t, []model.Product{productA})

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{name: "home shows user first", query: "", category: "Home", want: []string{"user_a", "b", "c"}},
		{name: "category filter", query: "", category: "Electronic", want: []string{"b"}},
		{name: "search ignores home", query: "yoga", category: "Home", want: []string{"c"}},
		{name: "search is case insensitive", query: "MAT", category: "Home", want: []string{"c"}},
		{name: "filters compose", query: "yoga", category: "Electronic", want: []string{}},
		{name: "blank query", query: "   ", category: "Home", want: []string{"user_a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Compose(tt.query, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCompose_UnknownCategory(t *testing.T) {
	s := seededStore(t, nil)

	_, err := s.Compose("", "Toys")
	assert.ErrorIs(t, err, validation.ErrUnknownCategory)
}

func TestReload_TagsUserProducts(t *testing.T) {
	s := seededStore(t, []model.Product{productA})

	got, err := s.Compose("", "Home")
	require.NoError(t, err)
	assert.True(t, got[0].IsUserGenerated)
	assert.False(t, got[1].IsUserGenerated)
}

func TestReload_DropsProductsWithInvalidPrice(t *testing.T) {
	huge := model.Product{ID: "user_huge", Name: "Gold Bar", Price: 1e17, Category: "Jewelry"}
	s := seededStore(t, []model.Product{huge, productA})

	assert.Equal(t, []string{"user_a"}, ids(s.UserProducts()))

	_, err := s.Find("user_huge")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestReload_CorruptDataYieldsBuiltinOnly(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, model.KeyUserProducts, "[{not json"))

	s := NewStore(kv, nopSaver{}, zap.NewNop(), WithBuiltin([]model.Product{productB, productC}))
	s.Reload(ctx)

	got, err := s.Compose("", "Home")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(got))
}

func TestBuiltinCatalog(t *testing.T) {
	products := Builtin()
	require.Len(t, products, 46)

	seen := make(map[string]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, validation.IsValidProductCategory(p.Category), p.Category)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.Discount, 0)
		assert.LessOrEqual(t, p.Discount, 100)
	}

	products[0].Name = "changed"
	assert.Equal(t, "iPhone 14 Pro Max", Builtin()[0].Name)
}

func TestSubmit_PrependsAndPersists(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	kv := repository.NewMemoryKV()
	w := persist.NewWriter(kv, zap.NewNop(), time.Second)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s := NewStore(kv, w, zap.NewNop(), WithClock(func() time.Time { return fixed }))

	draft := model.ProductDraft{
		Name:           "  Ceramic Bowl ",
		Description:    "Glazed",
		Price:          18,
		Quantity:       4,
		Category:       "Appliance",
		DeliveryMethod: "Pickup",
	}

	first, err := s.Submit(draft)
	require.NoError(t, err)
	draft.Name = "Second Bowl"
	second, err := s.Submit(draft)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "user_"))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "Ceramic Bowl", first.Name)
	assert.Equal(t, 4, first.QuantityAvailable)
	require.NotNil(t, first.DateAdded)
	assert.Equal(t, fixed, *first.DateAdded)
	assert.Equal(t, "current_user", first.SellerInfo.SellerID)
	assert.Equal(t, &model.Specifications{Quantity: 4, Delivery: "Pickup"}, first.Specifications)

	got, err := s.Compose("bowl", "Home")
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID, first.ID}, ids(got))

	require.NoError(t, w.Flush(ctx))

	restarted := NewStore(kv, w, zap.NewNop())
	restarted.Reload(ctx)
	assert.Equal(t, []string{second.ID, first.ID}, ids(restarted.UserProducts()))
	assert.Equal(t, 4, restarted.UserProducts()[1].Specifications.Quantity)
}

func TestSubmit_RejectsInvalidDraft(t *testing.T) {
	s := NewStore(repository.NewMemoryKV(), nopSaver{}, zap.NewNop())

	_, err := s.Submit(model.ProductDraft{Name: "x", Description: "y", Price: 1, Quantity: 1, Category: "Home", DeliveryMethod: "z"})
	assert.ErrorIs(t, err, validation.ErrUnknownCategory)
	assert.Empty(t, s.UserProducts())
}

func TestFind(t *testing.T) {
	s := seededStore(t, []model.Product{productA})

	p, err := s.Find("user_a")
	require.NoError(t, err)
	assert.True(t, p.IsUserGenerated)

	p, err = s.Find("c")
	require.NoError(t, err)
	assert.Equal(t, "Yoga Mat", p.Name)

	_, err = s.Find("zzz")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestOriginalPrice(t *testing.T) {
	p := model.Product{Price: 799, Discount: 10}
	assert.Equal(t, 879.0, p.OriginalPrice())
}
