// Package catalog объединяет встроенный каталог с товарами, добавленными пользователем,
// и строит отфильтрованную выдачу для экранов.
package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/persist"
	"github.com/mmeshcher/shopstate/internal/validation"
)

// ErrProductNotFound возвращается, если товара нет ни в одном источнике.
var ErrProductNotFound = errors.New("product not found")

const currentSellerID = "current_user"

// Saver ставит значение ключа в очередь на сохранение.
type Saver interface {
	SaveJSON(key string, v any)
}

// Option настраивает Store.
type Option func(*Store)

// WithBuiltin заменяет встроенный каталог.
func WithBuiltin(products []model.Product) Option {
	return func(s *Store) {
		s.builtin = append([]model.Product(nil), products...)
	}
}

// WithClock задаёт источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store хранит пользовательские товары и строит выдачу каталога.
type Store struct {
	kv     persist.KV
	saver  Saver
	logger *zap.Logger

	builtin []model.Product
	now     func() time.Time

	mu   sync.RWMutex
	user []model.Product
}

// NewStore создаёт каталог без пользовательских товаров.
func NewStore(kv persist.KV, saver Saver, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		saver:   saver,
		logger:  logger,
		builtin: Builtin(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reload перечитывает пользовательские товары из хранилища.
// Повреждённые данные приводят к пустому набору.
func (s *Store) Reload(ctx context.Context) {
	var products []model.Product
	if _, err := persist.LoadJSON(ctx, s.kv, model.KeyUserProducts, &products); err != nil {
		s.logger.Warn("load user products error", zap.Error(err))
		products = nil
	}

	kept := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !model.IsValidPrice(p.Price) {
			s.logger.Warn("dropping user product with invalid price", zap.String("id", p.ID))
			continue
		}
		p.IsUserGenerated = true
		kept = append(kept, p)
	}

	s.mu.Lock()
	s.user = kept
	s.mu.Unlock()
}

// Submit проверяет форму, создаёт пользовательский товар и ставит его первым в списке.
func (s *Store) Submit(d model.ProductDraft) (model.Product, error) {
	if err := validation.ValidateProductDraft(d); err != nil {
		return model.Product{}, err
	}

	now := s.now().UTC()
	p := model.Product{
		ID:                "user_" + uuid.NewString(),
		Name:              strings.TrimSpace(d.Name),
		Description:       strings.TrimSpace(d.Description),
		Price:             d.Price,
		Category:          d.Category,
		Image:             d.Image,
		QuantityAvailable: d.Quantity,
		DeliveryMethod:    strings.TrimSpace(d.DeliveryMethod),
		IsUserGenerated:   true,
		DateAdded:         &now,
		SellerInfo: &model.SellerInfo{
			SellerID:  currentSellerID,
			AddedDate: now,
		},
		Specifications: &model.Specifications{
			Quantity: d.Quantity,
			Delivery: strings.TrimSpace(d.DeliveryMethod),
		},
	}

	s.mu.Lock()
	updated := make([]model.Product, 0, len(s.user)+1)
	updated = append(updated, p)
	updated = append(updated, s.user...)
	s.user = updated
	s.saver.SaveJSON(model.KeyUserProducts, updated)
	s.mu.Unlock()

	s.logger.Info("product submitted", zap.String("id", p.ID), zap.String("category", p.Category))
	return p, nil
}

// UserProducts возвращает копию пользовательских товаров, новые первыми.
func (s *Store) UserProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product(nil), s.user...)
}

// Compose строит выдачу по поисковой строке и категории.
func (s *Store) Compose(query, category string) ([]model.Product, error) {
	if !validation.IsValidFilterCategory(category) {
		return nil, validation.ErrUnknownCategory
	}
	return Filter(s.all(), query, category), nil
}

// Find ищет товар по идентификатору среди пользовательских и встроенных.
func (s *Store) Find(id string) (model.Product, error) {
	for _, p := range s.all() {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

func (s *Store) all() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]model.Product, 0, len(s.user)+len(s.builtin))
	res = append(res, s.user...)
	res = append(res, s.builtin...)
	return res
}

// Filter оставляет товары, чьё название содержит query без учёта регистра
// и чья категория совпадает с category, если это не Home.
// Запрос из одних пробелов фильтр по названию не включает.
func Filter(products []model.Product, query, category string) []model.Product {
	search := strings.TrimSpace(query) != ""
	q := strings.ToLower(query)

	res := make([]model.Product, 0, len(products))
	for _, p := range products {
		if search && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if category != model.CategoryAll && p.Category != category {
			continue
		}
		res = append(res, p)
	}
	return res
}
