// Package cart реализует хранилище корзины покупателя.
package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/persist"
)

// Saver ставит значение ключа в очередь на сохранение.
type Saver interface {
	SaveJSON(key string, v any)
}

// Store хранит позиции корзины в памяти и зеркалирует их в ключ cart.
type Store struct {
	kv     persist.KV
	saver  Saver
	logger *zap.Logger

	mu    sync.RWMutex
	items []model.LineItem
}

// NewStore создаёт пустую корзину.
func NewStore(kv persist.KV, saver Saver, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		saver:  saver,
		logger: logger,
		items:  []model.LineItem{},
	}
}

// Load восстанавливает корзину из постоянного хранилища.
// Отсутствующее или повреждённое значение даёт пустую корзину,
// позиции с ценой вне допустимого диапазона отбрасываются.
func (s *Store) Load(ctx context.Context) {
	var items []model.LineItem
	found, err := persist.LoadJSON(ctx, s.kv, model.KeyCart, &items)
	if err != nil {
		s.logger.Warn("load cart error", zap.Error(err))
	}
	if err != nil || !found {
		items = []model.LineItem{}
	}

	kept := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		if !model.IsValidPrice(it.Price) {
			s.logger.Warn("dropping cart item with invalid price", zap.String("id", it.ID))
			continue
		}
		it.Quantity = clampQuantity(it.Quantity)
		kept = append(kept, it)
	}
	items = kept

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Add добавляет новую позицию с количеством 1 из снимка товара.
// Повторное добавление того же товара создаёт ещё одну позицию.
func (s *Store) Add(ref model.ProductRef) model.LineItem {
	snap := ref.Snapshot()
	item := model.LineItem{
		ID:       snap.ID,
		Name:     snap.Name,
		Price:    snap.Price,
		Image:    snap.Image,
		Quantity: 1,
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.persistLocked()
	s.mu.Unlock()

	return item
}

// Remove удаляет все позиции с указанным идентификатором.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]model.LineItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return
	}
	s.items = kept
	s.persistLocked()
}

// UpdateQuantity задаёт количество для всех позиций с идентификатором.
// Значение приводится к диапазону [1, model.MaxQuantity]. Возвращает false, если позиции нет.
func (s *Store) UpdateQuantity(id string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setQuantityLocked(id, quantity)
}

// Increase увеличивает количество позиции на единицу.
func (s *Store) Increase(id string) bool {
	return s.step(id, 1)
}

// Decrease уменьшает количество позиции на единицу, не опускаясь ниже 1.
func (s *Store) Decrease(id string) bool {
	return s.step(id, -1)
}

func (s *Store) step(id string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.quantityLocked(id)
	if !ok {
		return false
	}
	return s.setQuantityLocked(id, current+delta)
}

func clampQuantity(quantity int) int {
	switch {
	case quantity < 1:
		return 1
	case quantity > model.MaxQuantity:
		return model.MaxQuantity
	}
	return quantity
}

func (s *Store) setQuantityLocked(id string, quantity int) bool {
	quantity = clampQuantity(quantity)
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			found = true
		}
	}
	if found {
		s.persistLocked()
	}
	return found
}

func (s *Store) quantityLocked(id string) (int, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it.Quantity, true
		}
	}
	return 0, false
}

// Clear очищает корзину.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = []model.LineItem{}
	s.persistLocked()
	s.mu.Unlock()
}

// Items возвращает копию позиций корзины.
func (s *Store) Items() []model.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]model.LineItem, len(s.items))
	copy(res, s.items)
	return res
}

// ItemCount возвращает суммарное количество единиц товара.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Subtotal возвращает сумму price*quantity по всем позициям.
func (s *Store) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var cents int64
	for _, it := range s.items {
		cents += it.PriceCents() * int64(it.Quantity)
	}
	return model.FromCents(cents)
}

func (s *Store) persistLocked() {
	snapshot := make([]model.LineItem, len(s.items))
	copy(snapshot, s.items)
	s.saver.SaveJSON(model.KeyCart, snapshot)
}
