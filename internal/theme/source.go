package theme

import (
	"sync"

	"github.com/mmeshcher/shopstate/internal/model"
)

// SchemeSource — системный сигнал светлой/тёмной схемы хоста.
type SchemeSource interface {
	Current() model.ColorScheme
	Subscribe(fn func(model.ColorScheme)) (unsubscribe func())
}

// Broadcaster рассылает изменения системной схемы подписчикам.
type Broadcaster struct {
	mu        sync.Mutex
	current   model.ColorScheme
	listeners map[int]func(model.ColorScheme)
	nextID    int
}

// NewBroadcaster создаёт источник с начальной схемой.
func NewBroadcaster(initial model.ColorScheme) *Broadcaster {
	if initial != model.ColorSchemeDark {
		initial = model.ColorSchemeLight
	}
	return &Broadcaster{
		current:   initial,
		listeners: make(map[int]func(model.ColorScheme)),
	}
}

// Current возвращает последнюю опубликованную схему.
func (b *Broadcaster) Current() model.ColorScheme {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Subscribe регистрирует слушателя. Вызов возвращённой функции снимает подписку.
func (b *Broadcaster) Subscribe(fn func(model.ColorScheme)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Publish сообщает новую схему. Неизвестные значения трактуются как светлая схема.
func (b *Broadcaster) Publish(scheme model.ColorScheme) {
	if scheme != model.ColorSchemeDark {
		scheme = model.ColorSchemeLight
	}

	b.mu.Lock()
	b.current = scheme
	listeners := make([]func(model.ColorScheme), 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(scheme)
	}
}

// listenerCount возвращает число активных подписчиков.
func (b *Broadcaster) listenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
