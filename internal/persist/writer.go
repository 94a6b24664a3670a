// Package persist связывает хранилища состояния с постоянным хранилищем «ключ-значение».
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/shopstate/internal/repository"
)

// KV описывает контракт постоянного хранилища, используемый слоем состояния.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ErrCorrupt возвращается, если сохранённое значение не удалось декодировать.
var ErrCorrupt = errors.New("stored value is corrupt")

const defaultWriteTimeout = 5 * time.Second

type slot struct {
	pending *string
	running bool
}

// Writer сериализует записи по каждому ключу: одновременно выполняется
// не более одной записи, а новое значение заменяет ещё не начатое.
// Save не ждёт завершения записи; ошибки только логируются.
type Writer struct {
	kv      KV
	logger  *zap.Logger
	timeout time.Duration

	mu     sync.Mutex
	slots  map[string]*slot
	active int
	idle   chan struct{}
	closed bool
}

// NewWriter создаёт очередь записи поверх хранилища.
func NewWriter(kv KV, logger *zap.Logger, timeout time.Duration) *Writer {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return &Writer{
		kv:      kv,
		logger:  logger,
		timeout: timeout,
		slots:   make(map[string]*slot),
	}
}

// Save ставит значение ключа в очередь записи.
func (w *Writer) Save(key, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.logger.Warn("write after close dropped", zap.String("key", key))
		return
	}

	s, ok := w.slots[key]
	if !ok {
		s = &slot{}
		w.slots[key] = s
	}
	s.pending = &value

	if s.running {
		return
	}
	s.running = true
	w.active++
	go w.drain(key, s)
}

// SaveJSON кодирует значение в JSON и ставит его в очередь записи.
func (w *Writer) SaveJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.logger.Error("encode value error", zap.String("key", key), zap.Error(err))
		return
	}
	w.Save(key, string(data))
}

func (w *Writer) drain(key string, s *slot) {
	for {
		w.mu.Lock()
		if s.pending == nil {
			s.running = false
			w.active--
			if w.active == 0 && w.idle != nil {
				close(w.idle)
				w.idle = nil
			}
			w.mu.Unlock()
			return
		}
		value := *s.pending
		s.pending = nil
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		err := w.kv.Set(ctx, key, value)
		cancel()
		if err != nil {
			w.logger.Error("persist write error", zap.String("key", key), zap.Error(err))
		}
	}
}

// Flush ждёт, пока все поставленные в очередь записи завершатся.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	if w.active == 0 {
		w.mu.Unlock()
		return nil
	}
	if w.idle == nil {
		w.idle = make(chan struct{})
	}
	idle := w.idle
	w.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("flush: %w", ctx.Err())
	}
}

// Close перестаёт принимать записи и дожидается уже поставленных.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return w.Flush(ctx)
}

// LoadJSON читает ключ и декодирует JSON в dst.
// Возвращает false без ошибки, если ключ отсутствует.
func LoadJSON(ctx context.Context, kv KV, key string, dst any) (bool, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// LoadString читает строковое значение ключа.
func LoadString(ctx context.Context, kv KV, key string) (string, bool, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return raw, true, nil
}
