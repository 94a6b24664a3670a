// Package theme хранит предпочтение режима отображения и вычисляет итоговую тему.
package theme

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/persist"
)

// Saver ставит строковое значение ключа в очередь на сохранение.
type Saver interface {
	Save(key, value string)
}

// Effective — итоговая тема с учётом режима и системной схемы.
type Effective struct {
	Mode   model.ThemeMode `json:"mode"`
	IsDark bool            `json:"isDark"`
	Theme  model.Theme     `json:"theme"`
}

// Store хранит выбранный режим и текущую системную схему.
type Store struct {
	kv     persist.KV
	saver  Saver
	logger *zap.Logger

	unsubscribe func()

	mu     sync.RWMutex
	mode   model.ThemeMode
	system model.ColorScheme
}

// NewStore создаёт хранилище с режимом system и подписывается на системный сигнал.
func NewStore(kv persist.KV, saver Saver, source SchemeSource, logger *zap.Logger) *Store {
	s := &Store{
		kv:     kv,
		saver:  saver,
		logger: logger,
		mode:   model.ThemeModeSystem,
		system: source.Current(),
	}
	s.unsubscribe = source.Subscribe(s.onSystemScheme)
	return s
}

func (s *Store) onSystemScheme(scheme model.ColorScheme) {
	s.mu.Lock()
	s.system = scheme
	s.mu.Unlock()
}

// Load восстанавливает сохранённый режим; недопустимое или отсутствующее значение даёт system.
func (s *Store) Load(ctx context.Context) {
	mode := model.ThemeModeSystem

	raw, found, err := persist.LoadString(ctx, s.kv, model.KeyThemeMode)
	switch {
	case err != nil:
		s.logger.Warn("load theme preference error", zap.Error(err))
	case found:
		if m, parseErr := model.ParseThemeMode(raw); parseErr == nil {
			mode = m
		} else {
			s.logger.Warn("ignoring stored theme mode", zap.String("value", raw))
		}
	}

	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

// SetMode меняет режим в памяти и ставит его на сохранение.
func (s *Store) SetMode(mode model.ThemeMode) error {
	m, err := model.ParseThemeMode(string(mode))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.mode = m
	s.saver.Save(model.KeyThemeMode, string(m))
	s.mu.Unlock()
	return nil
}

// Toggle переключает между light и dark. Из system переходит в light.
func (s *Store) Toggle() model.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := model.ThemeModeLight
	if s.mode == model.ThemeModeLight {
		next = model.ThemeModeDark
	}
	s.mode = next
	s.saver.Save(model.KeyThemeMode, string(next))
	return next
}

// Mode возвращает выбранный режим.
func (s *Store) Mode() model.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Effective вычисляет итоговую тему.
func (s *Store) Effective() Effective {
	s.mu.RLock()
	mode, system := s.mode, s.system
	s.mu.RUnlock()

	return Resolve(mode, system)
}

// Resolve вычисляет итоговую тему по режиму и системной схеме.
func Resolve(mode model.ThemeMode, system model.ColorScheme) Effective {
	isDark := mode == model.ThemeModeDark ||
		(mode == model.ThemeModeSystem && system == model.ColorSchemeDark)

	t := Light
	if isDark {
		t = Dark
	}
	return Effective{Mode: mode, IsDark: isDark, Theme: t}
}

// Close снимает подписку на системный сигнал.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
