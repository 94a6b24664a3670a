// Package seller хранит профиль продавца и фотографию профиля.
package seller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/persist"
)

// Saver ставит значения ключей в очередь на сохранение.
type Saver interface {
	Save(key, value string)
	SaveJSON(key string, v any)
}

// Store хранит единственную запись профиля продавца.
// Каждое сохранение полностью заменяет предыдущую запись.
type Store struct {
	kv     persist.KV
	saver  Saver
	logger *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	profile  *model.SellerProfile
	imageRef string
}

// NewStore создаёт хранилище без профиля.
func NewStore(kv persist.KV, saver Saver, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		saver:  saver,
		logger: logger,
		now:    time.Now,
	}
}

// Load восстанавливает профиль и фотографию.
func (s *Store) Load(ctx context.Context) {
	var p model.SellerProfile
	found, err := persist.LoadJSON(ctx, s.kv, model.KeySellerProfile, &p)
	if err != nil {
		s.logger.Warn("load seller profile error", zap.Error(err))
	}

	image, _, imgErr := persist.LoadString(ctx, s.kv, model.KeyProfileImage)
	if imgErr != nil {
		s.logger.Warn("load profile image error", zap.Error(imgErr))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	if found {
		s.profile = &p
	}
	s.imageRef = image
}

// SaveProfile заменяет профиль продавца. Пустая дата регистрации заполняется текущим временем.
func (s *Store) SaveProfile(p model.SellerProfile) model.SellerProfile {
	if p.JoinedDate.IsZero() {
		p.JoinedDate = s.now().UTC()
	}

	s.mu.Lock()
	s.profile = &p
	s.saver.SaveJSON(model.KeySellerProfile, p)
	s.mu.Unlock()

	s.logger.Info("seller profile saved", zap.String("store", p.StoreName))
	return p
}

// Profile возвращает профиль продавца, если он сохранён.
func (s *Store) Profile() (model.SellerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return model.SellerProfile{}, false
	}
	return *s.profile, true
}

// SetProfileImage сохраняет ссылку на фотографию профиля.
func (s *Store) SetProfileImage(ref string) {
	s.mu.Lock()
	s.imageRef = ref
	s.saver.Save(model.KeyProfileImage, ref)
	s.mu.Unlock()
}

// ProfileImage возвращает ссылку на фотографию профиля.
func (s *Store) ProfileImage() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.imageRef, s.imageRef != ""
}
