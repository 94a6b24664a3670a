// Package service собирает хранилища клиентского состояния в единый сервис
// с явной инициализацией и завершением.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/shopstate/internal/cart"
	"github.com/mmeshcher/shopstate/internal/catalog"
	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/persist"
	"github.com/mmeshcher/shopstate/internal/seller"
	"github.com/mmeshcher/shopstate/internal/theme"
)

// ErrItemNotInCart возвращается при изменении позиции, которой нет в корзине.
var ErrItemNotInCart = errors.New("item not in cart")

// Repository описывает постоянное хранилище, которым владеет сервис.
type Repository interface {
	persist.KV
	Close() error
}

// CartView — состояние корзины вместе с производными суммами.
type CartView struct {
	Items     []model.LineItem `json:"items"`
	ItemCount int              `json:"itemCount"`
	Subtotal  float64          `json:"subtotal"`
}

// Service содержит хранилища состояния и очередь записи.
type Service struct {
	repo   Repository
	writer *persist.Writer
	scheme *theme.Broadcaster
	logger *zap.Logger

	cart    *cart.Store
	theme   *theme.Store
	catalog *catalog.Store
	seller  *seller.Store
}

// NewService создаёт сервис. До первого чтения нужно вызвать Init.
func NewService(repo Repository, scheme *theme.Broadcaster, logger *zap.Logger, writeTimeout time.Duration, opts ...catalog.Option) *Service {
	w := persist.NewWriter(repo, logger.Named("persist"), writeTimeout)
	return &Service{
		repo:    repo,
		writer:  w,
		scheme:  scheme,
		logger:  logger,
		cart:    cart.NewStore(repo, w, logger.Named("cart")),
		theme:   theme.NewStore(repo, w, scheme, logger.Named("theme")),
		catalog: catalog.NewStore(repo, w, logger.Named("catalog"), opts...),
		seller:  seller.NewStore(repo, w, logger.Named("seller")),
	}
}

// Init восстанавливает все хранилища из постоянного хранилища.
// Ошибки чтения не прерывают запуск: хранилища получают значения по умолчанию.
func (s *Service) Init(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { s.cart.Load(ctx); return nil })
	g.Go(func() error { s.theme.Load(ctx); return nil })
	g.Go(func() error { s.catalog.Reload(ctx); return nil })
	g.Go(func() error { s.seller.Load(ctx); return nil })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("init stores: %w", err)
	}

	s.logger.Info("state restored",
		zap.Int("cartItems", s.cart.ItemCount()),
		zap.String("themeMode", string(s.theme.Mode())),
		zap.Int("userProducts", len(s.catalog.UserProducts())),
	)
	return nil
}

// Close снимает подписку на системную схему, дожидается записей и закрывает хранилище.
func (s *Service) Close(ctx context.Context) error {
	s.theme.Close()

	flushErr := s.writer.Close(ctx)
	if flushErr != nil {
		s.logger.Warn("pending writes not flushed", zap.Error(flushErr))
	}

	var closeErr error
	if s.repo != nil {
		closeErr = s.repo.Close()
	}
	return errors.Join(flushErr, closeErr)
}

// Cart возвращает корзину с суммами.
func (s *Service) Cart() CartView {
	return CartView{
		Items:     s.cart.Items(),
		ItemCount: s.cart.ItemCount(),
		Subtotal:  s.cart.Subtotal(),
	}
}

// AddToCart добавляет в корзину снимок товара каталога.
func (s *Service) AddToCart(productID string) (model.LineItem, error) {
	p, err := s.catalog.Find(productID)
	if err != nil {
		return model.LineItem{}, err
	}
	return s.cart.Add(p), nil
}

// UpdateCartQuantity задаёт количество позиции; значения меньше 1 приводятся к 1.
func (s *Service) UpdateCartQuantity(id string, quantity int) error {
	if !s.cart.UpdateQuantity(id, quantity) {
		return ErrItemNotInCart
	}
	return nil
}

// IncreaseCartItem увеличивает количество позиции на единицу.
func (s *Service) IncreaseCartItem(id string) error {
	if !s.cart.Increase(id) {
		return ErrItemNotInCart
	}
	return nil
}

// DecreaseCartItem уменьшает количество позиции на единицу, не ниже 1.
func (s *Service) DecreaseCartItem(id string) error {
	if !s.cart.Decrease(id) {
		return ErrItemNotInCart
	}
	return nil
}

// RemoveFromCart удаляет все позиции товара.
func (s *Service) RemoveFromCart(id string) {
	s.cart.Remove(id)
}

// ClearCart очищает корзину.
func (s *Service) ClearCart() {
	s.cart.Clear()
}

// Theme возвращает итоговую тему.
func (s *Service) Theme() theme.Effective {
	return s.theme.Effective()
}

// SetThemeMode меняет режим отображения.
func (s *Service) SetThemeMode(mode model.ThemeMode) (theme.Effective, error) {
	if err := s.theme.SetMode(mode); err != nil {
		return theme.Effective{}, err
	}
	return s.theme.Effective(), nil
}

// ToggleTheme переключает светлый и тёмный режимы.
func (s *Service) ToggleTheme() theme.Effective {
	s.theme.Toggle()
	return s.theme.Effective()
}

// SetSystemScheme публикует системную схему хоста.
func (s *Service) SetSystemScheme(scheme model.ColorScheme) theme.Effective {
	s.scheme.Publish(scheme)
	return s.theme.Effective()
}

// Products возвращает выдачу каталога.
func (s *Service) Products(query, category string) ([]model.Product, error) {
	return s.catalog.Compose(query, category)
}

// Product возвращает товар по идентификатору.
func (s *Service) Product(id string) (model.Product, error) {
	return s.catalog.Find(id)
}

// SubmitProduct добавляет пользовательский товар.
func (s *Service) SubmitProduct(d model.ProductDraft) (model.Product, error) {
	return s.catalog.Submit(d)
}

// SellerProfile возвращает профиль продавца.
func (s *Service) SellerProfile() (model.SellerProfile, bool) {
	return s.seller.Profile()
}

// SaveSellerProfile заменяет профиль продавца.
func (s *Service) SaveSellerProfile(p model.SellerProfile) model.SellerProfile {
	return s.seller.SaveProfile(p)
}

// ProfileImage возвращает ссылку на фотографию профиля.
func (s *Service) ProfileImage() (string, bool) {
	return s.seller.ProfileImage()
}

// SetProfileImage сохраняет ссылку на фотографию профиля.
func (s *Service) SetProfileImage(ref string) {
	s.seller.SetProfileImage(ref)
}
