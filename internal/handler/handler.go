// Package handler содержит HTTP-обработчики API сервиса состояния.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/shopstate/internal/catalog"
	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/service"
	"github.com/mmeshcher/shopstate/internal/theme"
	"github.com/mmeshcher/shopstate/internal/validation"
)

// Service определяет контракт состояния, используемый HTTP-обработчиками.
type Service interface {
	Cart() service.CartView
	AddToCart(productID string) (model.LineItem, error)
	UpdateCartQuantity(id string, quantity int) error
	IncreaseCartItem(id string) error
	DecreaseCartItem(id string) error
	RemoveFromCart(id string)
	ClearCart()

	Theme() theme.Effective
	SetThemeMode(mode model.ThemeMode) (theme.Effective, error)
	ToggleTheme() theme.Effective
	SetSystemScheme(scheme model.ColorScheme) theme.Effective

	Products(query, category string) ([]model.Product, error)
	Product(id string) (model.Product, error)
	SubmitProduct(d model.ProductDraft) (model.Product, error)

	SellerProfile() (model.SellerProfile, bool)
	SaveSellerProfile(p model.SellerProfile) model.SellerProfile
	ProfileImage() (string, bool)
	SetProfileImage(ref string)
}

// Handler реализует HTTP-обработчики API.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}

// GetCart возвращает корзину с количеством и суммой.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Cart())
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
}

// AddToCart добавляет товар каталога в корзину.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.service.AddToCart(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("add to cart error", zap.Error(err), zap.String("productID", req.ProductID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, item)
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateCartItem задаёт количество позиции корзины.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.respondCartChange(w, h.service.UpdateCartQuantity(chi.URLParam(r, "id"), *req.Quantity))
}

// IncreaseCartItem увеличивает количество позиции на единицу.
func (h *Handler) IncreaseCartItem(w http.ResponseWriter, r *http.Request) {
	h.respondCartChange(w, h.service.IncreaseCartItem(chi.URLParam(r, "id")))
}

// DecreaseCartItem уменьшает количество позиции на единицу.
func (h *Handler) DecreaseCartItem(w http.ResponseWriter, r *http.Request) {
	h.respondCartChange(w, h.service.DecreaseCartItem(chi.URLParam(r, "id")))
}

func (h *Handler) respondCartChange(w http.ResponseWriter, err error) {
	if err != nil {
		if errors.Is(err, service.ErrItemNotInCart) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("update cart error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.Cart())
}

// RemoveCartItem удаляет все позиции товара из корзины.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	h.service.RemoveFromCart(chi.URLParam(r, "id"))
	h.writeJSON(w, http.StatusOK, h.service.Cart())
}

// ClearCart очищает корзину.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.service.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

// GetTheme возвращает итоговую тему.
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Theme())
}

type themeModeRequest struct {
	Mode string `json:"mode"`
}

// SetThemeMode меняет режим отображения.
func (h *Handler) SetThemeMode(w http.ResponseWriter, r *http.Request) {
	var req themeModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	eff, err := h.service.SetThemeMode(model.ThemeMode(req.Mode))
	if err != nil {
		if errors.Is(err, model.ErrInvalidThemeMode) {
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("set theme mode error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, eff)
}

// ToggleTheme переключает светлый и тёмный режимы.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.ToggleTheme())
}

type schemeRequest struct {
	Scheme string `json:"scheme"`
}

// SetSystemScheme принимает сигнал системной схемы от хоста.
func (h *Handler) SetSystemScheme(w http.ResponseWriter, r *http.Request) {
	var req schemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	scheme := model.ColorScheme(req.Scheme)
	if scheme != model.ColorSchemeLight && scheme != model.ColorSchemeDark {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	h.writeJSON(w, http.StatusOK, h.service.SetSystemScheme(scheme))
}

// GetCategories возвращает список категорий.
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, model.Categories)
}

type productResponse struct {
	model.Product
	OriginalPrice float64 `json:"originalPrice"`
}

func toProductResponse(p model.Product) productResponse {
	return productResponse{Product: p, OriginalPrice: p.OriginalPrice()}
}

// GetProducts возвращает выдачу каталога по поиску и категории.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = model.CategoryAll
	}

	products, err := h.service.Products(query, category)
	if err != nil {
		if errors.Is(err, validation.ErrUnknownCategory) {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		h.logger.Error("get products error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(products) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// GetProduct возвращает товар по идентификатору.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Product(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("get product error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, toProductResponse(p))
}

// SubmitProduct добавляет пользовательский товар.
func (h *Handler) SubmitProduct(w http.ResponseWriter, r *http.Request) {
	var draft model.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	p, err := h.service.SubmitProduct(draft)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("submit product error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, toProductResponse(p))
}

func isValidationError(err error) bool {
	for _, target := range []error{
		validation.ErrNameRequired,
		validation.ErrDescriptionRequired,
		validation.ErrInvalidPrice,
		validation.ErrInvalidQuantity,
		validation.ErrUnknownCategory,
		validation.ErrDeliveryRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// GetSellerProfile возвращает профиль продавца.
func (h *Handler) GetSellerProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.service.SellerProfile()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// SaveSellerProfile заменяет профиль продавца целиком.
func (h *Handler) SaveSellerProfile(w http.ResponseWriter, r *http.Request) {
	var p model.SellerProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.SaveSellerProfile(p))
}

type profileImageBody struct {
	URI string `json:"uri"`
}

// GetProfileImage возвращает ссылку на фотографию профиля.
func (h *Handler) GetProfileImage(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.service.ProfileImage()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, profileImageBody{URI: ref})
}

// SetProfileImage сохраняет ссылку на фотографию профиля.
func (h *Handler) SetProfileImage(w http.ResponseWriter, r *http.Request) {
	var req profileImageBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URI == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	h.service.SetProfileImage(req.URI)
	w.WriteHeader(http.StatusNoContent)
}
