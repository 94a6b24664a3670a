package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	custommiddleware "github.com/mmeshcher/shopstate/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса состояния.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)

			r.Post("/items", h.AddToCart)
			r.Put("/items/{id}", h.UpdateCartItem)
			r.Delete("/items/{id}", h.RemoveCartItem)
			r.Post("/items/{id}/increase", h.IncreaseCartItem)
			r.Post("/items/{id}/decrease", h.DecreaseCartItem)
		})

		r.Get("/theme", h.GetTheme)
		r.Put("/theme", h.SetThemeMode)
		r.Post("/theme/toggle", h.ToggleTheme)
		r.Put("/system/scheme", h.SetSystemScheme)

		r.Get("/categories", h.GetCategories)
		r.Get("/products", h.GetProducts)
		r.Post("/products", h.SubmitProduct)
		r.Get("/products/{id}", h.GetProduct)

		r.Get("/seller/profile", h.GetSellerProfile)
		r.Put("/seller/profile", h.SaveSellerProfile)
		r.Get("/profile/image", h.GetProfileImage)
		r.Put("/profile/image", h.SetProfileImage)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
