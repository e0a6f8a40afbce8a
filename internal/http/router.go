package httpapi

import (
	"net/http"

	appmw "github.com/codeCrafterX-33/discoverCrismyla/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, corsAllowOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(appmw.CORS(corsAllowOrigins))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{productId}", h.GetProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddItem)
			r.Put("/items/{itemId}", h.UpdateItem)
			r.Delete("/items/{itemId}", h.RemoveItem)
			r.Post("/normalize", h.NormalizeCart)
			r.Put("/province", h.SetProvince)
		})

		r.Post("/newsletter", h.SubscribeNewsletter)
		r.Post("/customer-info", h.SubmitLead)
		r.Post("/order", h.SubmitOrder)
	})

	return r
}
