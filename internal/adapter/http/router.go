package http

import (
	"net/http"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
	"github.com/go-chi/chi/v5"
)

// NewRouter wires the food API routes behind recovery and request logging
func NewRouter(service interfaces.CatalogService, logger logger.Logger) http.Handler {
	foods := NewFoodHandler(service, logger)
	favorites := NewFavoriteHandler(service, logger)
	orders := NewOrderHandler(service, logger)

	r := chi.NewRouter()
	r.Use(LoggingMiddleware(logger))
	r.Use(RecoveryMiddleware(logger))

	r.Get("/foods/{id}", foods.GetFood)

	r.Route("/favorites", func(r chi.Router) {
		r.Post("/", favorites.AddFavorite)
		r.Get("/{id}", favorites.GetFavorite)
		r.Delete("/{id}", favorites.RemoveFavorite)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orders.CreateOrder)
		r.Get("/", orders.ListOrders)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, "Not found", http.StatusNotFound, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
	})

	return r
}
