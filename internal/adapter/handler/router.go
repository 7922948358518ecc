package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter mounts the HTTP API. Each request gets at most timeout to finish
// its transaction.
func NewRouter(h *HTTPHandler, log *zap.Logger, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.CreateOrder)
			r.Get("/", h.ListOrders)
			r.Post("/quote", h.QuoteOrder)
			r.Get("/{id}", h.GetOrder)
			r.Post("/{id}/availability", h.CheckAvailability)
			r.Post("/{id}/process", h.ProcessOrder)
			r.Patch("/{id}/status", h.UpdateOrderStatus)
			r.Patch("/{id}/payment", h.UpdatePayment)
		})

		r.Post("/inventory/addons/deduct", h.DeductAddons)
		r.Post("/inventory/ingredients/deduct", h.DeductIngredients)

		r.Get("/materials", h.ListMaterials)
		r.Get("/materials/{id}/ledger", h.MaterialLedger)
		r.Post("/materials/{id}/entries", h.AddStockEntry)
		r.Put("/stock-entries/{id}", h.UpdateStockEntry)
	})
	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
