package storefront

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/murkotick/promotion-catalog-service/internal/pkg/metrics"
)

// NewRouter wires the storefront API.
func NewRouter(h *Handler, logger *zap.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/v1/products/{productID}", func(r chi.Router) {
		r.Get("/price", h.getPrice)
		r.Get("/countdown", h.streamCountdown)
	})

	return r
}
