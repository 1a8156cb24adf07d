package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pedidos-fdv/pedidos-fdv/internal/observability"
	"github.com/pedidos-fdv/pedidos-fdv/internal/orders"
	"github.com/pedidos-fdv/pedidos-fdv/internal/shared"
	"github.com/pedidos-fdv/pedidos-fdv/internal/summary"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	OrdersHandler  *orders.Handler
	SummaryHandler *summary.Handler
	Metrics        *observability.Metrics
}

// NewRouter constructs the chi.Router for the dashboard API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/orders", func(r chi.Router) {
		// The summary route must register before the {id} wildcard.
		if params.SummaryHandler != nil {
			r.Get("/summary", params.SummaryHandler.Get)
		}
		params.OrdersHandler.MountRoutes(r)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
