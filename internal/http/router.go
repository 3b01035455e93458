// Package httpapi assembles the public router: shared middleware, the
// operational endpoints and every feature handler.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abstract-333/name-origin-api/internal/platform/metrics"
	"github.com/abstract-333/name-origin-api/pkg/platform/httputil"
	"github.com/abstract-333/name-origin-api/pkg/platform/middleware/access"
	"github.com/abstract-333/name-origin-api/pkg/platform/middleware/request"
)

const healthTimeout = 2 * time.Second

// Registrar is implemented by feature handlers.
type Registrar interface {
	Register(r chi.Router)
}

// Pinger reports whether a backing dependency is reachable. *sql.DB
// satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Config carries what NewRouter wires. Health and Gatherer are optional.
type Config struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Health   Pinger
	Handlers []Registrar
}

// NewRouter builds the chi router with request id, panic recovery, request
// context and access logging applied to every route.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(request.Context)
	r.Use(access.Log(cfg.Logger, recorder(cfg.Metrics)))

	r.Get("/healthz", healthHandler(cfg.Health))
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	for _, h := range cfg.Handlers {
		h.Register(r)
	}
	return r
}

// recorder avoids handing access.Log a typed nil.
func recorder(m *metrics.Metrics) access.Recorder {
	if m == nil {
		return nil
	}
	return m
}

func healthHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := p.PingContext(ctx); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
