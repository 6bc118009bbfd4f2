package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ricirt/portfolio-api/internal/api/handler"
	apimw "github.com/ricirt/portfolio-api/internal/api/middleware"
	"github.com/ricirt/portfolio-api/internal/metrics"
	"github.com/ricirt/portfolio-api/internal/ratelimiter"
	"github.com/ricirt/portfolio-api/internal/service"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	svc *service.StatusService,
	limiter *ratelimiter.WriteLimiter,
	corsOrigins []string,
	reg prometheus.Gatherer,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)          // recover panics, return 500
	r.Use(chimw.RealIP)             // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1<<20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)      // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.CORS(corsOrigins))

	// --- handler instances ---
	hh := handler.NewHealthHandler(svc)
	sh := handler.NewStatusHandler(svc, logger)

	// --- routes ---
	r.Get("/", hh.Root)
	r.Get("/health", hh.Health)
	r.Get("/healthz", hh.Healthz)

	// Raw Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", hh.APIRoot)
		r.Get("/health", hh.APIHealth)

		r.Get("/status", sh.List)
		r.With(writeLimit(limiter, m)).Post("/status", sh.Create)
	})

	return r
}

func writeLimit(limiter *ratelimiter.WriteLimiter, m *metrics.Metrics) func(http.Handler) http.Handler {
	if limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	var onLimited func()
	if m != nil {
		onLimited = m.RateLimited.Inc
	}
	return apimw.RateLimit(limiter, onLimited)
}
