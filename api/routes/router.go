package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stocktrack/stockcount-backend/api/controllers"
	"github.com/stocktrack/stockcount-backend/api/middleware"
	stockcountsvc "github.com/stocktrack/stockcount-backend/internal/stockcount"
	"github.com/stocktrack/stockcount-backend/pkg/config"
	"github.com/stocktrack/stockcount-backend/pkg/logger"
	"github.com/stocktrack/stockcount-backend/pkg/metrics"
	pkgredis "github.com/stocktrack/stockcount-backend/pkg/redis"
)

// RouterParams carries everything the HTTP surface needs. Idempotency and
// Gatherer are optional; the rest is required by the handlers themselves.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	Service     stockcountsvc.Service
	Metrics     *metrics.APIMetrics
	Gatherer    prometheus.Gatherer
	Idempotency pkgredis.IdempotencyStore
	RedisPinger pkgredis.Pinger
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(p.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.RedisPinger))
	})

	r.Get("/api/public/ping", controllers.PublicPing())

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/stockcount", func(r chi.Router) {
		r.Use(middleware.Idempotency(p.Idempotency, p.Logger))
		r.Get("/", controllers.FindStockCounts(p.Service, p.Logger))
		r.Get("/{stockCountId}", controllers.GetStockCount(p.Service, p.Logger))
		r.Post("/start", controllers.StartStockCount(p.Service, p.Logger))
		r.Post("/take", controllers.ReportStockTake(p.Service, p.Logger))
	})

	return r
}
