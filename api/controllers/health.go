package controllers

import (
	"net/http"

	"github.com/stocktrack/stockcount-backend/api/responses"
	"github.com/stocktrack/stockcount-backend/pkg/config"
	pkgerrors "github.com/stocktrack/stockcount-backend/pkg/errors"
	"github.com/stocktrack/stockcount-backend/pkg/logger"
	"github.com/stocktrack/stockcount-backend/pkg/redis"
)

const envHeader = "X-StockCount-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings optional dependencies. A nil redis pinger means the
// service runs without one and is always ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
