package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stocktrack/stockcount-backend/api/routes"
	"github.com/stocktrack/stockcount-backend/internal/stockcount"
	"github.com/stocktrack/stockcount-backend/pkg/config"
	"github.com/stocktrack/stockcount-backend/pkg/logger"
	"github.com/stocktrack/stockcount-backend/pkg/metrics"
	"github.com/stocktrack/stockcount-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	apiMetrics := metrics.NewAPIMetrics(registry)

	store, err := stockcount.NewStore(stockcount.DefaultSeed())
	if err != nil {
		logg.Error(context.Background(), "failed to seed stock count store", err)
		os.Exit(1)
	}

	service, err := stockcount.NewService(store, logg, apiMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create stock count service", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	params := routes.RouterParams{
		Config:   cfg,
		Logger:   logg,
		Service:  service,
		Metrics:  apiMetrics,
		Gatherer: registry,
	}
	if redisClient != nil {
		params.Idempotency = redisClient
		params.RedisPinger = redisClient
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":   cfg.App.Env,
		"addr":  addr,
		"redis": redisClient != nil,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(params),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
