package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Service ServiceConfig
	Redis   RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOCKCOUNT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOCKCOUNT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOCKCOUNT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOCKCOUNT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"STOCKCOUNT_SERVICE_KIND" default:"api"`
}

// RedisConfig is optional. When no URL or address is set the idempotency
// middleware is skipped and the service runs fully in-process.
type RedisConfig struct {
	URL          string        `envconfig:"STOCKCOUNT_REDIS_URL"`
	Address      string        `envconfig:"STOCKCOUNT_REDIS_ADDR"`
	Password     string        `envconfig:"STOCKCOUNT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOCKCOUNT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOCKCOUNT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOCKCOUNT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOCKCOUNT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOCKCOUNT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOCKCOUNT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
