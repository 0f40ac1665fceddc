package config

const (
	EnvPrefix = "STOCKCOUNT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced by tests and error messages.
const (
	EnvAppEnv   = "STOCKCOUNT_APP_ENV"
	EnvPort     = "STOCKCOUNT_APP_PORT"
	EnvRedisURL = "STOCKCOUNT_REDIS_URL"
)
