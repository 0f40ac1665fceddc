package env

import "os"

// Get reads one environment variable with a fallback, for lookups outside
// the STOCKCOUNT_* envconfig structs (log format selection and the like).
// An empty value counts as unset.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
