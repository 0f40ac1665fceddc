package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/stocktrack/stockcount-backend/pkg/errors"
)

// ParseOptionalQueryInt returns nil when the parameter is absent or blank.
func ParseOptionalQueryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// ParseOptionalQueryString returns nil when the parameter is absent or blank.
func ParseOptionalQueryString(r *http.Request, key string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}

// ParsePathInt parses a numeric chi route parameter.
func ParsePathInt(raw, field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be numeric").WithDetails(map[string]any{"field": field})
	}
	return value, nil
}
