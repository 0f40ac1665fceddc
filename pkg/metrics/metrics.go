package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics records request-level metadata for the HTTP surface.
type APIMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	tagsRead *prometheus.CounterVec
}

// NewAPIMetrics registers the API metrics on the provided registerer.
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	if reg == nil {
		return &APIMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests handled, by route and status.",
	}, []string{"method", "route", "status"})
	tagsRead := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rfid_events_total",
		Help: "RFID tag events appended to stock counts.",
	}, []string{"location"})
	reg.MustRegister(duration, requests, tagsRead)
	return &APIMetrics{
		duration: duration,
		requests: requests,
		tagsRead: tagsRead,
	}
}

// ObserveRequest records one handled request.
func (m *APIMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if m.duration != nil {
		m.duration.WithLabelValues(method, normalizeLabel(route)).Observe(duration.Seconds())
	}
	if m.requests != nil {
		m.requests.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Inc()
	}
}

// AddTagsRead counts RFID events recorded for a location.
func (m *APIMetrics) AddTagsRead(locationID int, count int) {
	if m == nil || m.tagsRead == nil || count <= 0 {
		return
	}
	m.tagsRead.WithLabelValues(strconv.Itoa(locationID)).Add(float64(count))
}

func normalizeLabel(route string) string {
	if route == "" {
		return "unknown"
	}
	return route
}
