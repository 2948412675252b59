package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passenger"

type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Bookings        *prometheus.CounterVec
	Rejections      *prometheus.CounterVec
	Routes          *prometheus.CounterVec
	RouteCache      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors in reg. Use prometheus.NewRegistry in tests
// so that repeated calls do not collide.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		Bookings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "booking",
				Name:      "transitions_total",
				Help:      "Bookings moved into each status",
			},
			[]string{"status"},
		),
		Rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "booking",
				Name:      "rejected_total",
				Help:      "Booking submissions rejected before persisting",
			},
			[]string{"reason"},
		),
		Routes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "route",
				Name:      "built_total",
				Help:      "Routes built, by the source of the geometry",
			},
			[]string{"source"},
		),
		RouteCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "route",
				Name:      "cache_lookups_total",
				Help:      "Route cache lookups by result",
			},
			[]string{"result"}, // hit, miss, error
		),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
