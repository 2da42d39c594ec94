// Package telemetry holds the Prometheus collectors of the dashboard API.
package telemetry

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	storeDuration *prometheus.HistogramVec
	storeErrors   *prometheus.CounterVec
	seriesBuckets *prometheus.HistogramVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_http_requests_total",
				Help: "Total HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		httpDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		storeDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_store_query_duration_seconds",
				Help:    "Record store query latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"collection", "operation"},
		),
		storeErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_store_query_errors_total",
				Help: "Failed record store queries",
			},
			[]string{"collection", "operation"},
		),
		seriesBuckets: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_series_buckets",
				Help:    "Number of buckets per served time series",
				Buckets: []float64{1, 7, 14, 31, 60, 120, 365, 1000},
			},
			[]string{"granularity"},
		),
	}
}

func (m *Metrics) ObserveStoreQuery(collection, operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.storeDuration.WithLabelValues(collection, operation).Observe(elapsed.Seconds())
	if err != nil {
		m.storeErrors.WithLabelValues(collection, operation).Inc()
	}
}

func (m *Metrics) ObserveSeries(granularity string, buckets int) {
	if m == nil {
		return
	}
	m.seriesBuckets.WithLabelValues(granularity).Observe(float64(buckets))
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}

		started := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
		return err
	}
}

// Handler exposes the collectors of g in the Prometheus text format.
func Handler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
