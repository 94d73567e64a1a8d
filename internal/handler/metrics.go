package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the dashboard.
var Metrics = struct {
	RequestDuration        *prometheus.HistogramVec
	RequestsInFlight       prometheus.Gauge
	BackendRequestDuration *prometheus.HistogramVec
	BackendRequestsTotal   *prometheus.CounterVec
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics() {
	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kalkman_page_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kalkman_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	Metrics.BackendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kalkman_backend_request_duration_seconds",
			Help:    "Backend API round-trip duration, by operation and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	Metrics.BackendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalkman_backend_requests_total",
			Help: "Total backend API calls, by operation and status.",
		},
		[]string{"operation", "status"},
	)

	prometheus.MustRegister(
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.BackendRequestDuration,
		Metrics.BackendRequestsTotal,
	)
}

// ObserveBackendRequest records one backend round trip. Wired into the
// backend client as its request observer. A status of 0 means the request
// never produced a response (transport failure or timeout).
func ObserveBackendRequest(operation string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	Metrics.BackendRequestDuration.WithLabelValues(operation, label).Observe(elapsed.Seconds())
	Metrics.BackendRequestsTotal.WithLabelValues(operation, label).Inc()
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	if strings.HasPrefix(path, "/profile/") {
		return "/profile/:userId"
	}
	return path
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
