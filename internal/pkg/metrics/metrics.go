/*
Package metrics defines the Prometheus collectors exported on /metrics.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains the application's custom Prometheus collectors.
type Metrics struct {
	AuthAttempts    *prometheus.CounterVec
	RoomsCreated    prometheus.Counter
	MessagesPosted  prometheus.Counter
	RequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them, together with the Go runtime
// and process collectors, on a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		AuthAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frenchreborn_auth_attempts_total",
				Help: "Registration and login attempts by operation and result",
			},
			[]string{"operation", "result"},
		),
		RoomsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frenchreborn_rooms_created_total",
			Help: "Provinces created since process start",
		}),
		MessagesPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frenchreborn_messages_posted_total",
			Help: "Messages appended to the ledger since process start",
		}),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "frenchreborn_http_request_duration_seconds",
				Help:    "HTTP request latency by route and status class",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "status"},
		),
		registry: reg,
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.AuthAttempts,
		m.RoomsCreated,
		m.MessagesPosted,
		m.RequestDuration,
	)

	return m
}

// Handler returns the HTTP handler exposing the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveAuth records the outcome of a registration or login attempt.
func (m *Metrics) ObserveAuth(operation string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.AuthAttempts.WithLabelValues(operation, result).Inc()
}

// Middleware records the latency of every request by chi route pattern and status class.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.RequestDuration.
			WithLabelValues(route, strconv.Itoa(status/100)+"xx").
			Observe(time.Since(start).Seconds())
	})
}
