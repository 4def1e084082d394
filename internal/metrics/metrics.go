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

// Metrics holds all Prometheus collectors exported by the service.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Sweeper metrics
	SweepRunsTotal         *prometheus.CounterVec
	SweepDuration          prometheus.Histogram
	ExpiredMedicines       prometheus.Gauge
	ExpiringSoonMedicines  prometheus.Gauge
	SweepLastSuccessSecond prometheus.Gauge
}

// New creates and registers every collector on a fresh registry, together
// with the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hemis_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hemis_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SweepRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hemis_expiry_sweep_runs_total",
				Help: "Expiry sweep runs by outcome",
			},
			[]string{"outcome"},
		),
		SweepDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hemis_expiry_sweep_duration_seconds",
				Help:    "Expiry sweep duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		ExpiredMedicines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hemis_expired_medicines",
			Help: "Active medicines past their expiry date at the last sweep",
		}),
		ExpiringSoonMedicines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hemis_expiring_soon_medicines",
			Help: "Active medicines expiring within the sweep window at the last sweep",
		}),
		SweepLastSuccessSecond: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hemis_expiry_sweep_last_success_timestamp_seconds",
			Help: "Unix time of the last successful expiry sweep",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SweepRunsTotal,
		m.SweepDuration,
		m.ExpiredMedicines,
		m.ExpiringSoonMedicines,
		m.SweepLastSuccessSecond,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware instruments requests by chi route pattern so that path
// parameters do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
