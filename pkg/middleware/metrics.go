package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	markuperrors "github.com/vango-dev/markup/internal/errors"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "markup").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "markup",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors. It is safe for concurrent
// use.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderErrors   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	renderBytes    prometheus.Histogram

	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	cacheEvictions prometheus.Counter

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with the configured registry.
// Registering twice with the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counter := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}
	}

	return &Metrics{
		rendersTotal: factory.NewCounterVec(
			counter("renders_total", "Total number of renders by status"),
			[]string{"status"}),

		renderErrors: factory.NewCounterVec(
			counter("render_errors_total", "Total number of failed renders by error code"),
			[]string{"code"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes",
			Help:        "Size of rendered documents in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}),

		cacheHits:      factory.NewCounter(counter("attr_cache_hits_total", "Attribute cache hits")),
		cacheMisses:    factory.NewCounter(counter("attr_cache_misses_total", "Attribute cache misses")),
		cacheEvictions: factory.NewCounter(counter("attr_cache_evictions_total", "Attribute cache evictions")),

		requestsTotal: factory.NewCounterVec(
			counter("http_requests_total", "Total HTTP requests by route and status"),
			[]string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),
	}
}

// CacheHit implements attr.Observer.
func (m *Metrics) CacheHit() { m.cacheHits.Inc() }

// CacheMiss implements attr.Observer.
func (m *Metrics) CacheMiss() { m.cacheMisses.Inc() }

// CacheEvict implements attr.Observer.
func (m *Metrics) CacheEvict() { m.cacheEvictions.Inc() }

// RenderDone implements render.Observer.
func (m *Metrics) RenderDone(d time.Duration, bytes int, err error) {
	m.renderDuration.Observe(d.Seconds())
	if err != nil {
		m.rendersTotal.WithLabelValues("error").Inc()
		m.renderErrors.WithLabelValues(errorCode(err)).Inc()
		return
	}
	m.rendersTotal.WithLabelValues("success").Inc()
	m.renderBytes.Observe(float64(bytes))
}

// errorCode returns the code of a markup error, keeping the label set
// small.
func errorCode(err error) string {
	var me *markuperrors.MarkupError
	if errors.As(err, &me) && me.Code != "" {
		return me.Code
	}
	return "unknown"
}

// Handler records request counts and durations. The route label is the
// chi route pattern, so it is bounded by the routes registered.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

// routePattern returns the matched chi pattern, or "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
