package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	markuperrors "github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attr"
	"github.com/vango-dev/markup/pkg/render"
)

// The observer interfaces are the contract with the engine.
var (
	_ attr.Observer   = (*Metrics)(nil)
	_ render.Observer = (*Metrics)(nil)
)

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsRenderDone(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.RenderDone(time.Millisecond, 120, nil)
	m.RenderDone(time.Millisecond, 80, nil)
	m.RenderDone(time.Millisecond, 0, markuperrors.New("E101"))
	m.RenderDone(time.Millisecond, 0, errors.New("plain failure"))

	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("renders_total(success) = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("error")); got != 2 {
		t.Errorf("renders_total(error) = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.renderErrors.WithLabelValues("E101")); got != 1 {
		t.Errorf("render_errors_total(E101) = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.renderErrors.WithLabelValues("unknown")); got != 1 {
		t.Errorf("render_errors_total(unknown) = %v, want 1", got)
	}
	if got := metricHistogramCount(t, m.renderDuration); got != 4 {
		t.Errorf("render_duration_seconds count = %d, want 4", got)
	}
	if got := metricHistogramCount(t, m.renderBytes); got != 2 {
		t.Errorf("render_bytes count = %d, want 2", got)
	}
}

func TestMetricsWrappedErrorCode(t *testing.T) {
	wrapped := markuperrors.New("E107").Wrap(markuperrors.New("E101"))
	if got := errorCode(wrapped); got != "E107" {
		t.Errorf("errorCode() = %q, want the outer code E107", got)
	}
}

func TestMetricsCacheObserver(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
	cache := attr.NewCache(1, attr.WithObserver(m))

	for _, s := range []attr.Set{
		attr.New("id", "a"),
		attr.New("id", "a"),
		attr.New("id", "b"),
		attr.New("class", "c"),
	} {
		if _, err := cache.Serialize(s); err != nil {
			t.Fatal(err)
		}
	}

	stats := cache.Stats()
	if got := testutil.ToFloat64(m.cacheHits); got != float64(stats.Hits) || got != 1 {
		t.Errorf("attr_cache_hits_total = %v, stats %+v", got, stats)
	}
	if got := testutil.ToFloat64(m.cacheMisses); got != float64(stats.Misses) || got != 3 {
		t.Errorf("attr_cache_misses_total = %v, stats %+v", got, stats)
	}
	if got := testutil.ToFloat64(m.cacheEvictions); got != float64(stats.Evictions) {
		t.Errorf("attr_cache_evictions_total = %v, stats %+v", got, stats)
	}
}

func TestMetricsFromRenderer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	cache := attr.NewCache(16, attr.WithObserver(m))

	build := func(r *render.Renderer) { r.P(attr.Class("x"), "hi") }
	for i := 0; i < 3; i++ {
		if _, err := render.New(nil, build, render.WithCache(cache), render.WithObserver(m)).Render(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("success")); got != 3 {
		t.Errorf("renders_total(success) = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.cacheHits); got != 2 {
		t.Errorf("attr_cache_hits_total = %v, want 2", got)
	}
	if n, err := testutil.GatherAndCount(reg, "markup_renders_total"); err != nil || n != 1 {
		t.Errorf("GatherAndCount(markup_renders_total) = %d, %v", n, err)
	}
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/pages/{name}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") == "missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ok"))
	})

	for _, path := range []string{"/pages/a", "/pages/b", "/pages/missing", "/other"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	tests := []struct {
		route, status string
		want          float64
	}{
		{"/pages/{name}", "200", 2},
		{"/pages/{name}", "404", 1},
		{"unmatched", "404", 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(tt.route, tt.status)); got != tt.want {
			t.Errorf("http_requests_total(%s, %s) = %v, want %v", tt.route, tt.status, got, tt.want)
		}
	}
	if got := metricHistogramCount(t, m.requestDuration.WithLabelValues("/pages/{name}")); got != 3 {
		t.Errorf("http_request_duration_seconds count = %d, want 3", got)
	}
}

func TestNewMetricsDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(WithRegistry(reg))
	defer func() {
		if recover() == nil {
			t.Error("expected a panic registering the same collectors twice")
		}
	}()
	NewMetrics(WithRegistry(reg))
}
