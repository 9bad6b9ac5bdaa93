package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordedSpan struct {
	name   string
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	ended  bool
}

// recorder is a minimal tracer provider keeping every span it starts.
type recorder struct {
	noop.TracerProvider

	mu    sync.Mutex
	spans []*recordedSpan
}

func (p *recorder) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return recordingTracer{p: p}
}

type recordingTracer struct {
	noop.Tracer
	p *recorder
}

func (t recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	rs := &recordedSpan{name: name, attrs: map[attribute.Key]attribute.Value{}}
	for _, kv := range cfg.Attributes() {
		rs.attrs[kv.Key] = kv.Value
	}
	t.p.mu.Lock()
	t.p.spans = append(t.p.spans, rs)
	t.p.mu.Unlock()
	s := &recordingSpan{rec: rs}
	return trace.ContextWithSpan(ctx, s), s
}

type recordingSpan struct {
	noop.Span
	rec *recordedSpan
}

func (s *recordingSpan) SetName(name string) { s.rec.name = name }

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.rec.attrs[a.Key] = a.Value
	}
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.rec.status = code }

func (s *recordingSpan) End(...trace.SpanEndOption) { s.rec.ended = true }

func TestOpenTelemetryRecordsRequest(t *testing.T) {
	rec := &recorder{}
	var inHandler trace.Span

	r := chi.NewRouter()
	r.Use(OpenTelemetry(
		WithTracerProvider(rec),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))
	r.Get("/pages/{name}", func(w http.ResponseWriter, r *http.Request) {
		inHandler = trace.SpanFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/fail", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pages/a", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	if len(rec.spans) != 2 {
		t.Fatalf("recorded %d spans, want 2", len(rec.spans))
	}
	ok := rec.spans[0]
	if _, isRecording := inHandler.(*recordingSpan); !isRecording {
		t.Errorf("handler saw span %T, want the request span", inHandler)
	}
	if ok.name != "markup GET /pages/{name}" {
		t.Errorf("span name = %q", ok.name)
	}
	if got := ok.attrs["http.status_code"].AsInt64(); got != http.StatusTeapot {
		t.Errorf("http.status_code = %d", got)
	}
	if got := ok.attrs["test.attr"].AsString(); got != "ok" {
		t.Errorf("test.attr = %q", got)
	}
	if ok.status != codes.Ok || !ok.ended {
		t.Errorf("span status = %v ended = %v", ok.status, ok.ended)
	}
	if rec.spans[1].status != codes.Error {
		t.Errorf("5xx span status = %v, want Error", rec.spans[1].status)
	}
}

func TestOpenTelemetryFilterSkipsTracing(t *testing.T) {
	rec := &recorder{}
	called := false
	h := OpenTelemetry(
		WithTracerProvider(rec),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if trace.SpanFromContext(r.Context()).SpanContext().IsValid() {
			t.Error("expected no span for a filtered request")
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if !called {
		t.Fatal("expected next to be called")
	}
	if len(rec.spans) != 0 {
		t.Errorf("recorded %d spans, want 0", len(rec.spans))
	}
}

func TestOpenTelemetryDefaultProvider(t *testing.T) {
	h := OpenTelemetry(WithTracerName("test"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Body.String() != "ok" {
		t.Errorf("body = %q", w.Body.String())
	}
}
