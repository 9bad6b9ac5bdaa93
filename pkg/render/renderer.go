package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attr"
	"github.com/vango-dev/markup/pkg/escape"
)

// Errors recorded by a render. Compare with errors.Is.
var (
	ErrRenderFailed       = errors.New("E100")
	ErrUnknownOperation   = errors.New("E101")
	ErrMalformedAttribute = attr.ErrMalformedAttribute
	ErrVoidContent        = errors.New("E103")
	ErrStackMisuse        = errors.New("E104")
	ErrBadArgument        = errors.New("E105")
	ErrDuplicateContent   = errors.New("E106")
	ErrNestedFailed       = errors.New("E107")
)

// Observer receives one event per finished Render.
type Observer interface {
	RenderDone(d time.Duration, bytes int, err error)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCache sets the attribute cache. nil disables caching.
func WithCache(c *attr.Cache) Option {
	return func(r *Renderer) { r.cache = c }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracer wraps every Render in a "markup.render" span.
func WithTracer(t trace.Tracer) Option {
	return func(r *Renderer) { r.tracer = t }
}

// WithObserver reports render timings, sizes and failures.
func WithObserver(o Observer) Option {
	return func(r *Renderer) { r.observer = o }
}

// Renderer runs a build routine and collects the markup it writes.
type Renderer struct {
	host  any
	build func(*Renderer)

	stack    *bufferStack
	cache    *attr.Cache
	logger   *slog.Logger
	tracer   trace.Tracer
	observer Observer
	opts     []Option

	ctx         context.Context
	ambient     map[string]any
	initialized bool

	// err is the first failure of the current render. Once set, every
	// write is a no-op.
	err error

	// scratch for merging attribute arguments
	attrs attr.Set
}

// New creates a renderer for build. host may be nil.
func New(host any, build func(*Renderer), opts ...Option) *Renderer {
	r := &Renderer{
		host:   host,
		build:  build,
		stack:  newBufferStack(),
		cache:  attr.Default,
		logger: slog.Default(),
		ctx:    context.Background(),
		opts:   opts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HTML renders build with a new renderer and returns the result marked
// safe, ready to pass to Component.
func HTML(ctx context.Context, host any, build func(*Renderer), opts ...Option) (SafeHTML, error) {
	out, err := New(host, build, opts...).Render(ctx)
	return SafeHTML(out), err
}

// Render runs the build routine and returns the markup. On the first
// call the host's ambient values are copied in. Render may be called
// again; every call starts from an empty buffer.
//
// A panic in the build routine propagates to the caller after every
// capture buffer has been released.
func (r *Renderer) Render(ctx context.Context) (out string, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !r.initialized {
		r.ambient = copyAmbient(r.host)
		r.initialized = true
	}

	var span trace.Span
	if r.tracer != nil {
		ctx, span = r.tracer.Start(ctx, "markup.render")
		defer span.End()
	}

	r.ctx = ctx
	r.err = nil
	r.stack.reset()

	start := time.Now()
	if r.build != nil {
		r.build(r)
	}
	if r.stack.depth() != 0 {
		r.fail(errors.New("E104").WithDetailf("%d capture frames left open", r.stack.depth()))
	}

	err = r.err
	if err == nil {
		out = string(r.stack.current())
	}
	d := time.Since(start)

	if span != nil {
		span.SetAttributes(attribute.Int("markup.bytes", len(out)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	if r.observer != nil {
		r.observer.RenderDone(d, len(out), err)
	}
	if err != nil {
		r.logger.Debug("render failed", "error", err, "duration", d)
	}
	return out, err
}

// Context returns the context of the render in progress.
func (r *Renderer) Context() context.Context {
	return r.ctx
}

// Host returns the host the renderer was created with.
func (r *Renderer) Host() any {
	return r.host
}

// Err returns the first failure of the current render, if any.
func (r *Renderer) Err() error {
	return r.err
}

// Depth returns the number of capture buffers currently pushed.
func (r *Renderer) Depth() int {
	return r.stack.depth()
}

// Fail records err as the render's failure unless one is already
// recorded. Helpers use it to abort a render from inside a build
// routine.
func (r *Renderer) Fail(err error) {
	if err != nil {
		r.fail(err)
	}
}

func (r *Renderer) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Lookup returns an ambient value copied from the host.
func (r *Renderer) Lookup(name string) (any, bool) {
	v, ok := r.ambient[name]
	return v, ok
}

// Get returns an ambient value, or nil.
func (r *Renderer) Get(name string) any {
	return r.ambient[name]
}

// Plain writes v as text. SafeHTML and template.HTML are written as
// is; everything else is escaped.
func (r *Renderer) Plain(v any) {
	if r.err != nil || isNil(v) {
		return
	}
	if s, ok := safeText(v); ok {
		r.stack.writeString(s)
		return
	}
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	case error:
		s = v.Error()
	default:
		s = fmt.Sprint(v)
	}
	r.stack.appendFunc(func(b []byte) []byte { return escape.AppendString(b, s) })
}

// Component writes markup without escaping. The caller vouches that
// it is safe, typically because it is the output of another render.
func (r *Renderer) Component(v any) {
	if r.err != nil || isNil(v) {
		return
	}
	if s, ok := safeText(v); ok {
		r.stack.writeString(s)
		return
	}
	switch v := v.(type) {
	case string:
		r.stack.writeString(v)
	case []byte:
		r.stack.write(v)
	case fmt.Stringer:
		r.stack.writeString(v.String())
	default:
		r.fail(errors.New("E105").WithDetailf("component got %T", v))
	}
}

// Call dispatches by name: element names (either spelling), "plain" and
// "component" are handled by the renderer; anything else goes to the
// host's Invoker. A name nobody handles fails the render with
// ErrUnknownOperation, which is also returned.
func (r *Renderer) Call(name string, args ...any) (any, error) {
	if r.err != nil {
		return nil, r.err
	}
	switch name {
	case "plain":
		for _, a := range args {
			r.Plain(a)
		}
		return nil, r.err
	case "component":
		for _, a := range args {
			r.Component(a)
		}
		return nil, r.err
	}
	if e, ok := elementIndex[name]; ok {
		r.emit(e, args)
		return nil, r.err
	}
	if inv, ok := r.host.(Invoker); ok {
		v, handled, err := inv.Invoke(r, name, args)
		if handled {
			if err != nil {
				r.fail(errors.FromError(err, "E100"))
			}
			return v, r.err
		}
	}
	err := errors.New("E101").WithDetailf("%q is not an element, plain, component or host helper", name)
	if r.host == nil {
		err = err.WithSuggestion("Pass a host implementing render.Invoker to handle custom calls")
	}
	r.fail(err)
	return nil, err
}

// Nested renders build with a fresh renderer sharing this renderer's
// host and options, and returns its markup marked safe.
func (r *Renderer) Nested(build func(*Renderer)) (SafeHTML, error) {
	return HTML(r.ctx, r.host, build, r.opts...)
}
