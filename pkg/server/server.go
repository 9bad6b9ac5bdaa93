package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/markup/internal/dev"
	"github.com/vango-dev/markup/pkg/escape"
	"github.com/vango-dev/markup/pkg/middleware"
	"github.com/vango-dev/markup/pkg/render"
)

// Config configures a Server.
type Config struct {
	// Address is the address to listen on. Default: "localhost:3000".
	Address string

	// Site holds the pages. Required.
	Site *Site

	// Static is the directory of static files. Files take precedence
	// over pages of the same path.
	Static string

	// CacheControl is the Cache-Control policy for static files.
	CacheControl CacheControl

	// Stream writes the document head before rendering the body. A
	// failing body then cannot change the status code.
	Stream bool

	// Reload enables hot reload: the socket is mounted at
	// dev.ReloadPath and every page loads the client script.
	Reload *dev.ReloadServer

	// Metrics records requests and renders.
	Metrics *middleware.Metrics

	// Gatherer is served at /metrics when set.
	Gatherer prometheus.Gatherer

	// TracerProvider traces requests and renders when set.
	TracerProvider trace.TracerProvider

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// ShutdownTimeout bounds graceful shutdown. Default: 10 seconds.
	ShutdownTimeout time.Duration
}

// Server renders pages over HTTP.
type Server struct {
	config     Config
	site       *Site
	handler    http.Handler
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a server. The Site in cfg is copied, not modified.
func New(cfg Config) *Server {
	if cfg.Address == "" {
		cfg.Address = "localhost:3000"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	site := &Site{}
	if cfg.Site != nil {
		*site = *cfg.Site
	}
	site.Options = append([]render.Option{render.WithLogger(cfg.Logger)}, site.Options...)
	if cfg.Metrics != nil {
		site.Options = append(site.Options, render.WithObserver(cfg.Metrics))
	}
	if cfg.TracerProvider != nil {
		site.Options = append(site.Options, render.WithTracer(cfg.TracerProvider.Tracer("markup")))
	}
	if cfg.Reload != nil {
		scripts := make([]render.ScriptTag, 0, len(site.Scripts)+1)
		scripts = append(scripts, site.Scripts...)
		site.Scripts = append(scripts, render.ScriptTag{Inline: dev.ClientScript})
	}

	s := &Server{config: cfg, site: site, logger: cfg.Logger}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	if s.config.TracerProvider != nil {
		r.Use(middleware.OpenTelemetry(middleware.WithTracerProvider(s.config.TracerProvider)))
	}
	if s.config.Metrics != nil {
		r.Use(s.config.Metrics.Handler)
	}

	if s.config.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	if s.config.Reload != nil {
		r.Handle(dev.ReloadPath, s.config.Reload)
	}
	r.Get("/", s.handlePage)
	r.Get("/*", s.handlePage)
	r.Head("/*", s.handlePage)
	return r
}

// Handler returns the HTTP handler, for mounting in another router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Site returns the site the server renders, with server options
// applied.
func (s *Server) Site() *Site {
	return s.site
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if s.serveStatic(w, r) {
		return
	}

	host := s.requestHost(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.config.Reload != nil {
		w.Header().Set("Cache-Control", "no-store")
	}

	if s.config.Stream && r.Method != http.MethodHead {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		if err := s.site.Stream(r.Context(), ww, r.URL.Path, host); err != nil {
			if ww.BytesWritten() == 0 {
				s.writeError(w, r, err)
				return
			}
			s.logger.Error("page render failed after head was sent", "path", r.URL.Path, "error", err)
		}
		return
	}

	out, err := s.site.Render(r.Context(), r.URL.Path, host)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte(out))
	}
}

// requestHost exposes the request to the page.
func (s *Server) requestHost(r *http.Request) *render.Env {
	query := make(map[string]any)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}
	return s.site.Host(map[string]any{
		"path":   r.URL.Path,
		"method": r.Method,
		"query":  query,
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Internal Server Error"
	if IsNotFound(err) {
		status = http.StatusNotFound
		title = "Not Found"
	} else {
		s.logger.Error("page render failed", "path", r.URL.Path, "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}

	body := "<!DOCTYPE html>\n<html><head><title>" + title + "</title></head><body><h1>" + title + "</h1>"
	if s.config.Reload != nil {
		body += "<pre>" + escape.String(err.Error()) + "</pre><script>" + dev.ClientScript + "</script>"
	}
	body += "</body></html>"
	_, _ = w.Write([]byte(body))
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.config.Reload != nil {
		s.config.Reload.Close()
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
