// Package middleware provides observability for markup renders and the
// page server.
//
// # Prometheus Metrics
//
// Metrics implements attr.Observer and render.Observer, so one value
// collects both cache and render statistics, and wraps HTTP handlers:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("site"))
//	cache := attr.NewCache(4096, attr.WithObserver(m))
//	r := render.New(host, build, render.WithCache(cache), render.WithObserver(m))
//	router.Use(m.Handler)
//	router.Handle("/metrics", promhttp.Handler())
//
// Collected:
//   - markup_renders_total{status}
//   - markup_render_errors_total{code}
//   - markup_render_duration_seconds
//   - markup_render_bytes
//   - markup_attr_cache_hits_total, _misses_total, _evictions_total
//   - markup_http_requests_total{route,status}
//   - markup_http_request_duration_seconds{route}
//
// # OpenTelemetry
//
// OpenTelemetry wraps HTTP handlers in a server span using the global
// tracer provider. Renders started with the request context become
// children of that span when the renderer has a tracer:
//
//	router.Use(middleware.OpenTelemetry())
//	render.New(host, build, render.WithTracer(otel.Tracer("markup")))
package middleware
