// Package render is the markup rendering engine.
//
// A Renderer runs a build routine against itself. Every element call
// writes straight into the renderer's current buffer:
//
//	r := render.New(nil, func(r *render.Renderer) {
//	    r.Div(attr.Class("card"), func() {
//	        r.H1("Title")
//	        r.P("Paragraph with <b>escaped</b> text")
//	    })
//	})
//	html, err := r.Render(ctx)
//	// <div class="card"><h1>Title</h1><p>Paragraph with &lt;b&gt;escaped&lt;/b&gt; text</p></div>
//
// # Element arguments
//
// Element methods (one per entry of the element table, see Elements)
// take any mix of:
//
//   - attr.Attr, attr.Set or []attr.Attr: attributes, merged in order
//   - string: text content, escaped
//   - SafeHTML or html/template.HTML: content written verbatim
//   - func(): nested content written through the renderer
//   - func() string, func() SafeHTML: nested content given by the
//     returned value; anything the function wrote is discarded
//   - func() error: nested content that may fail
//   - nil: ignored, handy for conditional arguments
//
// A nested function wins over direct text. Void elements (br, img,
// input, ...) render as <tag ... /> and reject content with E103.
//
// # Nested capture
//
// While a nested function runs, a fresh buffer is pushed on the
// renderer's buffer stack, so everything it writes is captured. The
// buffer is popped before the element continues, also when the
// function panics, so a failed block never leaks output into its
// parent or siblings.
//
// # Errors
//
// The first failure (unknown operation, malformed attribute, void
// element content, failed block) is kept and makes every later call a
// no-op; Render returns it. Errors carry codes from internal/errors and
// match the sentinels below with errors.Is.
//
// # Hosts
//
// A renderer may be given a host. If the host implements
// AmbientProvider, its values are copied in once, on the first Render.
// If it implements Invoker, Call forwards names that are neither
// elements nor plain/component to it.
//
// # Concurrency
//
// A Renderer belongs to one render at a time. Any number of renderers
// may run concurrently; they share only the attribute cache.
package render
