package render

import (
	"context"
	"io"
	"net/http"
)

// WritePage renders p to w in two parts, the head first, flushing after
// each when w is an http.Flusher. A failure in the body is returned
// after the head has already been written.
func WritePage(ctx context.Context, w io.Writer, host any, p Page, opts ...Option) error {
	flusher, _ := w.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}

	head, err := New(host, func(r *Renderer) {
		r.Doctype()
		r.Component(SafeHTML(`<html lang="`))
		r.Plain(p.lang())
		r.Component(SafeHTML(`">`))
		p.Head(r)
	}, opts...).Render(ctx)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	flush()

	body, err := New(host, func(r *Renderer) {
		r.Body(func() { p.BodyContent(r) })
		r.Component(SafeHTML("</html>"))
	}, opts...).Render(ctx)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, body); err != nil {
		return err
	}
	flush()
	return nil
}

// RenderTo renders and writes the result to w, flushing when w is an
// http.Flusher. Nothing is written if the render fails.
func (r *Renderer) RenderTo(ctx context.Context, w io.Writer) error {
	out, err := r.Render(ctx)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
