package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// flushWriter counts flushes, standing in for an http.ResponseWriter.
type flushWriter struct {
	io.Writer
	flushes int
}

func (w *flushWriter) Flush() { w.flushes++ }

func testPage() Page {
	return Page{
		Title:       "Hi & bye",
		Meta:        []MetaTag{{Name: "description", Content: "A page"}},
		Links:       []LinkTag{{Rel: "icon", Href: "/favicon.ico"}},
		StyleSheets: []string{"/app.css"},
		Scripts: []ScriptTag{
			{Src: "/app.js", Defer: true},
			{Inline: "console.log(1 < 2)"},
		},
		Body: func(r *Renderer) { r.P("x") },
	}
}

const testPageHTML = "<!DOCTYPE html>\n" +
	`<html lang="en"><head>` +
	`<meta charset="utf-8" />` +
	`<meta name="viewport" content="width=device-width, initial-scale=1" />` +
	`<title>Hi &amp; bye</title>` +
	`<meta name="description" content="A page" />` +
	`<link rel="icon" href="/favicon.ico" />` +
	`<link rel="stylesheet" href="/app.css" />` +
	`</head><body><p>x</p>` +
	`<script src="/app.js" defer></script>` +
	`<script>console.log(1 < 2)</script>` +
	`</body></html>`

func TestPageDocument(t *testing.T) {
	got := render(t, nil, testPage().Document)
	if got != testPageHTML {
		t.Errorf("got\n%s\nwant\n%s", got, testPageHTML)
	}
}

func TestPageLang(t *testing.T) {
	got := render(t, nil, Page{Lang: "de"}.Document)
	if !strings.Contains(got, `<html lang="de">`) {
		t.Errorf("got %q", got)
	}
}

func TestWritePage(t *testing.T) {
	var buf bytes.Buffer
	w := &flushWriter{Writer: &buf}
	if err := WritePage(context.Background(), w, nil, testPage()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != testPageHTML {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), testPageHTML)
	}
	if w.flushes != 2 {
		t.Errorf("flushes = %d, want 2", w.flushes)
	}
}

func TestWritePageBodyError(t *testing.T) {
	var buf bytes.Buffer
	p := Page{Body: func(r *Renderer) { r.Call("missing") }}
	err := WritePage(context.Background(), &buf, nil, p)
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("WritePage() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "</head>") {
		t.Errorf("expected only the head to be written, got %q", buf.String())
	}
}

func TestRenderTo(t *testing.T) {
	var buf bytes.Buffer
	w := &flushWriter{Writer: &buf}
	r := New(nil, func(r *Renderer) { r.Hr() })
	if err := r.RenderTo(context.Background(), w); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<hr />" || w.flushes != 1 {
		t.Errorf("got %q with %d flushes", buf.String(), w.flushes)
	}

	buf.Reset()
	r = New(nil, func(r *Renderer) { r.Hr("x") })
	if err := r.RenderTo(context.Background(), &buf); err == nil || buf.Len() != 0 {
		t.Errorf("RenderTo() = %v with %q written, want error and nothing", err, buf.String())
	}
}
