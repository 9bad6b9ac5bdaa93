package render

import (
	"github.com/vango-dev/markup/pkg/attr"
)

// Page describes a complete document around a body build routine.
type Page struct {
	// Title is the document title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	Meta        []MetaTag
	Links       []LinkTag
	StyleSheets []string

	// Styles are inline CSS blocks. They are trusted and not escaped.
	Styles []string

	// Scripts are emitted at the end of the body.
	Scripts []ScriptTag

	// HeadContent, when set, adds to the end of <head>.
	HeadContent func(r *Renderer)

	// Body builds the content of <body>.
	Body func(r *Renderer)
}

// MetaTag is a <meta> element in the head.
type MetaTag struct {
	Name      string
	Content   string
	Property  string // OpenGraph
	HTTPEquiv string
	Charset   string
}

// LinkTag is a <link> element in the head.
type LinkTag struct {
	Rel         string
	Href        string
	Type        string
	Sizes       string
	CrossOrigin string
	Media       string
}

// ScriptTag is a <script> element. Inline code is trusted.
type ScriptTag struct {
	Src    string
	Type   string
	Defer  bool
	Async  bool
	Module bool
	Inline string
}

// Doctype writes the HTML5 doctype line.
func (r *Renderer) Doctype() {
	r.Component(SafeHTML("<!DOCTYPE html>\n"))
}

// Document is the build routine for the whole page.
func (p Page) Document(r *Renderer) {
	r.Doctype()
	r.Html(attr.Lang(p.lang()), func() {
		p.Head(r)
		r.Body(func() { p.BodyContent(r) })
	})
}

func (p Page) lang() string {
	if p.Lang == "" {
		return "en"
	}
	return p.Lang
}

// Head writes the <head> element.
func (p Page) Head(r *Renderer) {
	r.Head(func() {
		r.Meta(attr.Charset("utf-8"))
		r.Meta(attr.Name("viewport"), attr.Content("width=device-width, initial-scale=1"))
		if p.Title != "" {
			r.Title(p.Title)
		}
		for _, m := range p.Meta {
			r.Meta(attr.Set{
				{Key: "charset", Value: optional(m.Charset)},
				{Key: "name", Value: optional(m.Name)},
				{Key: "property", Value: optional(m.Property)},
				{Key: "http-equiv", Value: optional(m.HTTPEquiv)},
				{Key: "content", Value: optional(m.Content)},
			})
		}
		for _, l := range p.Links {
			r.Link(attr.Set{
				{Key: "rel", Value: optional(l.Rel)},
				{Key: "href", Value: optional(l.Href)},
				{Key: "type", Value: optional(l.Type)},
				{Key: "sizes", Value: optional(l.Sizes)},
				{Key: "crossorigin", Value: optional(l.CrossOrigin)},
				{Key: "media", Value: optional(l.Media)},
			})
		}
		for _, href := range p.StyleSheets {
			r.Link(attr.Rel("stylesheet"), attr.Href(href))
		}
		for _, css := range p.Styles {
			r.Style(Safe(css))
		}
		if p.HeadContent != nil {
			p.HeadContent(r)
		}
	})
}

// BodyContent writes the body routine followed by the page scripts.
func (p Page) BodyContent(r *Renderer) {
	if p.Body != nil {
		p.Body(r)
	}
	for _, s := range p.Scripts {
		s.emit(r)
	}
}

func (s ScriptTag) emit(r *Renderer) {
	typ := optional(s.Type)
	if s.Module {
		typ = "module"
	}
	attrs := attr.Set{
		{Key: "src", Value: optional(s.Src)},
		{Key: "type", Value: typ},
		{Key: "defer", Value: s.Defer},
		{Key: "async", Value: s.Async},
	}
	if s.Inline != "" {
		r.Script(attrs, Safe(s.Inline))
		return
	}
	r.Script(attrs)
}

// optional turns "" into nil so the attribute is left out.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
