package attr

import "strings"

func attr(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Identity

func ID(id string) Attr { return attr("id", id) }

// Class joins classes with spaces, skipping empty ones.
func Class(classes ...string) Attr {
	parts := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// ClassIf sets class only when condition holds.
func ClassIf(condition bool, class string) Attr {
	if !condition {
		return Attr{}
	}
	return attr("class", class)
}

func Style(style string) Attr { return attr("style", style) }
func Title(title string) Attr { return attr("title", title) }
func Lang(lang string) Attr   { return attr("lang", lang) }
func Dir(dir string) Attr     { return attr("dir", dir) }
func Role(role string) Attr   { return attr("role", role) }

// Data creates a data-* attribute: Data("id", "123") → data-id="123".
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// Aria creates an aria-* attribute: Aria("label", "Close") → aria-label="Close".
func Aria(key string, value any) Attr { return attr("aria-"+key, value) }

// Links and media

func Href(url string) Attr        { return attr("href", url) }
func Target(target string) Attr   { return attr("target", target) }
func Rel(rel string) Attr         { return attr("rel", rel) }
func Src(url string) Attr         { return attr("src", url) }
func Alt(text string) Attr        { return attr("alt", text) }
func Width(w int) Attr            { return attr("width", w) }
func Height(h int) Attr           { return attr("height", h) }
func Loading(mode string) Attr    { return attr("loading", mode) }
func Srcset(srcset string) Attr   { return attr("srcset", srcset) }
func Charset(charset string) Attr { return attr("charset", charset) }
func Content(content string) Attr { return attr("content", content) }

// Forms

func Action(url string) Attr       { return attr("action", url) }
func Method(method string) Attr    { return attr("method", method) }
func Name(name string) Attr        { return attr("name", name) }
func Value(value any) Attr         { return attr("value", value) }
func Type(t string) Attr           { return attr("type", t) }
func For(id string) Attr           { return attr("for", id) }
func Placeholder(text string) Attr { return attr("placeholder", text) }
func TabIndex(index int) Attr      { return attr("tabindex", index) }
func Rows(n int) Attr              { return attr("rows", n) }
func Cols(n int) Attr              { return attr("cols", n) }

// Boolean attributes

func Disabled() Attr  { return attr("disabled", true) }
func Checked() Attr   { return attr("checked", true) }
func Selected() Attr  { return attr("selected", true) }
func Required() Attr  { return attr("required", true) }
func Readonly() Attr  { return attr("readonly", true) }
func Multiple() Attr  { return attr("multiple", true) }
func Autofocus() Attr { return attr("autofocus", true) }
func Hidden() Attr    { return attr("hidden", true) }
func Open() Attr      { return attr("open", true) }
func Defer() Attr     { return attr("defer", true) }
func Async() Attr     { return attr("async", true) }

// If returns a when condition holds and an empty Attr otherwise.
func If(condition bool, a Attr) Attr {
	if !condition {
		return Attr{}
	}
	return a
}
