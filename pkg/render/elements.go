package render

import "strings"

// Element describes one known tag.
type Element struct {
	// Name is the tag name as written in markup.
	Name string

	// Method is the Renderer method that emits this element.
	Method string

	// Void elements have no closing tag and no content.
	Void bool
}

// elements is the element table, fixed at build time. The generated
// methods in elements_gen.go index into it, so entries are append-only.
var elements = [...]Element{
	{Name: "a", Method: "A"},
	{Name: "abbr", Method: "Abbr"},
	{Name: "address", Method: "Address"},
	{Name: "area", Method: "Area", Void: true},
	{Name: "article", Method: "Article"},
	{Name: "aside", Method: "Aside"},
	{Name: "audio", Method: "Audio"},
	{Name: "b", Method: "B"},
	{Name: "base", Method: "Base", Void: true},
	{Name: "bdi", Method: "Bdi"},
	{Name: "bdo", Method: "Bdo"},
	{Name: "blockquote", Method: "Blockquote"},
	{Name: "body", Method: "Body"},
	{Name: "br", Method: "Br", Void: true},
	{Name: "button", Method: "Button"},
	{Name: "canvas", Method: "Canvas"},
	{Name: "caption", Method: "Caption"},
	{Name: "cite", Method: "Cite"},
	{Name: "code", Method: "Code"},
	{Name: "col", Method: "Col", Void: true},
	{Name: "colgroup", Method: "Colgroup"},
	{Name: "data", Method: "Data"},
	{Name: "datalist", Method: "Datalist"},
	{Name: "dd", Method: "Dd"},
	{Name: "del", Method: "Del"},
	{Name: "details", Method: "Details"},
	{Name: "dfn", Method: "Dfn"},
	{Name: "dialog", Method: "Dialog"},
	{Name: "div", Method: "Div"},
	{Name: "dl", Method: "Dl"},
	{Name: "dt", Method: "Dt"},
	{Name: "em", Method: "Em"},
	{Name: "embed", Method: "Embed", Void: true},
	{Name: "fieldset", Method: "Fieldset"},
	{Name: "figcaption", Method: "Figcaption"},
	{Name: "figure", Method: "Figure"},
	{Name: "footer", Method: "Footer"},
	{Name: "form", Method: "Form"},
	{Name: "h1", Method: "H1"},
	{Name: "h2", Method: "H2"},
	{Name: "h3", Method: "H3"},
	{Name: "h4", Method: "H4"},
	{Name: "h5", Method: "H5"},
	{Name: "h6", Method: "H6"},
	{Name: "head", Method: "Head"},
	{Name: "header", Method: "Header"},
	{Name: "hr", Method: "Hr", Void: true},
	{Name: "html", Method: "Html"},
	{Name: "i", Method: "I"},
	{Name: "iframe", Method: "Iframe"},
	{Name: "img", Method: "Img", Void: true},
	{Name: "input", Method: "Input", Void: true},
	{Name: "ins", Method: "Ins"},
	{Name: "kbd", Method: "Kbd"},
	{Name: "label", Method: "Label"},
	{Name: "legend", Method: "Legend"},
	{Name: "li", Method: "Li"},
	{Name: "link", Method: "Link", Void: true},
	{Name: "main", Method: "Main"},
	{Name: "map", Method: "Map"},
	{Name: "mark", Method: "Mark"},
	{Name: "meta", Method: "Meta", Void: true},
	{Name: "meter", Method: "Meter"},
	{Name: "nav", Method: "Nav"},
	{Name: "noscript", Method: "Noscript"},
	{Name: "object", Method: "Object"},
	{Name: "ol", Method: "Ol"},
	{Name: "optgroup", Method: "Optgroup"},
	{Name: "option", Method: "Option"},
	{Name: "output", Method: "Output"},
	{Name: "p", Method: "P"},
	{Name: "param", Method: "Param", Void: true},
	{Name: "picture", Method: "Picture"},
	{Name: "pre", Method: "Pre"},
	{Name: "progress", Method: "Progress"},
	{Name: "q", Method: "Q"},
	{Name: "rp", Method: "Rp"},
	{Name: "rt", Method: "Rt"},
	{Name: "ruby", Method: "Ruby"},
	{Name: "s", Method: "S"},
	{Name: "samp", Method: "Samp"},
	{Name: "script", Method: "Script"},
	{Name: "section", Method: "Section"},
	{Name: "select", Method: "Select"},
	{Name: "small", Method: "Small"},
	{Name: "source", Method: "Source", Void: true},
	{Name: "span", Method: "Span"},
	{Name: "strong", Method: "Strong"},
	{Name: "style", Method: "Style"},
	{Name: "sub", Method: "Sub"},
	{Name: "summary", Method: "Summary"},
	{Name: "sup", Method: "Sup"},
	{Name: "table", Method: "Table"},
	{Name: "tbody", Method: "Tbody"},
	{Name: "td", Method: "Td"},
	{Name: "template", Method: "Template"},
	{Name: "textarea", Method: "Textarea"},
	{Name: "tfoot", Method: "Tfoot"},
	{Name: "th", Method: "Th"},
	{Name: "thead", Method: "Thead"},
	{Name: "time", Method: "Time"},
	{Name: "title", Method: "Title"},
	{Name: "tr", Method: "Tr"},
	{Name: "track", Method: "Track", Void: true},
	{Name: "u", Method: "U"},
	{Name: "ul", Method: "Ul"},
	{Name: "var", Method: "Var"},
	{Name: "video", Method: "Video"},
	{Name: "wbr", Method: "Wbr", Void: true},
	{Name: "turbo-frame", Method: "TurboFrame"},
	{Name: "turbo-stream", Method: "TurboStream"},
}

// elementIndex maps tag names, and their underscore spellings, to
// table entries.
var elementIndex = func() map[string]*Element {
	m := make(map[string]*Element, len(elements)*2)
	for i := range elements {
		e := &elements[i]
		m[e.Name] = e
		if alt := strings.ReplaceAll(e.Name, "-", "_"); alt != e.Name {
			m[alt] = e
		}
	}
	return m
}()

// Lookup returns the element for a tag name. "turbo_frame" finds
// "turbo-frame".
func Lookup(name string) (Element, bool) {
	e, ok := elementIndex[name]
	if !ok {
		return Element{}, false
	}
	return *e, true
}

// IsVoid returns true if the tag is a known void element.
func IsVoid(tag string) bool {
	e, ok := elementIndex[tag]
	return ok && e.Void
}

// Elements returns a copy of the element table in table order.
func Elements() []Element {
	out := make([]Element, len(elements))
	copy(out, elements[:])
	return out
}
