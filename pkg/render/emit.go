package render

import (
	"html/template"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attr"
	"github.com/vango-dev/markup/pkg/escape"
)

// Emit writes one element. tag must be in the element table; either
// spelling of a dashed name works. See the package documentation for
// the accepted arguments.
func (r *Renderer) Emit(tag string, args ...any) {
	if r.err != nil {
		return
	}
	e, ok := elementIndex[tag]
	if !ok {
		r.fail(errors.New("E101").WithDetailf("unknown element <%s>", tag))
		return
	}
	r.emit(e, args)
}

// content is what an element call wants written between its tags.
type content struct {
	text    string
	safe    bool
	hasText bool
	produce any
}

func (r *Renderer) emit(e *Element, args []any) {
	if r.err != nil {
		return
	}

	attrs, body, err := r.parseArgs(e, args)
	if err != nil {
		r.fail(err)
		return
	}
	if e.Void && (body.hasText || body.produce != nil) {
		r.fail(errors.New("E103").WithDetailf("<%s> is a void element", e.Name))
		return
	}

	frag, err := r.cache.Serialize(attrs)
	if err != nil {
		if me, ok := err.(*errors.MarkupError); ok && me.Location == nil && me.Suggestion == "" {
			me.Suggestion = "Check the attributes passed to <" + e.Name + ">"
		}
		r.fail(err)
		return
	}

	r.stack.appendFunc(func(b []byte) []byte {
		b = append(b, '<')
		b = append(b, e.Name...)
		b = append(b, frag...)
		if e.Void {
			return append(b, " />"...)
		}
		return append(b, '>')
	})
	if e.Void {
		return
	}

	switch {
	case body.produce != nil:
		if !r.runProducer(e, body.produce) {
			return
		}
	case body.safe:
		r.stack.writeString(body.text)
	case body.hasText:
		r.stack.appendFunc(func(b []byte) []byte { return escape.AppendString(b, body.text) })
	}

	r.stack.appendFunc(func(b []byte) []byte {
		b = append(b, "</"...)
		b = append(b, e.Name...)
		return append(b, '>')
	})
}

// parseArgs sorts element arguments into attributes and content.
func (r *Renderer) parseArgs(e *Element, args []any) (attr.Set, content, error) {
	var (
		body     content
		attrs    attr.Set
		borrowed bool // attrs aliases a caller's Set
	)

	// Merging starts from the scratch set. It is free to reuse: the
	// previous element finished with it before running any producer.
	merge := func(as ...attr.Attr) {
		if borrowed {
			attrs = append(r.attrs[:0], attrs...)
			borrowed = false
		} else if attrs == nil {
			attrs = r.attrs[:0]
		}
		for _, a := range as {
			attrs.Set(a.Key, a.Value)
		}
	}

	for _, arg := range args {
		switch a := arg.(type) {
		case nil:
		case attr.Attr:
			merge(a)
		case attr.Set:
			if attrs == nil {
				attrs, borrowed = a, true
			} else {
				merge(a...)
			}
		case []attr.Attr:
			if attrs == nil {
				attrs, borrowed = attr.Set(a), true
			} else {
				merge(a...)
			}
		case string:
			if body.hasText {
				return nil, body, duplicateContent(e)
			}
			body.text, body.hasText = a, true
		case SafeHTML:
			if body.hasText {
				return nil, body, duplicateContent(e)
			}
			body.text, body.safe, body.hasText = string(a), true, true
		case template.HTML:
			if body.hasText {
				return nil, body, duplicateContent(e)
			}
			body.text, body.safe, body.hasText = string(a), true, true
		case func(), func() string, func() SafeHTML, func() error, func(*Renderer):
			if body.produce != nil {
				return nil, body, duplicateContent(e)
			}
			body.produce = a
		default:
			return nil, body, errors.New("E105").WithDetailf("<%s> got %T", e.Name, arg)
		}
	}

	if !borrowed && attrs != nil {
		r.attrs = attrs[:0]
	}
	return attrs, body, nil
}

func duplicateContent(e *Element) error {
	return errors.New("E106").WithDetailf("<%s> got more than one content argument", e.Name)
}

// retKind says which of a producer's results is the element content.
type retKind uint8

const (
	retBuffer retKind = iota
	retText
	retSafe
)

// runProducer captures produce's output and writes the resulting
// content. It reports false when the render failed meanwhile.
func (r *Renderer) runProducer(e *Element, produce any) bool {
	nested, ret, kind, err := r.capture(produce)
	defer putNested(nested)

	if err != nil {
		r.fail(errors.New("E107").WithDetailf("inside <%s>", e.Name).Wrap(err))
		return false
	}
	if r.err != nil {
		return false
	}

	switch kind {
	case retText:
		r.stack.appendFunc(func(b []byte) []byte { return escape.AppendString(b, ret) })
	case retSafe:
		r.stack.writeString(ret)
	default:
		r.stack.write(nested)
	}
	return true
}

// capture runs produce with a fresh buffer pushed. The buffer is popped
// on every exit, panics included.
func (r *Renderer) capture(produce any) (nested []byte, ret string, kind retKind, err error) {
	h := r.stack.push()
	defer func() { nested = r.stack.pop(h) }()

	switch p := produce.(type) {
	case func():
		p()
	case func(*Renderer):
		p(r)
	case func() string:
		ret, kind = p(), retText
	case func() SafeHTML:
		ret, kind = string(p()), retSafe
	case func() error:
		err = p()
	}
	return
}
