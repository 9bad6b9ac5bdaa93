package server

import (
	"fmt"
	"sort"

	"github.com/vango-dev/markup/pkg/attr"
	"github.com/vango-dev/markup/pkg/render"
)

// DefaultHelpers returns the helpers every page can call.
func DefaultHelpers() render.Helpers {
	return render.Helpers{
		"link_to":   linkTo,
		"image_tag": imageTag,
		"button_to": buttonTo,
		"form_with": formWith,
		"get":       get,
		"query":     query,
	}
}

// get returns an ambient value: get(name). Missing names render
// nothing.
func get(r *render.Renderer, args []any) (any, error) {
	if err := arity("get", args, 1); err != nil {
		return nil, err
	}
	name, err := stringArg("get", args, 0)
	if err != nil {
		return nil, err
	}
	return r.Get(name), nil
}

// query returns a request query parameter: query(name, [default]).
func query(r *render.Renderer, args []any) (any, error) {
	if err := arity("query", args, 1); err != nil {
		return nil, err
	}
	name, err := stringArg("query", args, 0)
	if err != nil {
		return nil, err
	}
	if q, ok := r.Get("query").(map[string]any); ok {
		if v, ok := q[name]; ok {
			return v, nil
		}
	}
	if len(args) == 2 {
		return args[1], nil
	}
	return nil, nil
}

// linkTo renders <a href>: link_to(text, href, [attrs]).
func linkTo(r *render.Renderer, args []any) (any, error) {
	if err := arity("link_to", args, 2); err != nil {
		return nil, err
	}
	href, err := stringArg("link_to", args, 1)
	if err != nil {
		return nil, err
	}
	extra, err := attrsArg("link_to", args, 2)
	if err != nil {
		return nil, err
	}
	attrs := attr.Set{attr.Href(href)}
	attrs.Add(extra...)
	return r.Nested(func(r *render.Renderer) {
		r.A(attrs, content(args[0]))
	})
}

// imageTag renders <img>: image_tag(src, [attrs]). alt defaults to
// the file name without extension.
func imageTag(r *render.Renderer, args []any) (any, error) {
	if err := arity("image_tag", args, 1); err != nil {
		return nil, err
	}
	src, err := stringArg("image_tag", args, 0)
	if err != nil {
		return nil, err
	}
	extra, err := attrsArg("image_tag", args, 1)
	if err != nil {
		return nil, err
	}
	attrs := attr.Set{attr.Src(src), attr.Alt(altFromSrc(src))}
	attrs.Add(extra...)
	return r.Nested(func(r *render.Renderer) {
		r.Img(attrs)
	})
}

// buttonTo renders a one-button form that posts to a URL:
// button_to(text, action, [attrs]). attrs go on the button; "method"
// overrides the form method.
func buttonTo(r *render.Renderer, args []any) (any, error) {
	if err := arity("button_to", args, 2); err != nil {
		return nil, err
	}
	action, err := stringArg("button_to", args, 1)
	if err != nil {
		return nil, err
	}
	extra, err := attrsArg("button_to", args, 2)
	if err != nil {
		return nil, err
	}
	method := any("post")
	button := attr.Set{attr.Type("submit")}
	for _, a := range extra {
		if a.Key == "method" {
			method = a.Value
			continue
		}
		button.Set(a.Key, a.Value)
	}
	return r.Nested(func(r *render.Renderer) {
		r.Form(attr.Class("button_to"), attr.Attr{Key: "method", Value: method}, attr.Action(action), func() {
			r.Button(button, content(args[0]))
		})
	})
}

func arity(name string, args []any, min int) error {
	if len(args) < min || len(args) > min+1 {
		return fmt.Errorf("%s takes %d or %d arguments, got %d", name, min, min+1, len(args))
	}
	return nil
}

func stringArg(name string, args []any, i int) (string, error) {
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("%s: argument %d must be a string, got %T", name, i+1, args[i])
	}
	return s, nil
}

// attrsArg returns the optional attribute object at args[i], sorted by
// name.
func attrsArg(name string, args []any, i int) ([]attr.Attr, error) {
	if i >= len(args) || args[i] == nil {
		return nil, nil
	}
	switch v := args[i].(type) {
	case attr.Set:
		return v, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]attr.Attr, 0, len(keys))
		for _, k := range keys {
			out = append(out, attr.Attr{Key: k, Value: v[k]})
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: argument %d must be an attribute object, got %T", name, i+1, args[i])
}

// content keeps pre-escaped values as markup and renders the rest as
// text.
func content(v any) any {
	switch v := v.(type) {
	case render.SafeHTML:
		return v
	case string:
		return v
	}
	return render.Escape(fmt.Sprint(v))
}

func altFromSrc(src string) string {
	base := src
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '/' {
			base = base[i+1:]
			break
		}
	}
	for i := len(base) - 1; i > 0; i-- {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}
