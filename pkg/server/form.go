package server

import (
	"fmt"
	"strings"

	"github.com/vango-dev/markup/pkg/attr"
	"github.com/vango-dev/markup/pkg/render"
)

// formWith renders a form and its fields: form_with(options, [fields]).
//
// options keys: "url" (action), "method" (default "post"), "scope"
// (field name prefix), "model" (object of field values) and "local"
// (true drops data-remote). Other keys become form attributes.
//
// Each field is an array whose first item names its kind:
//
//	["label", name, [text]]
//	["text_field" | "hidden_field" | "password_field" | "file_field", name, [attrs]]
//	["submit", [value], [attrs]]
//
// The ambient value "csrf_token", when set, is written as a hidden
// authenticity_token field.
func formWith(r *render.Renderer, args []any) (any, error) {
	if err := arity("form_with", args, 1); err != nil {
		return nil, err
	}
	opts, ok := args[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("form_with: argument 1 must be an options object, got %T", args[0])
	}
	var fields []any
	if len(args) == 2 && args[1] != nil {
		if fields, ok = args[1].([]any); !ok {
			return nil, fmt.Errorf("form_with: argument 2 must be an array of fields, got %T", args[1])
		}
	}

	f := form{scope: stringOpt(opts, "scope")}
	f.values, _ = opts["model"].(map[string]any)

	method := "post"
	if m := stringOpt(opts, "method"); m != "" {
		method = m
	}
	attrs := attr.Set{
		{Key: "action", Value: optionalString(stringOpt(opts, "url"))},
		attr.Method(method),
	}
	if local, _ := opts["local"].(bool); !local {
		attrs.Set("data-remote", "true")
	}
	extra, err := attrsArg("form_with", []any{without(opts, "url", "method", "scope", "model", "local")}, 0)
	if err != nil {
		return nil, err
	}
	attrs.Add(extra...)

	return r.Nested(func(r *render.Renderer) {
		r.Form(attrs, func() {
			if token, ok := r.Get("csrf_token").(string); ok && token != "" {
				r.Input(attr.Type("hidden"), attr.Name("authenticity_token"), attr.Value(token))
			}
			r.Input(attr.Type("hidden"), attr.Name("utf8"), attr.Value("✓"))
			for i, field := range fields {
				if err := f.field(r, field); err != nil {
					r.Fail(fmt.Errorf("form_with: field %d: %w", i+1, err))
					return
				}
			}
		})
	})
}

// form carries the state fields need while a form renders.
type form struct {
	scope  string
	values map[string]any
}

func (f form) field(r *render.Renderer, v any) error {
	spec, ok := v.([]any)
	if !ok || len(spec) == 0 {
		return fmt.Errorf("must be a non-empty array, got %T", v)
	}
	kind, ok := spec[0].(string)
	if !ok {
		return fmt.Errorf("kind must be a string, got %T", spec[0])
	}
	args := spec[1:]

	switch kind {
	case "label":
		if err := arity(kind, args, 1); err != nil {
			return err
		}
		name, err := stringArg(kind, args, 0)
		if err != nil {
			return err
		}
		text := any(humanize(name))
		if len(args) == 2 {
			text = content(args[1])
		}
		r.Label(attr.For(f.id(name)), text)
	case "text_field", "hidden_field", "password_field", "file_field":
		if err := arity(kind, args, 1); err != nil {
			return err
		}
		name, err := stringArg(kind, args, 0)
		if err != nil {
			return err
		}
		extra, err := attrsArg(kind, args, 1)
		if err != nil {
			return err
		}
		attrs := attr.Set{
			attr.Type(strings.TrimSuffix(kind, "_field")),
			attr.Name(f.name(name)),
			attr.ID(f.id(name)),
		}
		if kind == "text_field" || kind == "hidden_field" {
			attrs.Set("value", f.values[name])
		}
		r.Input(merge(attrs, extra))
	case "submit":
		if len(args) > 2 {
			return fmt.Errorf("submit takes at most 2 arguments, got %d", len(args))
		}
		value := any("Save")
		if len(args) > 0 && args[0] != nil {
			value = args[0]
		}
		extra, err := attrsArg(kind, args, 1)
		if err != nil {
			return err
		}
		r.Input(merge(attr.Set{attr.Type("submit"), attr.Value(value)}, extra))
	default:
		return fmt.Errorf("unknown field kind %q", kind)
	}
	return nil
}

func (f form) name(field string) string {
	if f.scope == "" {
		return field
	}
	return f.scope + "[" + field + "]"
}

func (f form) id(field string) string {
	if f.scope == "" {
		return field
	}
	return f.scope + "_" + field
}

// merge appends extra attributes whose keys are not already set.
func merge(attrs attr.Set, extra []attr.Attr) attr.Set {
	for _, a := range extra {
		if _, ok := attrs.Get(a.Key); !ok {
			attrs.Set(a.Key, a.Value)
		}
	}
	return attrs
}

// humanize turns a field name into label text: "first_name" becomes
// "First name".
func humanize(name string) string {
	s := strings.TrimSuffix(name, "_id")
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func stringOpt(opts map[string]any, key string) string {
	s, _ := opts[key].(string)
	return s
}

func optionalString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func without(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
