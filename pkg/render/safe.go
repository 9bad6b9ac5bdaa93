package render

import (
	"html/template"
	"reflect"

	"github.com/vango-dev/markup/pkg/escape"
)

// SafeHTML is markup that must be written as is. Values passed to Plain
// or as element content are escaped unless they are SafeHTML (or
// html/template.HTML, which is treated the same way).
type SafeHTML string

// Safe marks s as already escaped markup. Only use it on trusted input.
func Safe(s string) SafeHTML {
	return SafeHTML(s)
}

// Escape returns s escaped and marked safe.
func Escape(s string) SafeHTML {
	return SafeHTML(escape.String(s))
}

// String returns the markup.
func (h SafeHTML) String() string {
	return string(h)
}

// safeText reports whether v carries the pre-escaped marker and returns
// its markup.
func safeText(v any) (string, bool) {
	switch v := v.(type) {
	case SafeHTML:
		return string(v), true
	case template.HTML:
		return string(v), true
	}
	return "", false
}

// isNil reports whether v is nil or a typed nil pointer, map, slice or
// func held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
