package attr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/escape"
)

// ErrMalformedAttribute is returned for values with no serialization.
var ErrMalformedAttribute = errors.New("E102")

// kind classifies a normalized attribute value.
type kind uint8

const (
	kindOmit kind = iota
	kindBare
	kindText
)

// pair is an attribute reduced to what its output depends on.
type pair struct {
	key  string
	kind kind
	text string
}

// Serialize renders the set as ` key="value"` fragments in order.
// An empty set, or one whose values are all omitted, renders as "".
func Serialize(s Set) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	var scratch [8]pair
	pairs, err := normalize(scratch[:0], s)
	if err != nil {
		return "", err
	}
	return fragment(pairs), nil
}

// normalize appends the output-relevant form of each attribute to dst.
func normalize(dst []pair, s Set) ([]pair, error) {
	for _, a := range s {
		if a.Key == "" {
			continue
		}
		if !validKey(a.Key) {
			return nil, errors.New("E102").
				WithDetailf("attribute name %q contains characters not allowed in markup", a.Key)
		}
		k, text, err := valueText(a.Value)
		if err != nil {
			return nil, errors.New("E102").
				WithDetailf("attribute %q has unsupported value type %T", a.Key, a.Value).
				WithSuggestion("Pass a string, number, bool, fmt.Stringer or nil")
		}
		if k == kindOmit {
			continue
		}
		dst = append(dst, pair{key: a.Key, kind: k, text: text})
	}
	return dst, nil
}

// valueText applies the value policy.
func valueText(v any) (kind, string, error) {
	switch v := v.(type) {
	case nil:
		return kindOmit, "", nil
	case string:
		return kindText, v, nil
	case bool:
		if v {
			return kindBare, "", nil
		}
		return kindOmit, "", nil
	case int:
		return kindText, strconv.Itoa(v), nil
	case int64:
		return kindText, strconv.FormatInt(v, 10), nil
	case int32:
		return kindText, strconv.FormatInt(int64(v), 10), nil
	case uint:
		return kindText, strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return kindText, strconv.FormatUint(v, 10), nil
	case uint32:
		return kindText, strconv.FormatUint(uint64(v), 10), nil
	case float64:
		return kindText, strconv.FormatFloat(v, 'g', -1, 64), nil
	case float32:
		return kindText, strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case fmt.Stringer:
		if isNil(v) {
			return kindOmit, "", nil
		}
		return kindText, v.String(), nil
	}

	// Named scalar types (type Role string, type Size int, ...).
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return kindText, rv.String(), nil
	case reflect.Bool:
		if rv.Bool() {
			return kindBare, "", nil
		}
		return kindOmit, "", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindText, strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return kindText, strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return kindText, strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	}
	return kindOmit, "", ErrMalformedAttribute
}

// isNil reports whether v is a typed nil, such as a (*url.URL)(nil)
// stored in an interface.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// fragment writes normalized pairs out as markup.
func fragment(pairs []pair) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(pairs) * 32)
	for _, p := range pairs {
		b.WriteByte(' ')
		b.WriteString(p.key)
		if p.kind == kindBare {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(escape.String(p.text))
		b.WriteByte('"')
	}
	return b.String()
}

// validKey rejects names that would break out of the attribute syntax.
func validKey(key string) bool {
	for i := 0; i < len(key); i++ {
		switch c := key[i]; {
		case c <= ' ', c == 0x7f:
			return false
		case c == '"', c == '\'', c == '>', c == '<', c == '/', c == '=', c == '&':
			return false
		}
	}
	return true
}
