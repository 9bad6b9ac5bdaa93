package jsonml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attr"
)

// member and object keep JSON objects in source order.
type member struct {
	key   string
	value any
}

type object []member

// ParseFile reads and parses a page file. Syntax errors carry the file
// location.
func ParseFile(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E112").WithDetail(path).Wrap(err)
		}
		return nil, err
	}
	nodes, err := Parse(data)
	if err != nil {
		if me, ok := err.(*errors.MarkupError); ok && me.Location == nil {
			if off, ok := errorOffset(me.Wrapped); ok {
				line, col := position(data, off)
				me.WithLocation(path, line, col)
			} else {
				me.Location = &errors.Location{File: path}
			}
		}
		return nil, err
	}
	return nodes, nil
}

// Parse parses a document: a node, or an array of nodes.
func Parse(data []byte) ([]Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, invalidJSON(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = &offsetError{offset: dec.InputOffset(), msg: "unexpected data after the page value"}
		}
		return nil, invalidJSON(err).WithSuggestion("A page holds exactly one JSON value")
	}

	if arr, ok := v.([]any); ok && !isElement(arr) {
		nodes := make([]Node, 0, len(arr))
		for i, item := range arr {
			n, err := toNode(item, fmt.Sprintf("$[%d]", i))
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		}
		return nodes, nil
	}
	n, err := toNode(v, "$")
	if err != nil {
		return nil, err
	}
	return []Node{n}, nil
}

func invalidJSON(err error) *errors.MarkupError {
	e := errors.New("E110").Wrap(err)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		e.Detail = "unexpected end of input"
	}
	return e
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		obj := object{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, member{key: kt.(string), value: v})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	}
	return nil, &offsetError{offset: dec.InputOffset(), msg: "unexpected delimiter " + d.String()}
}

// offsetError is a syntax error found outside the json package.
type offsetError struct {
	offset int64
	msg    string
}

func (e *offsetError) Error() string { return e.msg }

// isElement reports whether arr is ["tag", ...] rather than a list.
func isElement(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	_, ok := arr[0].(string)
	return ok
}

func toNode(v any, path string) (Node, error) {
	switch v := v.(type) {
	case string:
		return Text(v), nil
	case json.Number:
		return Text(v.String()), nil
	case []any:
		return toElement(v, path)
	case object:
		return toDirective(v, path)
	case nil:
		return Node{}, invalidNode(path, "null is not a node")
	case bool:
		return Node{}, invalidNode(path, "a boolean is not a node")
	}
	return Node{}, invalidNode(path, fmt.Sprintf("unexpected %T", v))
}

func toElement(arr []any, path string) (Node, error) {
	if !isElement(arr) {
		return Node{}, invalidNode(path, "an element starts with its tag name")
	}
	n := Node{Kind: KindElement, Tag: arr[0].(string)}
	rest := arr[1:]
	if len(rest) > 0 {
		if obj, ok := rest[0].(object); ok && !isDirective(obj) {
			n.Attrs = make(attr.Set, 0, len(obj))
			for _, m := range obj {
				n.Attrs.Set(m.key, attrValue(m.value))
			}
			rest = rest[1:]
		}
	}
	offset := len(arr) - len(rest)
	for i, c := range rest {
		child, err := toNode(c, fmt.Sprintf("%s[%d]", path, offset+i))
		if err != nil {
			return Node{}, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// isDirective reports whether obj is a plain/component/call node rather
// than an attribute object.
func isDirective(obj object) bool {
	for _, m := range obj {
		switch m.key {
		case "plain", "component", "call":
			return true
		}
	}
	return false
}

func toDirective(obj object, path string) (Node, error) {
	if !isDirective(obj) {
		return Node{}, invalidNode(path, `an object node needs "plain", "component" or "call"`)
	}
	get := func(key string) (any, bool) {
		for _, m := range obj {
			if m.key == key {
				return m.value, true
			}
		}
		return nil, false
	}

	if v, ok := get("call"); ok {
		name, ok := v.(string)
		if !ok || name == "" {
			return Node{}, invalidNode(path, `"call" must be a helper name`)
		}
		n := Node{Kind: KindCall, Name: name}
		if args, ok := get("args"); ok {
			list, ok := args.([]any)
			if !ok {
				return Node{}, invalidNode(path, `"args" must be an array`)
			}
			for _, a := range list {
				n.Args = append(n.Args, plainValue(a))
			}
		}
		return n, nil
	}
	if v, ok := get("component"); ok {
		s, ok := v.(string)
		if !ok {
			return Node{}, invalidNode(path, `"component" must be a string`)
		}
		return Component(s), nil
	}
	v, _ := get("plain")
	switch v := v.(type) {
	case string:
		return Text(v), nil
	case json.Number:
		return Text(v.String()), nil
	}
	return Node{}, invalidNode(path, `"plain" must be a string or number`)
}

// attrValue keeps scalars and hands anything else to the attribute
// serializer, which rejects it when the element is rendered.
func attrValue(v any) any {
	if obj, ok := v.(object); ok {
		return plainValue(obj)
	}
	return v
}

// plainValue turns ordered objects into maps for helpers.
func plainValue(v any) any {
	switch v := v.(type) {
	case object:
		m := make(map[string]any, len(v))
		for _, mem := range v {
			m[mem.key] = plainValue(mem.value)
		}
		return m
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plainValue(item)
		}
		return out
	}
	return v
}

func invalidNode(path, detail string) *errors.MarkupError {
	return errors.New("E111").WithDetailf("%s: %s", path, detail)
}

func errorOffset(err error) (int64, bool) {
	switch e := err.(type) {
	case *json.SyntaxError:
		return e.Offset, true
	case *offsetError:
		return e.offset, true
	}
	return 0, false
}

// position converts a byte offset to a 1-based line and column.
func position(data []byte, off int64) (line, col int) {
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	line, col = 1, 1
	for _, c := range data[:off] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
