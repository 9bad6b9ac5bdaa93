package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/render"
)

// ElementsFile is the path of the generated wrappers, relative to the
// module root.
const ElementsFile = "pkg/render/elements_gen.go"

// rendererMethods are hand-written Renderer methods an element method
// must not shadow.
var rendererMethods = map[string]bool{
	"Render": true, "Emit": true, "Plain": true, "Component": true,
	"Call": true, "Lookup": true, "Get": true, "Err": true, "Depth": true,
	"Fail": true, "Host": true, "Context": true, "Nested": true,
}

// Elements returns the source of elements_gen.go for the given table.
// Method i calls the emitter with table entry i, so elems must be the
// table in order.
func Elements(elems []render.Element) ([]byte, error) {
	seen := make(map[string]string, len(elems))

	var b bytes.Buffer
	b.WriteString("// Code generated by markup gen elements. DO NOT EDIT.\n\n")
	b.WriteString("package render\n")

	for i, e := range elems {
		if !token.IsIdentifier(e.Method) || !token.IsExported(e.Method) {
			return nil, errors.New("E100").WithDetailf("element <%s> has invalid method name %q", e.Name, e.Method)
		}
		if rendererMethods[e.Method] {
			return nil, errors.New("E100").WithDetailf("element <%s> method %s clashes with Renderer.%s", e.Name, e.Method, e.Method)
		}
		if other, dup := seen[e.Method]; dup {
			return nil, errors.New("E100").WithDetailf("elements <%s> and <%s> share method %s", other, e.Name, e.Method)
		}
		seen[e.Method] = e.Name

		what := "<" + e.Name + ">"
		if e.Void {
			what = "the void element " + what
		}
		fmt.Fprintf(&b, "\n// %s emits %s.\n", e.Method, what)
		fmt.Fprintf(&b, "func (r *Renderer) %s(args ...any) { r.emit(&elements[%d], args) }\n", e.Method, i)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, errors.New("E100").WithDetail("generated elements do not parse").Wrap(err)
	}
	return src, nil
}
