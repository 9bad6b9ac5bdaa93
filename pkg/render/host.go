package render

import "strings"

// AmbientProvider is implemented by hosts that expose values to the
// build routine. Ambient is read once, on the renderer's first Render.
type AmbientProvider interface {
	Ambient() map[string]any
}

// Invoker is implemented by hosts that handle calls the renderer does
// not know. handled is false when the host does not know name either.
type Invoker interface {
	Invoke(r *Renderer, name string, args []any) (result any, handled bool, err error)
}

// Func is a host-provided helper.
type Func func(r *Renderer, args []any) (any, error)

// Helpers is an Invoker backed by a map of named helpers.
type Helpers map[string]Func

// Invoke implements Invoker.
func (h Helpers) Invoke(r *Renderer, name string, args []any) (any, bool, error) {
	fn, ok := h[name]
	if !ok {
		return nil, false, nil
	}
	v, err := fn(r, args)
	return v, true, err
}

// Env is a ready-made host: ambient values, helpers, and an optional
// parent host that is consulted for anything Env does not define.
type Env struct {
	Values  map[string]any
	Helpers Helpers
	Parent  any
}

// Ambient implements AmbientProvider. Values override the parent's.
func (e *Env) Ambient() map[string]any {
	var out map[string]any
	if p, ok := e.Parent.(AmbientProvider); ok {
		out = p.Ambient()
	}
	if len(e.Values) == 0 {
		return out
	}
	merged := make(map[string]any, len(out)+len(e.Values))
	for k, v := range out {
		merged[k] = v
	}
	for k, v := range e.Values {
		merged[k] = v
	}
	return merged
}

// Invoke implements Invoker.
func (e *Env) Invoke(r *Renderer, name string, args []any) (any, bool, error) {
	if v, ok, err := e.Helpers.Invoke(r, name, args); ok {
		return v, ok, err
	}
	if p, ok := e.Parent.(Invoker); ok {
		return p.Invoke(r, name, args)
	}
	return nil, false, nil
}

// copyAmbient returns the host's ambient values minus private names.
func copyAmbient(host any) map[string]any {
	p, ok := host.(AmbientProvider)
	if !ok {
		return nil
	}
	src := p.Ambient()
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if strings.HasPrefix(k, "_") {
			continue
		}
		dst[k] = v
	}
	return dst
}
