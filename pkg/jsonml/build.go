package jsonml

import (
	"github.com/vango-dev/markup/pkg/render"
)

// Build returns a build routine that renders nodes in order.
func Build(nodes []Node) func(*render.Renderer) {
	return func(r *render.Renderer) {
		for i := range nodes {
			if r.Err() != nil {
				return
			}
			buildNode(r, &nodes[i])
		}
	}
}

func buildNode(r *render.Renderer, n *Node) {
	switch n.Kind {
	case KindText:
		r.Plain(n.Text)
	case KindComponent:
		r.Component(render.Safe(n.Text))
	case KindCall:
		v, err := r.Call(n.Name, n.Args...)
		if err == nil && v != nil {
			r.Plain(v)
		}
	case KindElement:
		r.Call(n.Tag, elementArgs(n)...)
	}
}

func elementArgs(n *Node) []any {
	args := make([]any, 0, 2)
	if len(n.Attrs) > 0 {
		args = append(args, n.Attrs)
	}
	switch {
	case len(n.Children) == 1 && n.Children[0].Kind == KindText:
		args = append(args, n.Children[0].Text)
	case len(n.Children) > 0:
		args = append(args, func(r *render.Renderer) {
			for i := range n.Children {
				buildNode(r, &n.Children[i])
			}
		})
	}
	return args
}
