// Package jsonml reads pages written as JSON and renders them.
//
// A node is one of:
//
//	"text"                                  escaped text
//	12                                      number, written as text
//	["tag", {"attr": "v"}, child, ...]      element, attributes optional
//	{"plain": "text"}                       escaped text, same as a string
//	{"component": "<b>markup</b>"}          markup written as is
//	{"call": "helper", "args": [...]}       host helper; its result is written
//
// A document is a single node or an array of nodes. Attribute order is
// kept as written. Tags are dispatched by name through
// render.Renderer.Call, so hosts can provide elements of their own.
//
//	nodes, err := jsonml.Parse(data)
//	html, err := render.New(host, jsonml.Build(nodes)).Render(ctx)
package jsonml
