// Package gen writes the generated sources of the module.
//
// The only generator today is Elements, which produces
// pkg/render/elements_gen.go: one Renderer method per entry of the
// element table. Run it through the CLI:
//
//	markup gen elements
package gen
