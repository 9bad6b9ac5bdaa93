package jsonml

import "github.com/vango-dev/markup/pkg/attr"

// Kind identifies the form of a node.
type Kind uint8

const (
	KindText Kind = iota
	KindElement
	KindComponent
	KindCall
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindElement:
		return "element"
	case KindComponent:
		return "component"
	case KindCall:
		return "call"
	}
	return "unknown"
}

// Node is one parsed page node.
type Node struct {
	Kind Kind

	// Tag and Attrs are set for elements.
	Tag   string
	Attrs attr.Set

	// Text is the content of text and component nodes.
	Text string

	// Children of an element.
	Children []Node

	// Name and Args describe a call.
	Name string
	Args []any
}

// Text returns a text node.
func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Element returns an element node.
func Element(tag string, attrs attr.Set, children ...Node) Node {
	return Node{Kind: KindElement, Tag: tag, Attrs: attrs, Children: children}
}

// Component returns a node whose text is written without escaping.
func Component(markup string) Node {
	return Node{Kind: KindComponent, Text: markup}
}

// Call returns a helper call node.
func Call(name string, args ...any) Node {
	return Node{Kind: KindCall, Name: name, Args: args}
}
