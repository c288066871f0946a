// Package ast defines the syntax tree produced by the reader.  A Node is
// immutable once constructed.
package ast

import (
	"bytes"
	"strconv"
)

// Type identifies the variant held by a Node.
type Type uint

// Possible Type values
const (
	InvalidNode Type = iota
	IntegerNode
	FloatNode
	SymbolNode
	ChildrenNode
)

var typeStrings = []string{
	InvalidNode:  "INVALID",
	IntegerNode:  "integer",
	FloatNode:    "float",
	SymbolNode:   "symbol",
	ChildrenNode: "children",
}

func (t Type) String() string {
	if int(t) >= len(typeStrings) {
		return typeStrings[InvalidNode]
	}
	return typeStrings[t]
}

// Node is an atom or a parenthesized sequence of nodes.
type Node struct {
	typ      Type
	num      int64
	float    float64
	sym      string
	children []Node
}

// Integer returns an integer literal node.
func Integer(x int64) Node {
	return Node{typ: IntegerNode, num: x}
}

// Float returns a floating point literal node.
func Float(x float64) Node {
	return Node{typ: FloatNode, float: x}
}

// Symbol returns a symbol node named s.
func Symbol(s string) Node {
	return Node{typ: SymbolNode, sym: s}
}

// Children returns a list node containing a copy of nodes.
func Children(nodes ...Node) Node {
	n := Node{typ: ChildrenNode}
	if len(nodes) > 0 {
		n.children = make([]Node, len(nodes))
		copy(n.children, nodes)
	}
	return n
}

// Type returns the variant of n.
func (n Node) Type() Type {
	return n.typ
}

// IntValue returns the value of an IntegerNode.
func (n Node) IntValue() int64 {
	return n.num
}

// FloatValue returns the value of a FloatNode.
func (n Node) FloatValue() float64 {
	return n.float
}

// Name returns the text of a SymbolNode.
func (n Node) Name() string {
	return n.sym
}

// Len returns the number of children in a ChildrenNode.
func (n Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child of a ChildrenNode.
func (n Node) Child(i int) Node {
	return n.children[i]
}

// Nodes returns a copy of the children of n.
func (n Node) Nodes() []Node {
	if len(n.children) == 0 {
		return nil
	}
	nodes := make([]Node, len(n.children))
	copy(nodes, n.children)
	return nodes
}

// IsSymbol returns true if n is the symbol named name.
func (n Node) IsSymbol(name string) bool {
	return n.typ == SymbolNode && n.sym == name
}

// String returns source text that reads back as n.
func (n Node) String() string {
	switch n.typ {
	case IntegerNode:
		return strconv.FormatInt(n.num, 10)
	case FloatNode:
		s := strconv.FormatFloat(n.float, 'g', -1, 64)
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			// keep the literal a float when read again
			s += ".0"
		}
		return s
	case SymbolNode:
		return n.sym
	case ChildrenNode:
		var buf bytes.Buffer
		buf.WriteString("(")
		for i, c := range n.children {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(c.String())
		}
		buf.WriteString(")")
		return buf.String()
	default:
		return "#<invalid>"
	}
}
