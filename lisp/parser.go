package lisp

import (
	"io"

	"github.com/siutin/scheme-go/ast"
)

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of top-level forms that
	// it contains.  The forms should be evaluated in order.
	Read(name string, r io.Reader) ([]ast.Node, error)
}
