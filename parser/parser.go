/*
Package parser reads program text into syntax trees.

	form := atom | '(' form* ')'
	atom := integer | float | symbol

Text is split into tokens by package lexer and the token sequence is read by
package rdparser.
*/
package parser

import (
	"io"
	"io/ioutil"

	"github.com/siutin/scheme-go/ast"
	"github.com/siutin/scheme-go/lisp"
	"github.com/siutin/scheme-go/parser/lexer"
	"github.com/siutin/scheme-go/parser/rdparser"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]ast.Node, error) {
	text, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(text))
}

// Parse returns every top-level form in text.
func Parse(text string) ([]ast.Node, error) {
	return rdparser.New(lexer.Tokenize(text)).ParseProgram()
}

// ParseOne returns the first form in text and the tokens following it.
func ParseOne(text string) (ast.Node, []string, error) {
	p := rdparser.New(lexer.Tokenize(text))
	node, err := p.ParseExpression()
	if err != nil {
		return ast.Node{}, nil, err
	}
	return node, p.Remaining(), nil
}
