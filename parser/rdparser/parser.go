/*
Package rdparser implements a recursive descent reader over token sequences
produced by the lexer.

	form := atom | list
	list := '(' form* ')'
	atom := integer | float | symbol
*/
package rdparser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/siutin/scheme-go/ast"
	"github.com/siutin/scheme-go/lisp"
	"github.com/siutin/scheme-go/parser/token"
)

// Errors returned when a token sequence does not contain a well formed
// expression.  Each has the lisp.SyntaxError condition.
var (
	ErrUnexpectedEOF   = lisp.Errorf(lisp.SyntaxError, "unexpected EOF while reading")
	ErrUnexpectedParen = lisp.Errorf(lisp.SyntaxError, "unexpected )")
	ErrUnterminated    = lisp.Errorf(lisp.SyntaxError, "unexpected EOF while reading list")
)

// Parser reads consecutive top-level forms from a token sequence.
type Parser struct {
	tokens []string
}

// New initializes and returns a new Parser that reads forms from tokens.
func New(tokens []string) *Parser {
	return &Parser{tokens: tokens}
}

// Remaining returns the tokens which have not been consumed.
func (p *Parser) Remaining() []string {
	return p.tokens
}

// More returns true if there are unconsumed tokens.
func (p *Parser) More() bool {
	return len(p.tokens) > 0
}

// ParseExpression reads the next form.  When an error is returned no tokens
// are consumed.
func (p *Parser) ParseExpression() (ast.Node, error) {
	node, rest, err := ReadFromTokens(p.tokens)
	if err != nil {
		return ast.Node{}, err
	}
	p.tokens = rest
	return node, nil
}

// ParseProgram reads every remaining form.
func (p *Parser) ParseProgram() ([]ast.Node, error) {
	var exprs []ast.Node
	for p.More() {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ReadFromTokens parses the first form in tokens and returns it along with
// the tokens following it.  The tokens slice is not modified.
func ReadFromTokens(tokens []string) (ast.Node, []string, error) {
	if len(tokens) == 0 {
		return ast.Node{}, nil, ErrUnexpectedEOF
	}
	tok, rest := tokens[0], tokens[1:]
	switch token.TypeOf(tok) {
	case token.PAREN_L:
		return readList(rest)
	case token.PAREN_R:
		return ast.Node{}, nil, ErrUnexpectedParen
	default:
		return Atom(tok), rest, nil
	}
}

// readList parses forms until the closing parenthesis of a list whose
// opening parenthesis has already been consumed.
func readList(tokens []string) (ast.Node, []string, error) {
	var cells []ast.Node
	for {
		if len(tokens) == 0 {
			return ast.Node{}, nil, ErrUnterminated
		}
		if token.TypeOf(tokens[0]) == token.PAREN_R {
			return ast.Children(cells...), tokens[1:], nil
		}
		node, rest, err := ReadFromTokens(tokens)
		if err != nil {
			return ast.Node{}, nil, err
		}
		cells = append(cells, node)
		tokens = rest
	}
}

// Atom resolves tok as an integer literal, then as a float literal, and
// otherwise as a symbol.  Decimal literals too large for a float64 are
// infinite.  Hexadecimal notation is not a number.
func Atom(tok string) ast.Node {
	if x, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return ast.Integer(x)
	}
	if !isHex(tok) {
		x, err := strconv.ParseFloat(tok, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return ast.Float(x)
		}
	}
	return ast.Symbol(tok)
}

func isHex(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")
	return strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X")
}
