/*
Package lexer splits program text into tokens.

	token := '(' | ')' | /[^[:space:]()]+/

Parentheses are always tokens of their own.  Every other run of characters
not containing whitespace forms a single token.  There is no syntax for
strings, quotes or comments.
*/
package lexer

import (
	"strings"

	parsec "github.com/prataprc/goparsec"
	"github.com/siutin/scheme-go/parser/token"
)

var tokenParser = newParsecParser()

// Tokenize returns the sequence of tokens in text.  Tokenize returns an
// empty sequence when text contains only whitespace.
func Tokenize(text string) []string {
	// Terminals skip leading spaces before matching.  Fold every kind of
	// whitespace into a single space so that is the only separator left.
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}
	s := parsec.NewScanner([]byte(text))
	var tokens []string
	for {
		node, rest := tokenParser(s)
		if node == nil {
			break
		}
		s = rest
		term, ok := node.(*parsec.Terminal)
		if !ok {
			continue
		}
		tokens = append(tokens, term.Value)
	}
	return tokens
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom(token.ParenL, token.PAREN_L.String())
	closeP := parsec.Atom(token.ParenR, token.PAREN_R.String())
	atom := parsec.Token(`[^ ()]+`, token.ATOM.String())
	return parsec.OrdChoice(first, openP, closeP, atom)
}

func first(nodes []parsec.ParsecNode) parsec.ParsecNode {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
