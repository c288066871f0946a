package token

// Type classifies a token produced by the lexer.
type Type uint

// Type constants used for the lexer/parser.
const (
	INVALID Type = iota
	ATOM

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ATOM:    "atom",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Text of the delimiter tokens.
const (
	ParenL = "("
	ParenR = ")"
)

// TypeOf returns the Type of the token text.
func TypeOf(text string) Type {
	switch text {
	case "":
		return INVALID
	case ParenL:
		return PAREN_L
	case ParenR:
		return PAREN_R
	default:
		return ATOM
	}
}
