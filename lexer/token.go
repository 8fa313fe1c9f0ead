package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokNumber
	TokIdentifier

	// Operators.
	TokAdd
	TokSubtract
	TokMultiply
	TokDivide
	TokExponent

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",

	TokAdd:      "+",
	TokSubtract: "-",
	TokMultiply: "*",
	TokDivide:   "/",
	TokExponent: "^",

	TokParenLeft:  "(",
	TokParenRight: ")",
}

// IsOneOf reports whether tt is any of t.
func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperator reports whether tt is an arithmetic operator.
func (tt TokenType) IsOperator() bool {
	return tt.IsOneOf(TokAdd, TokSubtract, TokMultiply, TokDivide, TokExponent)
}

// Token represents a lexical token of an arithmetic expression.
type Token struct {
	Type   TokenType
	Value  string  // Source text.
	Number float64 // Parsed value of a TokNumber.

	pos int
}

// NewToken creates a token with the given type and source text.
// The Number field is left to the caller.
func NewToken(tt TokenType, value string) Token {
	return Token{Type: tt, Value: value}
}

// Pos returns the byte offset of the token in the input.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d]: %s", t.pos, t.Value)
}
