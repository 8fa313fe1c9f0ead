// Package parser builds an expression tree out of lexer tokens.
package parser

import (
	"errors"
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// AnsIdentifier is the only identifier the parser knows about.
// It resolves to the previous answer, or 0 when there is none.
const AnsIdentifier = "ans"

// MaxNesting bounds how deep parentheses and unary minus chains may nest.
const MaxNesting = 10000

// Parser errors.
var (
	ErrUnknownIdentifier  = errors.New("unknown identifier")
	ErrExpectedParen      = errors.New(`expected ")" after expression`)
	ErrExpectedExpression = errors.New("expected expression")
	ErrTrailingInput      = errors.New("unexpected trailing input")
	ErrTooDeep            = errors.New("expression nested too deeply")
)

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the next unread token.

	curToken lexer.Token
	depth    int // Current nesting of groups and unary operators.

	ans *float64 // Previous answer, nil when unset.
}

func newParser(tokens []lexer.Token, ans *float64) *parser {
	p := &parser{
		tokens: tokens,
		ans:    ans,
	}
	p.nextToken()
	return p
}

// Parse parses a single expression out of tokens.
// Tokens left over after a complete expression are ignored, use ParseStrict to reject them.
func Parse(tokens []lexer.Token, ans *float64) (ast.Expr, error) {
	return parseExpr(newParser(tokens, ans), bpAdditive)
}

// ParseStrict is like Parse but fails unless every token is consumed.
func ParseStrict(tokens []lexer.Token, ans *float64) (ast.Expr, error) {
	p := newParser(tokens, ans)
	expr, err := parseExpr(p, bpAdditive)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokEOF {
		return nil, fmt.Errorf("%w: %s", ErrTrailingInput, describe(p.curToken))
	}
	return expr, nil
}

func (p *parser) nextToken() lexer.Token {
	if p.pos >= len(p.tokens) {
		p.curToken = lexer.Token{Type: lexer.TokEOF, Value: "EOF"}
		return p.curToken
	}
	p.curToken = p.tokens[p.pos]
	p.pos++
	return p.curToken
}

// expect checks if the current token is of the expected type and consumes it.
func (p *parser) expect(fail error, kind ...lexer.TokenType) (lexer.Token, error) {
	if !p.curToken.Type.IsOneOf(kind...) {
		return p.curToken, fmt.Errorf("%w, got %s", fail, describe(p.curToken))
	}
	tok := p.curToken
	p.nextToken()
	return tok, nil
}

// enter records one more level of nesting, failing past MaxNesting.
// Callers must call leave once done.
func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxNesting {
		return fmt.Errorf("%w at %s", ErrTooDeep, describe(p.curToken))
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) answer() float64 {
	if p.ans == nil {
		return 0
	}
	return *p.ans
}

func describe(tok lexer.Token) string {
	if tok.Type == lexer.TokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q at position %d", tok.Value, tok.Pos())
}
