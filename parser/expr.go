package parser

import (
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// parseExpr parses a chain of infix operators of binding power bp,
// operands being anything binding tighter.
//
//	term   := factor ( ('+'|'-') factor )*
//	factor := base   ( ('*'|'/') base )*
//	base   := unary  ( '^' unary )*
func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	if bp >= bpUnary {
		return parsePrefixExpr(p)
	}

	left, err := parseExpr(p, bp+1)
	if err != nil {
		return nil, err
	}

	// Fold as long as we stay at this level, which makes every level left-associative.
	for p.bindingPower() == bp {
		left, err = parseBinaryExpr(p, left, bp)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bp+1)
	if err != nil {
		return nil, err
	}

	return ast.BinaryExpr{
		Left:     left,
		Operator: operator,
		Right:    right,
	}, nil
}

// unary := '-' unary | primary
func parsePrefixExpr(p *parser) (ast.Expr, error) {
	if p.curToken.Type != lexer.TokSubtract {
		return parsePrimaryExpr(p)
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	operator := p.curToken
	p.nextToken()
	operand, err := parsePrefixExpr(p)
	if err != nil {
		return nil, err
	}

	return ast.UnaryExpr{
		Operator: operator,
		Operand:  operand,
	}, nil
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	switch p.curToken.Type {
	case lexer.TokNumber:
		number := p.curToken.Number
		p.nextToken()
		return ast.LiteralExpr{Value: number}, nil
	case lexer.TokIdentifier:
		if p.curToken.Value != AnsIdentifier {
			return nil, fmt.Errorf("%w %s", ErrUnknownIdentifier, describe(p.curToken))
		}
		p.nextToken()
		return ast.LiteralExpr{Value: p.answer()}, nil
	case lexer.TokParenLeft:
		return parseGroupingExpr(p)
	case lexer.TokEOF:
		return nil, ErrExpectedExpression
	default:
		return nil, fmt.Errorf("%w, got %s", ErrExpectedExpression, describe(p.curToken))
	}
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.nextToken() // Consume the '('.
	inner, err := parseExpr(p, bpAdditive)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ErrExpectedParen, lexer.TokParenRight); err != nil {
		return nil, err
	}

	return ast.GroupingExpr{Inner: inner}, nil
}
