// Package evaluator reduces an expression tree to a number.
package evaluator

import (
	"errors"
	"fmt"
	"math"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// Evaluator errors. The parser never builds trees that trigger them.
var (
	ErrBadOperator = errors.New("failed to evaluate")
	ErrUnknownNode = errors.New("unknown expression node")
)

func evaluateUnaryExpr(expr ast.UnaryExpr) (float64, error) {
	if expr.Operator.Type != lexer.TokSubtract {
		return 0, fmt.Errorf("%w: unary operator %q", ErrBadOperator, expr.Operator.Value)
	}
	operand, err := Evaluate(expr.Operand)
	if err != nil {
		return 0, err
	}
	return -operand, nil
}

func evaluateBinaryExpr(expr ast.BinaryExpr) (float64, error) {
	if !expr.Operator.Type.IsOperator() {
		return 0, fmt.Errorf("%w: binary operator %q", ErrBadOperator, expr.Operator.Value)
	}

	// Left first, the first failure wins.
	left, err := Evaluate(expr.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(expr.Right)
	if err != nil {
		return 0, err
	}

	// Division by zero and invalid powers follow IEEE 754: inf or NaN, not an error.
	switch expr.Operator.Type {
	case lexer.TokAdd:
		return left + right, nil
	case lexer.TokSubtract:
		return left - right, nil
	case lexer.TokMultiply:
		return left * right, nil
	case lexer.TokDivide:
		return left / right, nil
	default: // lexer.TokExponent.
		return math.Pow(left, right), nil
	}
}

// Evaluate walks the tree and returns its value.
// It has no side effects: the same tree always yields the same result.
func Evaluate(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case ast.LiteralExpr:
		return e.Value, nil
	case ast.GroupingExpr:
		return Evaluate(e.Inner)
	case ast.UnaryExpr:
		return evaluateUnaryExpr(e)
	case ast.BinaryExpr:
		return evaluateBinaryExpr(e)
	case nil:
		return 0, fmt.Errorf("%w: missing operand", ErrUnknownNode)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownNode, e)
	}
}
