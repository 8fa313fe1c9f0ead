package evaluator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/lexer"
)

var (
	tokAdd = lexer.NewToken(lexer.TokAdd, "+")
	tokSub = lexer.NewToken(lexer.TokSubtract, "-")
	tokMul = lexer.NewToken(lexer.TokMultiply, "*")
	tokDiv = lexer.NewToken(lexer.TokDivide, "/")
	tokExp = lexer.NewToken(lexer.TokExponent, "^")
)

func lit(v float64) ast.Expr { return ast.LiteralExpr{Value: v} }

func bin(left ast.Expr, op lexer.Token, right ast.Expr) ast.Expr {
	return ast.BinaryExpr{Left: left, Operator: op, Right: right}
}

type unknownExpr struct{ ast.LiteralExpr }

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want float64
	}{
		{name: "literal", expr: lit(1.5), want: 1.5},
		{name: "grouping", expr: ast.GroupingExpr{Inner: lit(3)}, want: 3},
		{name: "negation", expr: ast.UnaryExpr{Operator: tokSub, Operand: lit(4)}, want: -4},
		{name: "double negation", expr: ast.UnaryExpr{Operator: tokSub, Operand: ast.UnaryExpr{Operator: tokSub, Operand: lit(5)}}, want: 5},
		{name: "add", expr: bin(lit(1), tokAdd, lit(2)), want: 3},
		{name: "subtract", expr: bin(lit(7), tokSub, lit(2)), want: 5},
		{name: "multiply", expr: bin(lit(6), tokMul, lit(7)), want: 42},
		{name: "divide", expr: bin(lit(1), tokDiv, lit(4)), want: 0.25},
		{name: "power", expr: bin(lit(2), tokExp, lit(10)), want: 1024},
		{name: "fractional power", expr: bin(lit(9), tokExp, lit(0.5)), want: 3},
		{name: "negative power", expr: bin(lit(2), tokExp, lit(-2)), want: 0.25},
		{name: "left nested", expr: bin(bin(lit(1), tokSub, lit(2)), tokSub, lit(3)), want: -4},
		{name: "right nested", expr: bin(lit(1), tokSub, bin(lit(2), tokSub, lit(3))), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluator.Evaluate(tt.expr)
			require.NoError(t, err, "evaluate %s", tt.expr)
			assert.InDelta(t, tt.want, got, 1e-12, "evaluate %s", tt.expr)
		})
	}
}

func TestEvaluateIEEE(t *testing.T) {
	got, err := evaluator.Evaluate(bin(lit(1), tokDiv, lit(0)))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1), "1/0 = %v", got)

	got, err = evaluator.Evaluate(bin(lit(-1), tokDiv, lit(0)))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1), "-1/0 = %v", got)

	got, err = evaluator.Evaluate(bin(lit(0), tokDiv, lit(0)))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "0/0 = %v", got)

	got, err = evaluator.Evaluate(bin(lit(-8), tokExp, lit(1.0/3)))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "-8^(1/3) = %v", got)
}

func TestEvaluateBadOperator(t *testing.T) {
	tests := []struct {
		name    string
		expr    ast.Expr
		message string
	}{
		{
			name:    "unary plus",
			expr:    ast.UnaryExpr{Operator: tokAdd, Operand: lit(1)},
			message: `failed to evaluate: unary operator "+"`,
		},
		{
			name:    "binary paren",
			expr:    bin(lit(1), lexer.NewToken(lexer.TokParenLeft, "("), lit(2)),
			message: `failed to evaluate: binary operator "("`,
		},
		{
			name:    "nested in operand",
			expr:    bin(lit(1), tokAdd, ast.GroupingExpr{Inner: bin(lit(1), lexer.NewToken(lexer.TokNumber, "3"), lit(2))}),
			message: `failed to evaluate: binary operator "3"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluator.Evaluate(tt.expr)
			require.ErrorIs(t, err, evaluator.ErrBadOperator)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestEvaluateShortCircuitsOnLeft(t *testing.T) {
	badLeft := ast.UnaryExpr{Operator: tokMul, Operand: lit(1)}
	badRight := ast.UnaryExpr{Operator: tokDiv, Operand: lit(1)}

	_, err := evaluator.Evaluate(bin(badLeft, tokAdd, badRight))
	require.ErrorIs(t, err, evaluator.ErrBadOperator)
	assert.Contains(t, err.Error(), `"*"`, "left operand error should win")
}

func TestEvaluateUnknownNode(t *testing.T) {
	_, err := evaluator.Evaluate(nil)
	require.ErrorIs(t, err, evaluator.ErrUnknownNode)

	_, err = evaluator.Evaluate(bin(lit(1), tokAdd, nil))
	require.ErrorIs(t, err, evaluator.ErrUnknownNode)

	_, err = evaluator.Evaluate(unknownExpr{})
	require.ErrorIs(t, err, evaluator.ErrUnknownNode)
	assert.Contains(t, err.Error(), "evaluator_test.unknownExpr")
}
