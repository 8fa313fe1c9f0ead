// Package ast holds the expression tree shared by the parser and the evaluator.
package ast

import (
	"fmt"
	"math"
	"strconv"

	"go.creack.net/gocalc/lexer"
)

// Expr is a node of the expression tree.
//
// Dump renders the fully parenthesized infix form, which the parser reads back.
// String renders the prefix debug form, e.g. "(+ 1 (group 2))".
type Expr interface {
	Dump() string
	String() string
	expr()
}

// LiteralExpr is a numeric constant, either from the source or from "ans".
type LiteralExpr struct {
	Value float64
}

func (LiteralExpr) expr() {}

func (l LiteralExpr) Dump() string {
	// Wrap negatives so "ans ^ 2" keeps its meaning once re-read.
	if math.Signbit(l.Value) && !math.IsNaN(l.Value) {
		return "(-" + FormatNumber(-l.Value) + ")"
	}
	return FormatNumber(l.Value)
}

func (l LiteralExpr) String() string { return FormatNumber(l.Value) }

// GroupingExpr is a parenthesized subexpression.
type GroupingExpr struct {
	Inner Expr
}

func (GroupingExpr) expr() {}

func (g GroupingExpr) Dump() string   { return fmt.Sprintf("(%s)", dump(g.Inner)) }
func (g GroupingExpr) String() string { return fmt.Sprintf("(group %s)", str(g.Inner)) }

// UnaryExpr is a prefix operation. The grammar only produces negation.
type UnaryExpr struct {
	Operator lexer.Token
	Operand  Expr
}

func (UnaryExpr) expr() {}

func (u UnaryExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", u.Operator.Value, dump(u.Operand))
}

func (u UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", u.Operator.Value, str(u.Operand))
}

// BinaryExpr is an infix operation.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", dump(b.Left), b.Operator.Value, dump(b.Right))
}

func (b BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Operator.Value, str(b.Left), str(b.Right))
}

// nil children only show up in hand-built trees.
func dump(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.Dump()
}

func str(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

// FormatNumber renders v the way results are shown to the user:
// shortest decimal text, no exponent, "inf", "-inf" or "NaN".
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
