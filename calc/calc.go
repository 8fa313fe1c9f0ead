// Package calc ties the lexer, parser and evaluator together and keeps
// the previous answer between lines.
package calc

import (
	"fmt"
	"log"

	"github.com/kr/pretty"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

// EvaluateLine tokenizes, parses and evaluates a single line.
// ans is the previous answer, nil if there is none.
// The first failing stage stops the evaluation and its error is returned.
func EvaluateLine(line string, ans *float64) (float64, error) {
	return evaluateLine(line, ans, false, nil)
}

func evaluateLine(line string, ans *float64, strict bool, debug *log.Logger) (float64, error) {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		return 0, fmt.Errorf("tokenize: %w", err)
	}
	if debug != nil {
		debug.Printf("tokens: %s", pretty.Sprint(tokens))
	}

	parse := parser.Parse
	if strict {
		parse = parser.ParseStrict
	}
	expr, err := parse(tokens, ans)
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}
	if debug != nil {
		debug.Printf("tree: %s", expr)
		debug.Printf("dump: %s", expr.Dump())
	}

	result, err := evaluator.Evaluate(expr)
	if err != nil {
		return 0, fmt.Errorf("evaluate: %w", err)
	}
	return result, nil
}

// Session is an interactive session: it remembers the last successful answer
// so the next lines can refer to it as "ans".
// A Session is not safe for concurrent use.
type Session struct {
	Strict bool        // Reject tokens left after a complete expression.
	Debug  *log.Logger // When set, tokens and trees are logged.

	ans *float64
}

// NewSession creates a session with no previous answer.
func NewSession() *Session {
	return &Session{}
}

// Ans returns the previous answer and whether there is one.
func (s *Session) Ans() (float64, bool) {
	if s.ans == nil {
		return 0, false
	}
	return *s.ans, true
}

// Eval evaluates line against the previous answer.
// On success the result becomes the new answer, on failure the answer is left as is.
func (s *Session) Eval(line string) (float64, error) {
	result, err := evaluateLine(line, s.ans, s.Strict, s.Debug)
	if err != nil {
		return 0, err
	}
	s.ans = &result
	return result, nil
}

// FormatResult renders a result the way the line loop prints it.
func FormatResult(v float64) string {
	return ast.FormatNumber(v)
}
