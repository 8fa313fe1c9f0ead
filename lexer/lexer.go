// Package lexer splits an arithmetic expression into tokens.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const digits = "0123456789"
const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Lexer errors.
var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrInvalidNumber  = errors.New("invalid number")
)

type Lexer struct {
	input string

	curToken Token
	err      error

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize returns all the tokens of the first line of source.
// The result does not hold a TokEOF marker.
func Tokenize(source string) ([]Token, error) {
	l := New(source)
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokEOF:
			return tokens, nil
		case TokError:
			return nil, l.Err()
		}
		tokens = append(tokens, tok)
	}
}

// NextToken returns the next token of the input.
// Once the input is exhausted, or a newline is reached, it returns TokEOF.
// On failure, it returns TokError and Err reports the cause.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Value: "EOF", pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error that produced the last TokError, if any.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		l.atEOF = false
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// stop drops the rest of the input so every following call yields TokEOF.
func (l *Lexer) stop() {
	l.input = l.input[:l.start]
	l.pos = l.start
	l.atEOF = true
}

func (l *Lexer) errorf(kind error, format string, args ...any) stateFn {
	l.err = fmt.Errorf("%w %s at position %d", kind, fmt.Sprintf(format, args...), l.start)
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Error(),
		pos:   l.start,
	}
	l.stop()
	return nil
}
