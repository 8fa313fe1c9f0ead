package lexer

import (
	"errors"
	"strconv"
	"strings"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokAdd,
	'-': TokSubtract,
	'*': TokMultiply,
	'/': TokDivide,
	'^': TokExponent,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	if l.atEOF || l.pos >= len(l.input) {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case r == ' ' || r == '\t' || r == '\r':
		l.acceptRun(" \t\r")
		l.ignore()
		return lexText
	case r == '\n':
		// One line at a time, whatever follows is not ours.
		l.stop()
		return l.emit(TokEOF)
	case r == '.' || (r >= '0' && r <= '9'):
		return lexNumber
	case strings.ContainsRune(letters, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf(ErrUnexpectedChar, "%q", r)
	}
}

func lexNumber(l *Lexer) stateFn {
	if l.accept(".") {
		// Leading decimal, no second dot allowed.
		l.acceptRun(digits)
	} else {
		l.acceptRun(digits)
		if l.accept(".") {
			l.acceptRun(digits)
		}
	}

	literal := l.input[l.start:l.pos]
	number, err := strconv.ParseFloat(literal, 64)
	// Out of range literals saturate to infinity like any other float overflow.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return l.errorf(ErrInvalidNumber, "%q (%s)", literal, err)
	}
	tok := l.thisToken(TokNumber)
	tok.Number = number
	return l.emitToken(tok)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(letters)
	return l.emit(TokIdentifier)
}
