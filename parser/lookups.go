package parser

import "go.creack.net/gocalc/lexer"

type bindingPower int

// Weakest to strongest.
const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
	bpExponent
	bpUnary
)

type lookupTable[T any] map[lexer.TokenType]T

var bindingPowerLookupTable = createTokenLookups()

func (t lookupTable[T]) led(kind lexer.TokenType, v T) {
	if _, ok := t[kind]; ok {
		panic("duplicate led handler")
	}
	t[kind] = v
}

func createTokenLookups() lookupTable[bindingPower] {
	t := lookupTable[bindingPower]{}

	// Additive & multiplicative.
	t.led(lexer.TokAdd, bpAdditive)
	t.led(lexer.TokSubtract, bpAdditive)
	t.led(lexer.TokMultiply, bpMultiplicative)
	t.led(lexer.TokDivide, bpMultiplicative)

	// Exponent, left-associative like the others.
	t.led(lexer.TokExponent, bpExponent)

	return t
}

// bindingPower returns the infix binding power of the current token,
// bpDefault when it is not an infix operator.
func (p *parser) bindingPower() bindingPower {
	return bindingPowerLookupTable[p.curToken.Type]
}
