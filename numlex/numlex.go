// Package numlex implements the constant-number lexer: a small state
// machine that recognizes one numeric literal (or a lone unary minus)
// from the compiler's input cursor.
package numlex

import (
	"unicode"

	"ibc/compileerr"
)

// Source is the subset of the compiler's input cursor the lexer needs.
// Column reports the column of the character Peek would return next.
type Source interface {
	Peek() (rune, bool)
	Next() (rune, bool)
	Column() int
}

// Result is everything the lexer produced from one call.
type Result struct {
	// Text is the literal's exact source text ("" if no literal was
	// recognized).
	Text string
	// FloatingPoint reports whether Text should be parsed as a float
	// rather than an integer.
	FloatingPoint bool
	// NegateOperator reports that a lone '-' was consumed and should be
	// treated by the caller as a unary minus, not part of a literal.
	NegateOperator bool
	// HasUnparsedChar reports that UnparsedChar was tentatively consumed
	// (as what looked like the start of an exponent) but must be pushed
	// back onto the input, since what followed proved it was not one
	// (e.g. the 'E' of "END").
	HasUnparsedChar bool
	UnparsedChar    rune
}

type state int

const (
	start state = iota
	negative
	zero
	period
	mantissa
	exponent
	exponentSign
	exponentDigits
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Lex recognizes one numeric literal (or a lone unary minus) from src,
// per the state machine in the dialect's lexical rules. It returns a
// *compileerr.Error for the malformed-literal cases the grammar
// specifically rejects (leading zero followed by a digit, bare decimal
// point, malformed exponent).
func Lex(src Source) (Result, *compileerr.Error) {
	var text []rune
	st := start
	floatingPoint := false

	for {
		c, ok := src.Peek()
		switch st {
		case start:
			switch {
			case ok && c == '0':
				src.Next()
				text = append(text, c)
				st = zero
			case ok && c == '-':
				src.Next()
				text = append(text, c)
				st = negative
			case ok && c == '.':
				src.Next()
				text = append(text, c)
				floatingPoint = true
				st = period
			case ok && isDigit(c):
				src.Next()
				text = append(text, c)
				st = mantissa
			default:
				return Result{}, nil
			}

		case negative:
			switch {
			case ok && c == '.':
				src.Next()
				text = append(text, c)
				floatingPoint = true
				st = period
			case ok && isDigit(c):
				src.Next()
				text = append(text, c)
				st = mantissa
			default:
				return Result{NegateOperator: true}, nil
			}

		case zero:
			switch {
			case ok && c == '.':
				src.Next()
				text = append(text, c)
				floatingPoint = true
				st = mantissa
			case ok && isDigit(c):
				return Result{}, compileerr.New(
					"expected decimal point after leading zero", src.Column(), 1)
			default:
				return Result{Text: string(text), FloatingPoint: floatingPoint}, nil
			}

		case period:
			if ok && isDigit(c) {
				src.Next()
				text = append(text, c)
				st = mantissa
			} else {
				return Result{}, compileerr.New(
					"expected digit after decimal point", src.Column(), 1)
			}

		case mantissa:
			switch {
			case ok && c == '.' && !floatingPoint:
				src.Next()
				text = append(text, c)
				floatingPoint = true
			case ok && (c == 'E' || c == 'e'):
				src.Next()
				text = append(text, c)
				st = exponent
			case ok && isDigit(c):
				src.Next()
				text = append(text, c)
			default:
				return Result{Text: string(text), FloatingPoint: floatingPoint}, nil
			}

		case exponent:
			switch {
			case ok && (c == '+' || c == '-'):
				src.Next()
				text = append(text, c)
				floatingPoint = true
				st = exponentSign
			case ok && isDigit(c):
				src.Next()
				text = append(text, c)
				floatingPoint = true
				st = exponentDigits
			case ok && unicode.IsLetter(c):
				last := text[len(text)-1]
				text = text[:len(text)-1]
				return Result{
					Text: string(text), FloatingPoint: floatingPoint,
					HasUnparsedChar: true, UnparsedChar: last,
				}, nil
			default:
				return Result{}, compileerr.New(
					"expected sign or digit for exponent", src.Column(), 1)
			}

		case exponentSign:
			if ok && isDigit(c) {
				src.Next()
				text = append(text, c)
				st = exponentDigits
			} else {
				return Result{}, compileerr.New(
					"expected digit after exponent sign", src.Column(), 1)
			}

		case exponentDigits:
			if ok && isDigit(c) {
				src.Next()
				text = append(text, c)
			} else {
				return Result{Text: string(text), FloatingPoint: floatingPoint}, nil
			}
		}
	}
}
