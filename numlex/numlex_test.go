package numlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeSource is a minimal Source over a plain string, for testing the
// lexer in isolation from the compiler's real cursor.
type runeSource struct {
	text []rune
	pos  int
}

func newRuneSource(s string) *runeSource {
	return &runeSource{text: []rune(s)}
}

func (s *runeSource) Peek() (rune, bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}
	return s.text[s.pos], true
}

func (s *runeSource) Next() (rune, bool) {
	r, ok := s.Peek()
	if ok {
		s.pos++
	}
	return r, ok
}

func (s *runeSource) Column() int {
	return s.pos
}

func TestLexIntegerLiteral(t *testing.T) {
	src := newRuneSource("123")
	res, err := Lex(src)
	require.Nil(t, err)
	assert.Equal(t, "123", res.Text)
	assert.False(t, res.FloatingPoint)
}

func TestLexLeadingZeroRequiresPoint(t *testing.T) {
	src := newRuneSource("05")
	_, err := Lex(src)
	require.NotNil(t, err)
	assert.Equal(t, "expected decimal point after leading zero", err.Message)
}

func TestLexZeroPointFive(t *testing.T) {
	src := newRuneSource("0.5")
	res, err := Lex(src)
	require.Nil(t, err)
	assert.Equal(t, "0.5", res.Text)
	assert.True(t, res.FloatingPoint)
}

func TestLexBareDecimalPointIsError(t *testing.T) {
	src := newRuneSource(".")
	_, err := Lex(src)
	require.NotNil(t, err)
	assert.Equal(t, "expected digit after decimal point", err.Message)
}

func TestLexLoneMinusIsNegateOperator(t *testing.T) {
	src := newRuneSource("-")
	res, err := Lex(src)
	require.Nil(t, err)
	assert.True(t, res.NegateOperator)
	assert.Equal(t, "", res.Text)
}

func TestLexNegativeLiteralIsOneLiteral(t *testing.T) {
	// A '-' directly followed by a digit or '.' is part of the literal;
	// only a '-' followed by anything else is reported as NegateOperator.
	src := newRuneSource("-2.0")
	res, err := Lex(src)
	require.Nil(t, err)
	assert.False(t, res.NegateOperator)
	assert.Equal(t, "-2.0", res.Text)
}

func TestLexExponent(t *testing.T) {
	src := newRuneSource("1.5e10")
	res, err := Lex(src)
	require.Nil(t, err)
	assert.Equal(t, "1.5e10", res.Text)
	assert.True(t, res.FloatingPoint)
}

func TestLexExponentSign(t *testing.T) {
	src := newRuneSource("1e-5")
	res, err := Lex(src)
	require.Nil(t, err)
	assert.Equal(t, "1e-5", res.Text)
}

func TestLexExponentLetterBacktrack(t *testing.T) {
	// "1e" followed by a non-digit, non-sign letter means the 'E' was
	// actually the start of a following keyword (e.g. "1END"), not an
	// exponent marker; it must be pushed back, not consumed.
	src := newRuneSource("1end")
	res, err := Lex(src)
	require.Nil(t, err)
	assert.Equal(t, "1", res.Text)
	assert.True(t, res.HasUnparsedChar)
	assert.Equal(t, 'e', res.UnparsedChar)
}

func TestLexMalformedExponentIsError(t *testing.T) {
	src := newRuneSource("1.704e%23")
	_, err := Lex(src)
	require.NotNil(t, err)
	assert.Equal(t, "expected sign or digit for exponent", err.Message)
	assert.Equal(t, 6, err.Column)
}

func TestLexExponentSignWithoutDigitIsError(t *testing.T) {
	src := newRuneSource("1e+")
	_, err := Lex(src)
	require.NotNil(t, err)
	assert.Equal(t, "expected digit after exponent sign", err.Message)
}
