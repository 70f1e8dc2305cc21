// Package recreator implements the recreator (C10): a reverse pass over a
// compiled program line that rebuilds one line of BASIC source text from
// its opcodes, inserting exactly the parentheses the original expression
// needed and none it didn't.
package recreator

import (
	"strings"

	"ibc/opcode"
	"ibc/pool"
	"ibc/program"
)

// item is one value the recreator's stack holds while it walks a line:
// the source text recreated so far for the subexpression, the
// precedence of its outermost operator (Operand for a bare constant),
// and — only meaningful when text is itself a unary-operator
// application — the precedence of that unary operator, which PushBinary
// uses to decide whether the item needs parentheses as a left operand.
type item struct {
	text                    string
	precedence              opcode.Precedence
	unaryOperatorPrecedence opcode.Precedence
	isUnary                 bool
}

// Recreator rebuilds source text from a compiled program buffer, one
// line at a time.
type Recreator struct {
	nums *pool.ConstNumPool

	code       *program.Code
	pc         int
	errorAt    int
	haveError  bool
	stack      []item
	linePrefix string
}

// New returns a recreator reading constant text from nums.
func New(nums *pool.ConstNumPool) *Recreator {
	return &Recreator{nums: nums}
}

// errorStart and errorEnd bracket the opcode at the error offset with
// sentinel bytes a caller strips out after inserting its own error
// marker text (see DESIGN.md's resolved Open Question on the recreator
// end-marker byte). They are control bytes chosen to never occur in
// recreated BASIC source.
const (
	errorStart = 0x02
	errorEnd   = 0x03
)

// Line recreates one line of the program buffer starting at offset,
// running until the line's instructions are exhausted. If errorOffset
// is non-negative, the opcode at that offset is bracketed with
// errorStart/errorEnd in the returned text so a caller can splice in an
// error marker at exactly the right column.
func (r *Recreator) Line(code *program.Code, li program.LineInfo, errorOffset int) string {
	r.code = code
	r.pc = li.Offset
	r.errorAt = errorOffset
	r.haveError = false
	r.stack = r.stack[:0]
	r.linePrefix = ""

	end := li.Offset + li.Length
	for r.pc < end {
		opAt := r.pc
		word := code.At(r.pc)
		r.pc++
		id := opcode.ID(word.AsOpcode())
		atErr := opAt == errorOffset
		if atErr {
			r.haveError = true
		}
		opcode.RecreateOf(id)(&errMarkingCtx{r: r, atError: atErr})
	}

	var b strings.Builder
	b.WriteString(r.linePrefix)
	for i, it := range r.stack {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.text)
	}
	return b.String()
}

// errMarkingCtx adapts Recreator to opcode.Recreate for exactly one
// opcode step, carrying whether that step is the one to mark as the
// error anchor.
type errMarkingCtx struct {
	r       *Recreator
	atError bool
}

func (c *errMarkingCtx) Operand() int {
	w := c.r.code.At(c.r.pc)
	c.r.pc++
	return int(w.AsOperand())
}

func (c *errMarkingCtx) ConstText(i int) string {
	return c.r.nums.Text(i)
}

func (c *errMarkingCtx) AtError() bool {
	return c.atError
}

func (c *errMarkingCtx) mark(text string) string {
	if !c.atError {
		return text
	}
	return string([]byte{errorStart}) + text + string([]byte{errorEnd})
}

func (c *errMarkingCtx) PushOperand(text string) {
	c.r.stack = append(c.r.stack, item{text: c.mark(text), precedence: opcode.Operand})
}

// PushEmpty is the recreate step for the typed auxiliary opcodes
// (cvtdbl, cvtint, print_dbl, print_int): they recreate to nothing, so
// the stack is left untouched rather than gaining a spurious item that
// would never be consumed. cvtint can trap at run time (an overflowing
// implicit coercion); if this auxiliary opcode is the error anchor,
// there is no text of its own to carry the sentinel bytes, so the
// marker is wrapped around the operand already on top of the stack —
// the value whose conversion actually failed.
func (c *errMarkingCtx) PushEmpty() {
	if !c.atError || len(c.r.stack) == 0 {
		return
	}
	top := &c.r.stack[len(c.r.stack)-1]
	top.text = c.mark(top.text)
}

// endsWithLetter reports whether keyword's last byte is an ASCII
// letter, distinguishing word keywords (NOT) that always need a
// separating space from symbolic ones (-) that abut their operand
// directly — "--2.0" recreates with no spaces at all, the operand
// abutment the double-negate scenario requires.
func endsWithLetter(keyword string) bool {
	if keyword == "" {
		return false
	}
	b := keyword[len(keyword)-1]
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// startsWithDigitOrPoint reports whether text's first real character (skipping
// a possible leading error-marker byte) is a digit or '.', the §4.9
// digit-abutment rule: "-(3)" must recreate as "- 3", not "-3", which would
// read back as the single literal -3 instead of a negation of 3.
func startsWithDigitOrPoint(text string) bool {
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b == errorStart {
			continue
		}
		return b == '.' || (b >= '0' && b <= '9')
	}
	return false
}

// PushUnary pops one operand and rewrites it as "keyword operand",
// parenthesizing the operand only if its own precedence binds looser
// than this unary operator.
func (c *errMarkingCtx) PushUnary(keyword string, precedence opcode.Precedence) {
	n := len(c.r.stack)
	operand := c.r.stack[n-1]
	c.r.stack = c.r.stack[:n-1]

	text := operand.text
	if operand.precedence > precedence {
		text = "(" + text + ")"
	}
	sep := ""
	if endsWithLetter(keyword) {
		sep = " "
	} else if startsWithDigitOrPoint(text) {
		sep = " "
	}
	combined := c.mark(keyword) + sep + text
	c.r.stack = append(c.r.stack, item{
		text:                    combined,
		precedence:              precedence,
		unaryOperatorPrecedence: precedence,
		isUnary:                 true,
	})
}

// PushBinary pops two operands (rhs then lhs) and rewrites them as
// "lhs keyword rhs", parenthesizing each side only when leaving it bare
// would change what the expression parses back to: lhs needs
// parentheses if its precedence (or, for a unary application, the
// unary operator's own precedence) binds looser than this operator;
// rhs needs them if its precedence is no tighter than this operator's
// (equal precedence on the right means right-association would be lost
// if left bare) unless rhs is itself a unary application, which already
// parses back correctly without help.
func (c *errMarkingCtx) PushBinary(keyword string, precedence opcode.Precedence) {
	n := len(c.r.stack)
	rhs := c.r.stack[n-1]
	lhs := c.r.stack[n-2]
	c.r.stack = c.r.stack[:n-2]

	lhsText := lhs.text
	if lhs.precedence > precedence || lhs.unaryOperatorPrecedence > precedence {
		lhsText = "(" + lhsText + ")"
	}
	rhsText := rhs.text
	if rhs.precedence >= precedence && !rhs.isUnary {
		rhsText = "(" + rhsText + ")"
	}

	combined := lhsText + " " + c.mark(keyword) + " " + rhsText
	c.r.stack = append(c.r.stack, item{text: combined, precedence: precedence})
}

// PushCommandKeyword prepends a command keyword (e.g. "PRINT") to the
// line; any expression already recreated onto the stack becomes that
// command's trailing argument text.
func (c *errMarkingCtx) PushCommandKeyword(keyword string) {
	c.r.linePrefix = c.mark(keyword)
	if len(c.r.stack) > 0 {
		c.r.linePrefix += " "
	}
}

// stripMarkers removes the error sentinel bytes from s, returning the
// plain text and the byte offset (in the stripped string) where the
// marked span began, or -1 if no span was marked.
func stripMarkers(s string) (string, int) {
	startIdx := strings.IndexByte(s, errorStart)
	if startIdx < 0 {
		return s, -1
	}
	var b strings.Builder
	b.WriteString(s[:startIdx])
	markCol := b.Len()
	rest := s[startIdx+1:]
	endIdx := strings.IndexByte(rest, errorEnd)
	if endIdx < 0 {
		b.WriteString(rest)
		return b.String(), markCol
	}
	b.WriteString(rest[:endIdx])
	b.WriteString(rest[endIdx+1:])
	return b.String(), markCol
}

// Plain recreates a line with no error anchor.
func (r *Recreator) Plain(code *program.Code, li program.LineInfo) string {
	return r.Line(code, li, -1)
}

// WithAnchor recreates a line with the opcode at errorOffset bracketed,
// then strips the sentinel bytes back out, returning the plain text and
// the byte column the faulting opcode's text began at — the
// column-anchored caret a run error report uses (§6). ok is false if
// errorOffset did not land on any opcode the recreator visited.
func (r *Recreator) WithAnchor(code *program.Code, li program.LineInfo, errorOffset int) (text string, column int, ok bool) {
	raw := r.Line(code, li, errorOffset)
	stripped, col := stripMarkers(raw)
	if col < 0 {
		return stripped, -1, false
	}
	return stripped, col, true
}
