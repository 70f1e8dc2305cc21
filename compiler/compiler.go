// Package compiler implements the expression compiler (C6) and command
// compiler (C7): a precedence-climbing recursive-descent parser over one
// line of source text that emits typed opcodes into a program buffer,
// inserting implicit numeric conversions as it goes.
package compiler

import (
	"ibc/compileerr"
	"ibc/datatype"
	"ibc/opcode"
	"ibc/pool"
	"ibc/program"
)

// Compiler compiles one line of source text into the program buffer,
// tracking enough state (the input cursor, and whether the last thing
// emitted was a rewritable constant push) to implement the cheap
// int<->double coercion path described in §4.5.
type Compiler struct {
	cur  *cursor
	code *program.Code
	nums *pool.ConstNumPool

	lastConstPos       int
	lastConstIsInt     bool
	lastConstPoolIndex int
}

// New returns a compiler for one line of source text, emitting into code
// and interning numeric literals into nums.
func New(line string, code *program.Code, nums *pool.ConstNumPool) *Compiler {
	return &Compiler{
		cur:          newCursor(line),
		code:         code,
		nums:         nums,
		lastConstPos: -1,
	}
}

// CompileLine compiles the whole line as one command. An empty or
// all-whitespace line emits no instructions and returns no error.
func (c *Compiler) CompileLine() *compileerr.Error {
	if c.cur.atEOF() {
		return nil
	}
	return c.compileCommand()
}

func (c *Compiler) emit(id opcode.ID) int {
	pos := c.code.EmplaceOpcode(uint16(id))
	c.lastConstPos = -1
	return pos
}

func (c *Compiler) emitOperand(v int) {
	c.code.EmplaceOperand(uint16(v))
}

func (c *Compiler) emitConst(isInt bool, poolIndex int) {
	id := opcode.ConstDblID
	if isInt {
		id = opcode.ConstIntID
	}
	pos := c.code.EmplaceOpcode(uint16(id))
	c.emitOperand(poolIndex)
	c.lastConstPos = pos
	c.lastConstIsInt = isInt
	c.lastConstPoolIndex = poolIndex
}

// convertToDouble rewrites a just-emitted integer constant push to
// const_dbl in place when possible (every int32 value is exactly
// representable as a double, so this rewrite is always available for a
// constant); otherwise it emits a runtime cvtdbl.
func (c *Compiler) convertToDouble(t datatype.DataType) datatype.DataType {
	if t != datatype.Integer {
		return t
	}
	if c.lastConstPos >= 0 && c.lastConstIsInt {
		c.code.Set(c.lastConstPos, program.Word(opcode.ConstDblID))
		c.lastConstIsInt = false
		return datatype.Double
	}
	c.emit(opcode.CvtDblID)
	return datatype.Double
}

// convertToInteger is convertToDouble's mirror image, used by the
// integer-only logical operators (see DESIGN.md — resolves an Open
// Question the original source left undocumented). The in-place rewrite
// is only valid when the constant's stored value has no fractional part
// and fits in int32; otherwise a runtime cvtint is emitted, which itself
// traps overflow if the coercion turns out to be lossy.
func (c *Compiler) convertToInteger(t datatype.DataType) datatype.DataType {
	if t != datatype.Double {
		return t
	}
	if c.lastConstPos >= 0 && !c.lastConstIsInt {
		if pool.ConvertibleToInteger(c.nums.Value(c.lastConstPoolIndex)) {
			c.code.Set(c.lastConstPos, program.Word(opcode.ConstIntID))
			c.lastConstIsInt = true
			return datatype.Integer
		}
	}
	c.emit(opcode.CvtIntID)
	return datatype.Integer
}
