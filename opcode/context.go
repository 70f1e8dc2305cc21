package opcode

// Exec is the surface an execute function needs from the running virtual
// machine: operand fetch, the value stack, the output sink, and the trap
// mechanism for run errors and normal termination.
type Exec interface {
	// Operand reads the word following the current opcode as a pool
	// index, advancing past it.
	Operand() int
	// ConstDouble and ConstInt read the numeric constant pool entry at
	// index i.
	ConstDouble(i int) float64
	ConstInt(i int) int32

	PushDouble(v float64)
	PushInt(v int32)
	PopDouble() float64
	PopInt() int32
	// Pop discards the top of stack without caring about its type.
	Pop()

	Write(s string)

	// Offset returns pc-1, the offset of the opcode currently executing
	// — the anchor every trap uses.
	Offset() int
	// Trap aborts execution with a RunError carrying message and the
	// current offset.
	Trap(message string)
	// EndOfProgram aborts execution with the EndOfProgram signal.
	EndOfProgram()
}

// Recreate is the surface a recreate function needs from the running
// recreator: operand fetch, constant-pool text lookup, error-marker
// state, and the string/precedence stack the recreator assembles.
type Recreate interface {
	// Operand reads the word following the current opcode as a pool
	// index, advancing past it (mirrors Exec.Operand so recreate
	// functions walk the buffer the same way execute functions do).
	Operand() int
	// ConstText returns the original source text of numeric constant i.
	ConstText(i int) string

	// AtError reports whether the opcode currently being recreated is
	// the one the caller asked to mark.
	AtError() bool

	// PushOperand pushes a leaf operand (a constant or, in the future, a
	// variable reference) with precedence Operand.
	PushOperand(text string)
	// PushUnary pops one operand and pushes the unary application of
	// keyword at precedence.
	PushUnary(keyword string, precedence Precedence)
	// PushBinary pops two operands (rhs then lhs) and pushes the binary
	// application of keyword at precedence.
	PushBinary(keyword string, precedence Precedence)
	// PushCommandKeyword prepends a command keyword to the line, per
	// §4.9's command-keyword rule.
	PushCommandKeyword(keyword string)
	// PushEmpty is the step for auxiliary opcodes that recreate to
	// nothing (cvtdbl, cvtint, print_dbl, print_int): it adds no stack
	// item, and only moves the error marker onto the top item when the
	// opcode is the one being marked.
	PushEmpty()
}
