package opcode

// vInteger and vDouble index a Binary's 2x2 typed-variant table.
const (
	vDouble = 0
	vInteger = 1
)

// Binary holds the four typed opcode ids implementing one binary
// operator, selected by whether each side's compile-time type is
// Integer or Double. This is the "small tagged-variant structure"
// pattern used in place of a type hierarchy (§9): the operator itself
// has no behavior, it is just a lookup table over four independently
// registered opcodes.
type Binary struct {
	variants [2][2]ID
}

// ID returns the opcode id for the given (lhs, rhs) type pair.
func (b Binary) ID(lhsInt, rhsInt bool) ID {
	return b.variants[boolIndex(lhsInt)][boolIndex(rhsInt)]
}

func boolIndex(isInt bool) int {
	if isInt {
		return vInteger
	}
	return vDouble
}

// newBinaryFamily registers the four typed variants of one binary
// operator, all sharing a display keyword and precedence, and returns
// the lookup table over them.
func newBinaryFamily(keyword string, prec Precedence, ii, id, di, dd ExecFunc) Binary {
	var b Binary
	recreate := binaryRecreate(keyword, prec)
	b.variants[vInteger][vInteger] = newOperatorVariant(recreate, ii, keyword, prec)
	b.variants[vInteger][vDouble] = newOperatorVariant(recreate, id, keyword, prec)
	b.variants[vDouble][vInteger] = newOperatorVariant(recreate, di, keyword, prec)
	b.variants[vDouble][vDouble] = newOperatorVariant(recreate, dd, keyword, prec)
	return b
}

func newOperatorVariant(recreate RecreateFunc, execute ExecFunc, keyword string, prec Precedence) ID {
	id := Register(recreate, execute)
	RegisterOperator(id, prec, keyword)
	return id
}

func binaryRecreate(keyword string, prec Precedence) RecreateFunc {
	return func(ctx Recreate) { ctx.PushBinary(keyword, prec) }
}

func unaryRecreate(keyword string, prec Precedence) RecreateFunc {
	return func(ctx Recreate) { ctx.PushUnary(keyword, prec) }
}

func emptyRecreate(ctx Recreate) { ctx.PushEmpty() }

// Exported opcode ids and typed-variant tables, populated by the init()
// functions in const.go, arithmetic.go, exponent.go, comparison.go,
// logical.go, and command.go.
var (
	ConstDblID ID
	ConstIntID ID
	CvtDblID   ID
	CvtIntID   ID
	NegDblID   ID
	NegIntID   ID

	AddOp Binary
	SubOp Binary
	MulOp Binary
	DivOp Binary
	ModOp Binary
	ExpOp Binary
	IntDivID ID

	LtOp Binary
	GtOp Binary
	LeOp Binary
	GeOp Binary
	EqOp Binary
	NeOp Binary

	NotID ID
	AndID ID
	OrID  ID
	XorID ID
	EqvID ID
	ImpID ID

	PrintDblID ID
	PrintIntID ID
	PrintID    ID
	EndCodeID  ID
)

// Trap message text, shared by every opcode that can raise it.
const (
	TrapOverflow  = "overflow"
	TrapDivByZero = "divide by zero"
	TrapDomain    = "domain error (non-integer exponent)"
)
