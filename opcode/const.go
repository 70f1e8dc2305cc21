package opcode

import "math"

func init() {
	ConstDblID = Register(recreateConstDbl, execConstDbl)
	ConstIntID = Register(recreateConstInt, execConstInt)
	CvtDblID = Register(emptyRecreate, execCvtDbl)
	CvtIntID = Register(emptyRecreate, execCvtInt)
	NegDblID = newOperatorVariant(unaryRecreate("-", Negate), execNegDbl, "-", Negate)
	NegIntID = newOperatorVariant(unaryRecreate("-", Negate), execNegInt, "-", Negate)
}

func recreateConstDbl(ctx Recreate) {
	i := ctx.Operand()
	ctx.PushOperand(ctx.ConstText(i))
}

func execConstDbl(ctx Exec) {
	i := ctx.Operand()
	ctx.PushDouble(ctx.ConstDouble(i))
}

func recreateConstInt(ctx Recreate) {
	i := ctx.Operand()
	ctx.PushOperand(ctx.ConstText(i))
}

func execConstInt(ctx Exec) {
	i := ctx.Operand()
	ctx.PushInt(ctx.ConstInt(i))
}

// cvtdbl converts the top-of-stack int to double at run time; it is
// inserted by the compiler only when a constant-push rewrite (the cheap
// path) is not available. It always recreates to empty text.
func execCvtDbl(ctx Exec) {
	v := ctx.PopInt()
	ctx.PushDouble(float64(v))
}

// cvtint converts the top-of-stack double to int at run time, truncating
// toward zero, trapping overflow if the value does not fit. Mirrors
// cvtdbl for the opposite direction (the compiler's added convertToInteger
// coercion, used only by the integer-only logical operators).
func execCvtInt(ctx Exec) {
	v := ctx.PopDouble()
	t := math.Trunc(v)
	if t < math.MinInt32 || t > math.MaxInt32 {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushInt(int32(t))
}

func execNegDbl(ctx Exec) {
	v := ctx.PopDouble()
	ctx.PushDouble(-v)
}

func execNegInt(ctx Exec) {
	v := ctx.PopInt()
	if v == math.MinInt32 {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushInt(-v)
}
