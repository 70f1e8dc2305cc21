package opcode

// Logical operators are bitwise on int32, not short-circuit — both
// operands are already unconditionally evaluated by the time a binary
// opcode runs on a stack machine, so there is no short-circuit to
// preserve. They take a single (Integer, Integer) variant each: the
// compiler's convertToInteger coerces both operands beforehand (see
// DESIGN.md), so unlike arithmetic there is no typed-variant table here.
// True is -1 (all bits set) and false is 0, the classic Microsoft BASIC
// convention, which is exactly what makes NOT/AND/OR/XOR/EQV/IMP bitwise
// operations agree with boolean logic.
func init() {
	NotID = newOperatorVariant(unaryRecreate("NOT", Not), execNot, "NOT", Not)
	AndID = newOperatorVariant(binaryRecreate("AND", And), execAnd, "AND", And)
	OrID = newOperatorVariant(binaryRecreate("OR", Or), execOr, "OR", Or)
	XorID = newOperatorVariant(binaryRecreate("XOR", Xor), execXor, "XOR", Xor)
	EqvID = newOperatorVariant(binaryRecreate("EQV", Eqv), execEqv, "EQV", Eqv)
	ImpID = newOperatorVariant(binaryRecreate("IMP", Imp), execImp, "IMP", Imp)
}

func execNot(ctx Exec) {
	ctx.PushInt(^ctx.PopInt())
}

func execAnd(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	ctx.PushInt(lhs & rhs)
}

func execOr(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	ctx.PushInt(lhs | rhs)
}

func execXor(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	ctx.PushInt(lhs ^ rhs)
}

func execEqv(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	ctx.PushInt(^(lhs ^ rhs))
}

func execImp(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	ctx.PushInt(^lhs | rhs)
}
