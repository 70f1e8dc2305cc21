package opcode

import "math"

func init() {
	AddOp = newBinaryFamily("+", Summation, addII, addID, addDI, addDD)
	SubOp = newBinaryFamily("-", Summation, subII, subID, subDI, subDD)
	MulOp = newBinaryFamily("*", Product, mulII, mulID, mulDI, mulDD)
	DivOp = newBinaryFamily("/", Product, divII, divID, divDI, divDD)
	ModOp = newBinaryFamily("MOD", Modulo, modII, modID, modDI, modDD)
	IntDivID = newOperatorVariant(binaryRecreate("\\", IntDivide), execIntDiv, "\\", IntDivide)
}

func int32FromInt64(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

func doubleOK(v float64) bool {
	return !math.IsInf(v, 0)
}

// --- add ---

func addII(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	r, ok := int32FromInt64(int64(lhs) + int64(rhs))
	if !ok {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushInt(r)
}

func addID(ctx Exec) {
	rhs := ctx.PopDouble()
	lhs := ctx.PopInt()
	r := float64(lhs) + rhs
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

func addDI(ctx Exec) {
	rhs := ctx.PopInt()
	lhs := ctx.PopDouble()
	r := lhs + float64(rhs)
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

func addDD(ctx Exec) {
	rhs, lhs := ctx.PopDouble(), ctx.PopDouble()
	r := lhs + rhs
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

// --- sub ---

func subII(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	r, ok := int32FromInt64(int64(lhs) - int64(rhs))
	if !ok {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushInt(r)
}

func subID(ctx Exec) {
	rhs := ctx.PopDouble()
	lhs := ctx.PopInt()
	r := float64(lhs) - rhs
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

func subDI(ctx Exec) {
	rhs := ctx.PopInt()
	lhs := ctx.PopDouble()
	r := lhs - float64(rhs)
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

func subDD(ctx Exec) {
	rhs, lhs := ctx.PopDouble(), ctx.PopDouble()
	r := lhs - rhs
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

// --- mul ---

func mulII(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	r, ok := int32FromInt64(int64(lhs) * int64(rhs))
	if !ok {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushInt(r)
}

func mulID(ctx Exec) {
	rhs := ctx.PopDouble()
	lhs := ctx.PopInt()
	r := float64(lhs) * rhs
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

func mulDI(ctx Exec) {
	rhs := ctx.PopInt()
	lhs := ctx.PopDouble()
	r := lhs * float64(rhs)
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

func mulDD(ctx Exec) {
	rhs, lhs := ctx.PopDouble(), ctx.PopDouble()
	r := lhs * rhs
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

// --- div (the `/` operator; int-int stays Integer via truncating divide,
// unlike `\` which always widens to Double — see int_div below) ---

func divII(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	if lhs == math.MinInt32 && rhs == -1 {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushInt(lhs / rhs)
}

func divID(ctx Exec) {
	rhs := ctx.PopDouble()
	lhs := ctx.PopInt()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	r := float64(lhs) / rhs
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

func divDI(ctx Exec) {
	rhs := ctx.PopInt()
	lhs := ctx.PopDouble()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	r := lhs / float64(rhs)
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

func divDD(ctx Exec) {
	rhs, lhs := ctx.PopDouble(), ctx.PopDouble()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	r := lhs / rhs
	if !doubleOK(r) {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushDouble(r)
}

// --- int_div (`\`): the compiler always coerces both operands to Double
// before emitting this single variant (see package compiler), so it only
// ever reads two doubles off the stack. ---

func execIntDiv(ctx Exec) {
	rhs, lhs := ctx.PopDouble(), ctx.PopDouble()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	q := math.Trunc(lhs / rhs)
	if q < math.MinInt32 || q > math.MaxInt32 {
		ctx.Trap(TrapOverflow)
		return
	}
	ctx.PushInt(int32(q))
}

// --- mod ---

func modII(ctx Exec) {
	rhs, lhs := ctx.PopInt(), ctx.PopInt()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	ctx.PushInt(lhs % rhs)
}

func modID(ctx Exec) {
	rhs := ctx.PopDouble()
	lhs := ctx.PopInt()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	ctx.PushDouble(math.Mod(float64(lhs), rhs))
}

func modDI(ctx Exec) {
	rhs := ctx.PopInt()
	lhs := ctx.PopDouble()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	ctx.PushDouble(math.Mod(lhs, float64(rhs)))
}

func modDD(ctx Exec) {
	rhs, lhs := ctx.PopDouble(), ctx.PopDouble()
	if rhs == 0 {
		ctx.Trap(TrapDivByZero)
		return
	}
	ctx.PushDouble(math.Mod(lhs, rhs))
}
