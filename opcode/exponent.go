package opcode

import "math"

func init() {
	ExpOp = newBinaryFamily("^", Exponential, expII, expID, expDI, expDD)
}

func expII(ctx Exec) {
	y, x := ctx.PopInt(), ctx.PopInt()
	r, trap := expIntInt(x, y)
	if trap != "" {
		ctx.Trap(trap)
		return
	}
	ctx.PushInt(r)
}

func expID(ctx Exec) {
	y := ctx.PopDouble()
	x := ctx.PopInt()
	r, trap := expDblDbl(float64(x), y)
	if trap != "" {
		ctx.Trap(trap)
		return
	}
	ctx.PushDouble(r)
}

func expDI(ctx Exec) {
	y := ctx.PopInt()
	x := ctx.PopDouble()
	r, trap := expDblInt(x, y)
	if trap != "" {
		ctx.Trap(trap)
		return
	}
	ctx.PushDouble(r)
}

func expDD(ctx Exec) {
	y, x := ctx.PopDouble(), ctx.PopDouble()
	r, trap := expDblDbl(x, y)
	if trap != "" {
		ctx.Trap(trap)
		return
	}
	ctx.PushDouble(r)
}

// expIntInt implements x^y for two int32 operands. Exponents below 19
// (x >= 0) or 17 (x < 0) are computed by repeated 64-bit multiplication
// with an int32 bounds check after every step; since the accumulator is
// within int32 range before each multiply, no step can overflow int64.
// Larger exponents go through math.Pow, with the bounds checked on its
// result.
func expIntInt(x, y int32) (int32, string) {
	if y < 0 {
		switch x {
		case 1:
			return 1, ""
		case -1:
			if y%2 == 0 {
				return 1, ""
			}
			return -1, ""
		default:
			// Any other base raised to a negative power has no exact
			// integer result; reported the same as a true divide by zero.
			return 0, TrapDivByZero
		}
	}
	if x >= 0 {
		if y < 19 {
			var acc int64 = 1
			for i := int32(0); i < y; i++ {
				acc *= int64(x)
				if acc > math.MaxInt32 {
					return 0, TrapOverflow
				}
			}
			return int32(acc), ""
		}
		r := math.Pow(float64(x), float64(y))
		if r > math.MaxInt32 {
			return 0, TrapOverflow
		}
		return int32(r), ""
	}
	// x < 0
	if y < 17 {
		var acc int64 = 1
		for i := int32(0); i < y; i++ {
			acc *= int64(x)
			if acc > math.MaxInt32 || acc < math.MinInt32 {
				return 0, TrapOverflow
			}
		}
		return int32(acc), ""
	}
	r := math.Pow(float64(x), float64(y))
	if r > math.MaxInt32 || r < math.MinInt32 {
		return 0, TrapOverflow
	}
	return int32(r), ""
}

// expDblDbl implements x^y (and, via expID's own int->double promotion
// of the base, int_dbl too) using math.Pow, classifying the result
// per §4.8: NaN is a domain error, +Inf with a zero base is divide by
// zero, any other infinity is overflow.
func expDblDbl(x, y float64) (float64, string) {
	r := math.Pow(x, y)
	switch {
	case math.IsNaN(r):
		return 0, TrapDomain
	case math.IsInf(r, 0):
		if x == 0 {
			return 0, TrapDivByZero
		}
		return 0, TrapOverflow
	default:
		return r, ""
	}
}

// expDblInt implements x^y for a double base and int32 exponent,
// iterating by repeated multiply/divide for small exponents and falling
// back to math.Pow outside that range, overflow-checking every step and
// the final result against +-DBL_MAX (represented in Go as +-Inf).
func expDblInt(x float64, y int32) (float64, string) {
	if y > 0 && y < 19 {
		r := 1.0
		for i := int32(0); i < y; i++ {
			r *= x
			if math.IsInf(r, 0) {
				return 0, TrapOverflow
			}
		}
		return r, ""
	}
	if y <= 0 && y > -17 {
		if x == 0 {
			return 0, TrapDivByZero
		}
		r := 1.0
		for i := int32(0); i < -y; i++ {
			r /= x
			if math.IsInf(r, 0) {
				return 0, TrapOverflow
			}
		}
		return r, ""
	}
	return expDblDbl(x, float64(y))
}
