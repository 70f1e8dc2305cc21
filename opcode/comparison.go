package opcode

func init() {
	LtOp = newComparisonFamily("<", func(l, r float64) bool { return l < r })
	GtOp = newComparisonFamily(">", func(l, r float64) bool { return l > r })
	LeOp = newComparisonFamily("<=", func(l, r float64) bool { return l <= r })
	GeOp = newComparisonFamily(">=", func(l, r float64) bool { return l >= r })
	EqOp = newComparisonFamily("=", func(l, r float64) bool { return l == r })
	NeOp = newComparisonFamily("<>", func(l, r float64) bool { return l != r })
}

// newComparisonFamily registers the four typed variants of a comparison
// operator. Every variant reads its operands as whatever type it was
// specialized for, widens to double for the comparison itself (int32
// always converts to float64 losslessly), and pushes the dialect's
// boolean convention: -1 for true, 0 for false (see logical.go and
// DESIGN.md's Open Question decision).
// Relation (<, >, <=, >=) and Equality (=, <>) share this one
// implementation; they differ only in precedence, chosen here from the
// keyword: <, >, <= and >= get Relation, = and <> get Equality.
func newComparisonFamily(keyword string, cmp func(lhs, rhs float64) bool) Binary {
	prec := Equality
	if keyword == "<" || keyword == ">" || keyword == "<=" || keyword == ">=" {
		prec = Relation
	}
	variant := func(lhsInt, rhsInt bool) ExecFunc {
		return func(ctx Exec) {
			var rhs, lhs float64
			if rhsInt {
				rhs = float64(ctx.PopInt())
			} else {
				rhs = ctx.PopDouble()
			}
			if lhsInt {
				lhs = float64(ctx.PopInt())
			} else {
				lhs = ctx.PopDouble()
			}
			if cmp(lhs, rhs) {
				ctx.PushInt(-1)
			} else {
				ctx.PushInt(0)
			}
		}
	}
	return newBinaryFamily(keyword, prec,
		variant(true, true), variant(true, false),
		variant(false, true), variant(false, false))
}
