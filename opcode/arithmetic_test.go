package opcode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execII(t *testing.T, b Binary, lhs, rhs int32) (int32, string) {
	t.Helper()
	f := newFakeExec()
	f.PushInt(lhs)
	f.PushInt(rhs)
	ExecuteOf(b.ID(true, true))(f)
	if f.trapped != "" {
		return 0, f.trapped
	}
	return f.PopInt(), ""
}

func execDD(t *testing.T, b Binary, lhs, rhs float64) (float64, string) {
	t.Helper()
	f := newFakeExec()
	f.PushDouble(lhs)
	f.PushDouble(rhs)
	ExecuteOf(b.ID(false, false))(f)
	if f.trapped != "" {
		return 0, f.trapped
	}
	return f.PopDouble(), ""
}

func TestAddIntOverflow(t *testing.T) {
	_, trap := execII(t, AddOp, math.MaxInt32, 1)
	assert.Equal(t, TrapOverflow, trap)
}

func TestAddIntInRange(t *testing.T) {
	v, trap := execII(t, AddOp, 3, 2)
	assert.Empty(t, trap)
	assert.Equal(t, int32(5), v)
}

func TestSubIntUnderflow(t *testing.T) {
	_, trap := execII(t, SubOp, math.MinInt32, 1)
	assert.Equal(t, TrapOverflow, trap)
}

func TestMulIntOverflow(t *testing.T) {
	_, trap := execII(t, MulOp, math.MaxInt32, 2)
	assert.Equal(t, TrapOverflow, trap)
}

func TestDivIntByZero(t *testing.T) {
	_, trap := execII(t, DivOp, 5, 0)
	assert.Equal(t, TrapDivByZero, trap)
}

func TestDivIntMinByNegOneOverflows(t *testing.T) {
	_, trap := execII(t, DivOp, math.MinInt32, -1)
	assert.Equal(t, TrapOverflow, trap)
}

func TestDivIntTruncates(t *testing.T) {
	v, trap := execII(t, DivOp, 7, 2)
	assert.Empty(t, trap)
	assert.Equal(t, int32(3), v)
}

func TestModIntByZero(t *testing.T) {
	_, trap := execII(t, ModOp, 5, 0)
	assert.Equal(t, TrapDivByZero, trap)
}

func TestModIntRemainder(t *testing.T) {
	v, trap := execII(t, ModOp, 5, 3)
	assert.Empty(t, trap)
	assert.Equal(t, int32(2), v)
}

func TestIntDivWidensToDoubleOperands(t *testing.T) {
	f := newFakeExec()
	f.PushDouble(7)
	f.PushDouble(2)
	ExecuteOf(IntDivID)(f)
	assert.Empty(t, f.trapped)
	assert.Equal(t, int32(3), f.PopInt())
}

func TestIntDivByZero(t *testing.T) {
	f := newFakeExec()
	f.PushDouble(7)
	f.PushDouble(0)
	ExecuteOf(IntDivID)(f)
	assert.Equal(t, TrapDivByZero, f.trapped)
}

func TestAddDblOverflow(t *testing.T) {
	_, trap := execDD(t, AddOp, math.MaxFloat64, math.MaxFloat64)
	assert.Equal(t, TrapOverflow, trap)
}

func TestDivDblByZero(t *testing.T) {
	_, trap := execDD(t, DivOp, 1, 0)
	assert.Equal(t, TrapDivByZero, trap)
}
