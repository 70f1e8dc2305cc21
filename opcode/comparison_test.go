package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparisonTrueIsNegativeOne(t *testing.T) {
	v, trap := execII(t, LtOp, 1, 2)
	assert.Empty(t, trap)
	assert.Equal(t, int32(-1), v)
}

func TestComparisonFalseIsZero(t *testing.T) {
	v, trap := execII(t, LtOp, 2, 1)
	assert.Empty(t, trap)
	assert.Equal(t, int32(0), v)
}

func TestComparisonEquality(t *testing.T) {
	v, _ := execII(t, EqOp, 3, 3)
	assert.Equal(t, int32(-1), v)
	v, _ = execII(t, NeOp, 3, 3)
	assert.Equal(t, int32(0), v)
}

func TestComparisonMixedTypeWidensToDouble(t *testing.T) {
	f := newFakeExec()
	f.PushDouble(1.5)
	f.PushInt(2)
	ExecuteOf(GtOp.ID(false, true))(f)
	assert.Equal(t, int32(0), f.PopInt())
}
