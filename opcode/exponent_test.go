package opcode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpIntInt(t *testing.T) {
	cases := []struct {
		x, y     int32
		want     int32
		wantTrap string
	}{
		{2, 10, 1024, ""},
		{3, 0, 1, ""},
		{0, 5, 0, ""},
		{5, 0, 1, ""},
		{-2, 3, -8, ""},
		{-1, 7, -1, ""},
		{-1, 8, 1, ""},
		{1, -5, 1, ""},
		{-1, -3, -1, ""},
		{-1, -4, 1, ""},
		{0, -1, 0, TrapDivByZero},
		{2, -3, 0, TrapDivByZero},
		{4, -1, 0, TrapDivByZero},
		{2, 31, 0, TrapOverflow},
		{-2, 32, 0, TrapOverflow},
	}
	for _, c := range cases {
		got, trap := expIntInt(c.x, c.y)
		if c.wantTrap != "" {
			assert.Equal(t, c.wantTrap, trap, "x=%d y=%d", c.x, c.y)
			continue
		}
		assert.Empty(t, trap, "x=%d y=%d", c.x, c.y)
		assert.Equal(t, c.want, got, "x=%d y=%d", c.x, c.y)
	}
}

func TestExpIntIntMatchesMathPowWhenItFits(t *testing.T) {
	for x := int32(-6); x <= 6; x++ {
		for y := int32(0); y <= 10; y++ {
			got, trap := expIntInt(x, y)
			want := math.Pow(float64(x), float64(y))
			if want > math.MaxInt32 || want < math.MinInt32 {
				continue
			}
			assert.Empty(t, trap, "x=%d y=%d", x, y)
			assert.Equal(t, int32(want), got, "x=%d y=%d", x, y)
		}
	}
}

func TestExpDblDblClassification(t *testing.T) {
	r, trap := expDblDbl(-1, 0.5)
	assert.Equal(t, TrapDomain, trap)
	assert.Zero(t, r)

	r, trap = expDblDbl(0, -1)
	assert.Equal(t, TrapDivByZero, trap)
	assert.Zero(t, r)

	r, trap = expDblDbl(10, 1000)
	assert.Equal(t, TrapOverflow, trap)
	assert.Zero(t, r)

	r, trap = expDblDbl(2, 10)
	assert.Empty(t, trap)
	assert.InDelta(t, 1024.0, r, 1e-9)
}

func TestExpDblIntSmallExponentsMatchPow(t *testing.T) {
	cases := []float64{2, 0.5, -3, 10}
	for _, x := range cases {
		for y := int32(-10); y <= 10; y++ {
			if x == 0 && y < 0 {
				continue
			}
			got, trap := expDblInt(x, y)
			assert.Empty(t, trap, "x=%v y=%d", x, y)
			assert.InDelta(t, math.Pow(x, float64(y)), got, 1e-6, "x=%v y=%d", x, y)
		}
	}
}
