package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstNumPoolInterning(t *testing.T) {
	p := NewConstNumPool()

	i1 := p.Add("1.0", 1.0)
	i2 := p.Add("1", 1.0)
	i3 := p.Add("1.0", 1.0)

	assert.Equal(t, i1, i3, "re-adding identical literal text must return the same index")
	assert.NotEqual(t, i1, i2, "\"1\" and \"1.0\" are distinct literals despite equal value")
	assert.Equal(t, "1.0", p.Text(i1))
	assert.Equal(t, "1", p.Text(i2))
	assert.InDelta(t, 1.0, p.Value(i1), 0)
}

func TestConstNumPoolIntValueTruncates(t *testing.T) {
	p := NewConstNumPool()
	i := p.Add("3.7", 3.7)
	assert.Equal(t, int32(3), p.IntValue(i))
}

func TestConvertibleToInteger(t *testing.T) {
	assert.True(t, ConvertibleToInteger(42.0))
	assert.False(t, ConvertibleToInteger(42.5))
	assert.True(t, ConvertibleToInteger(float64(MaxInt32)))
	assert.False(t, ConvertibleToInteger(float64(MaxInt32)+1))
	assert.True(t, ConvertibleToInteger(float64(MinInt32)))
	assert.False(t, ConvertibleToInteger(float64(MinInt32)-1))
}
