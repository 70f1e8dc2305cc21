package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionaryInterning(t *testing.T) {
	d := NewDictionary()

	i1 := d.Add("FOO")
	i2 := d.Add("BAR")
	i3 := d.Add("FOO")

	assert.Equal(t, i1, i3, "re-adding identical text must return the same index")
	assert.NotEqual(t, i1, i2)
	assert.Equal(t, "FOO", d.At(i1))
	assert.Equal(t, "BAR", d.At(i2))
	assert.Equal(t, 2, d.Len())
}

func TestDictionaryFind(t *testing.T) {
	d := NewDictionary()
	_, ok := d.Find("X")
	assert.False(t, ok)

	i := d.Add("X")
	found, ok := d.Find("X")
	assert.True(t, ok)
	assert.Equal(t, i, found)
}
