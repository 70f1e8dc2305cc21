package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeEmplaceAndAt(t *testing.T) {
	c := NewCode()
	c.EmplaceOpcode(7)
	c.EmplaceOperand(3)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, uint16(7), c.At(0).AsOpcode())
	assert.Equal(t, uint16(3), c.At(1).AsOperand())
}

func TestCodeSetRewritesInPlace(t *testing.T) {
	c := NewCode()
	pos := c.EmplaceOpcode(1)
	c.Set(pos, Word(2))
	assert.Equal(t, uint16(2), c.At(pos).AsOpcode())
}

func TestCodeLineTracking(t *testing.T) {
	c := NewCode()

	start := c.StartLine()
	c.EmplaceOpcode(1)
	c.EmplaceOpcode(2)
	c.EndLine(start)

	c.AppendEmptyLine()

	start = c.StartLine()
	c.EmplaceOpcode(3)
	c.EndLine(start)

	assert.Equal(t, 3, c.LineCount())
	assert.Equal(t, LineInfo{Offset: 0, Length: 2}, c.Line(0))
	assert.Equal(t, LineInfo{Offset: 2, Length: 0}, c.Line(1))
	assert.Equal(t, LineInfo{Offset: 2, Length: 1}, c.Line(2))

	assert.Equal(t, 0, c.LineIndexForOffset(0))
	assert.Equal(t, 0, c.LineIndexForOffset(1))
	assert.Equal(t, 2, c.LineIndexForOffset(2))
	assert.Equal(t, -1, c.LineIndexForOffset(99))
}

func TestCodeTruncateAndPopLine(t *testing.T) {
	c := NewCode()
	start := c.StartLine()
	c.EmplaceOpcode(1)
	c.EndLine(start)

	// Simulate a scoped guard: append a synthetic instruction as its own
	// line, then retract both the words and the line entry.
	mark := c.Len()
	guardStart := c.StartLine()
	c.EmplaceOpcode(2)
	c.EndLine(guardStart)

	c.Truncate(mark)
	c.PopLine()

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.LineCount())
}
