package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintIntWritesDecimal(t *testing.T) {
	f := newFakeExec()
	f.PushInt(-42)
	ExecuteOf(PrintIntID)(f)
	assert.Equal(t, "-42", f.out)
}

func TestPrintDblWritesShortestForm(t *testing.T) {
	f := newFakeExec()
	f.PushDouble(9.0)
	ExecuteOf(PrintDblID)(f)
	assert.Equal(t, "9", f.out)
}

func TestPrintWritesNewline(t *testing.T) {
	f := newFakeExec()
	ExecuteOf(PrintID)(f)
	assert.Equal(t, "\n", f.out)
}

func TestPrintCommandIsRegisteredCaseInsensitively(t *testing.T) {
	id, ok := FindCommand("print")
	assert.True(t, ok)
	assert.Equal(t, PrintID, id)
}

func TestEndCommandRegistered(t *testing.T) {
	id, ok := FindCommand("END")
	assert.True(t, ok)
	assert.Equal(t, EndCodeID, id)
}
