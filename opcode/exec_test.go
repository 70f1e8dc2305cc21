package opcode

import "math"

// fakeExec is a minimal Exec implementation for exercising execute
// functions directly, without a real vm.VM or compiled program buffer.
type fakeExec struct {
	stack   []uint64
	out     string
	trapped string
}

func newFakeExec() *fakeExec { return &fakeExec{} }

func (f *fakeExec) Operand() int             { return 0 }
func (f *fakeExec) ConstDouble(i int) float64 { return 0 }
func (f *fakeExec) ConstInt(i int) int32      { return 0 }

func (f *fakeExec) PushDouble(v float64) {
	f.stack = append(f.stack, math.Float64bits(v))
}

func (f *fakeExec) PushInt(v int32) {
	f.stack = append(f.stack, uint64(uint32(v)))
}

func (f *fakeExec) pop() uint64 {
	v := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return v
}

func (f *fakeExec) PopDouble() float64 { return math.Float64frombits(f.pop()) }
func (f *fakeExec) PopInt() int32      { return int32(uint32(f.pop())) }
func (f *fakeExec) Pop()               { f.pop() }

func (f *fakeExec) Write(s string) { f.out += s }

func (f *fakeExec) Offset() int { return 0 }

func (f *fakeExec) Trap(message string) { f.trapped = message }

func (f *fakeExec) EndOfProgram() {}
