// Package vm implements the virtual machine (C8): a fetch-execute loop
// over a compiled program buffer, owning the value stack and the program
// counter.
package vm

import (
	"io"
	"log/slog"
	"math"
	"math/rand/v2"

	"ibc/opcode"
	"ibc/pool"
	"ibc/program"
	"ibc/runerr"
)

// EndOfProgram is the distinguished control-flow signal end_code raises
// to terminate the fetch-execute loop. It is not an error — it is the
// only way a program terminates normally — and is kept as its own type
// rather than folded into runerr.Error, matching the three
// non-overlapping error/signal kinds this dialect distinguishes.
type EndOfProgram struct{}

// VM owns the program counter, the value stack, and the collaborators
// (constant pool, output sink, optional debug logger, and per-instance
// random source) opcode handlers need.
type VM struct {
	nums   *pool.ConstNumPool
	out    io.Writer
	logger *slog.Logger
	rng    *rand.Rand

	code  *program.Code
	pc    int
	stack []uint64
}

// New returns a VM ready to run a program buffer. logger may be nil, in
// which case vm falls back to slog.Default() so callers pay nothing
// unless they opt into tracing.
func New(nums *pool.ConstNumPool, out io.Writer, logger *slog.Logger) *VM {
	if logger == nil {
		logger = slog.Default()
	}
	return &VM{
		nums:   nums,
		out:    out,
		logger: logger,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Rand returns the VM's per-instance random source, reserved for a
// future RND function (§4.7); no opcode in this dialect's current scope
// exercises it.
func (vm *VM) Rand() *rand.Rand {
	return vm.rng
}

// Run executes code from offset 0 until end_code raises EndOfProgram or
// an opcode traps. It returns nil on clean termination (stack empty when
// end_code fires); a non-nil *runerr.Error either surfaces a trap
// verbatim or, if the stack is non-empty at termination, reports the
// "BUG: value stack not empty at end of program" condition at the
// terminating offset — the residual-stack check §4.7 requires.
func (vm *VM) Run(code *program.Code) (err *runerr.Error) {
	vm.code = code
	vm.pc = 0
	vm.stack = vm.stack[:0]

	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case EndOfProgram:
				if len(vm.stack) != 0 {
					err = runerr.New("BUG: value stack not empty at end of program", vm.pc-1)
				}
			case *runerr.Error:
				err = v
			default:
				panic(r)
			}
		}
	}()

	for {
		word := vm.code.At(vm.pc)
		vm.pc++
		id := opcode.ID(word.AsOpcode())
		vm.logger.Debug("exec", "opcode", id, "pc", vm.pc-1, "depth", len(vm.stack))
		opcode.ExecuteOf(id)(vm)
	}
}

// --- opcode.Exec implementation ---

func (vm *VM) Operand() int {
	w := vm.code.At(vm.pc)
	vm.pc++
	return int(w.AsOperand())
}

func (vm *VM) ConstDouble(i int) float64 { return vm.nums.Value(i) }
func (vm *VM) ConstInt(i int) int32      { return vm.nums.IntValue(i) }

func (vm *VM) PushDouble(v float64) {
	vm.stack = append(vm.stack, math.Float64bits(v))
}

func (vm *VM) PushInt(v int32) {
	vm.stack = append(vm.stack, uint64(uint32(v)))
}

func (vm *VM) top() uint64 {
	return vm.stack[len(vm.stack)-1]
}

func (vm *VM) PopDouble() float64 {
	v := math.Float64frombits(vm.top())
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

func (vm *VM) PopInt() int32 {
	v := int32(uint32(vm.top()))
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

func (vm *VM) Pop() {
	vm.stack = vm.stack[:len(vm.stack)-1]
}

func (vm *VM) Write(s string) {
	io.WriteString(vm.out, s)
}

func (vm *VM) Offset() int {
	return vm.pc - 1
}

func (vm *VM) Trap(message string) {
	panic(runerr.New(message, vm.Offset()))
}

func (vm *VM) EndOfProgram() {
	panic(EndOfProgram{})
}
