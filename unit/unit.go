// Package unit implements the program unit: the collaborator that owns
// one program's numeric constant pool and program buffer, and drives
// compilation, recreation, and execution over them using the compiler,
// recreator, and vm packages.
package unit

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"ibc/compiler"
	"ibc/opcode"
	"ibc/pool"
	"ibc/program"
	"ibc/recreator"
	"ibc/runerr"
	"ibc/vm"
)

// Unit owns a program's per-program state (§5: "opcode buffer, constant
// pool, line-info table, VM stack... owned by a single ProgramUnit
// instance"). Two Units never share mutable state.
type Unit struct {
	nums *pool.ConstNumPool
	code *program.Code
	vm   *vm.VM
	rec  *recreator.Recreator

	out io.Writer
}

// New returns an empty program unit writing run output to out.
func New(out io.Writer, logger *slog.Logger) *Unit {
	nums := pool.NewConstNumPool()
	return &Unit{
		nums: nums,
		code: program.NewCode(),
		vm:   vm.New(nums, out, logger),
		rec:  recreator.New(nums),
		out:  out,
	}
}

// CompileSource compiles every line of source (split on '\n') into the
// unit's program buffer. It returns the number of lines that failed to
// compile; on any failure it writes the §6 compile-error text block for
// that line to the unit's output and still advances the line table (a
// zero-length entry), so later line numbers and offsets stay aligned.
func (u *Unit) CompileSource(source string) int {
	lines := strings.Split(source, "\n")
	errCount := 0
	for i, line := range lines {
		start := u.code.StartLine()
		comp := compiler.New(line, u.code, u.nums)
		if err := comp.CompileLine(); err != nil {
			u.code.Truncate(start)
			u.code.AppendEmptyLine()
			u.writeCompileError(i+1, line, err.Column, err.Length, err.Message)
			errCount++
			continue
		}
		u.code.EndLine(start)
	}
	return errCount
}

func (u *Unit) writeCompileError(lineNum int, line string, column, length int, message string) {
	fmt.Fprintf(u.out, "error on line %d:%d: %s\n", lineNum, column, message)
	fmt.Fprintf(u.out, "    %s\n", line)
	fmt.Fprintf(u.out, "    %s%s\n", strings.Repeat(" ", column), strings.Repeat("^", max(length, 1)))
}

// LineCount reports how many lines are recorded in the program buffer.
func (u *Unit) LineCount() int {
	return u.code.LineCount()
}

// RecreateLine returns the canonical recreated text of line index i
// (0-based), with no error anchor.
func (u *Unit) RecreateLine(i int) string {
	return u.rec.Plain(u.code, u.code.Line(i))
}

// Recreate returns every line's canonical recreated text, one per
// element, matching §6's "Program:" listing.
func (u *Unit) Recreate() []string {
	out := make([]string, u.code.LineCount())
	for i := range out {
		out[i] = u.RecreateLine(i)
	}
	return out
}

// Run executes the whole program from the start. Per §5's resource
// guard, a synthetic end_code is appended so a program that falls off
// the end of its instructions still terminates cleanly, and the
// appended word (and its line-table entry) is retracted on every exit
// path, successful or not.
func (u *Unit) Run() *runerr.Error {
	guardLine := u.code.StartLine()
	endPos := u.code.EmplaceOpcode(uint16(opcode.EndCodeID))
	u.code.EndLine(guardLine)
	defer func() {
		u.code.Truncate(endPos)
		u.code.PopLine()
	}()
	return u.vm.Run(u.code)
}

// RunCode runs the whole program and, if a RunError is raised, catches
// it and writes the §6 run-error text block instead of propagating —
// runCode's documented behavior (§7.2). It returns true if the program
// ran to completion without a RunError.
func (u *Unit) RunCode() bool {
	err := u.Run()
	if err == nil {
		return true
	}
	lineIdx := u.code.LineIndexForOffset(err.Offset)
	if lineIdx < 0 {
		fmt.Fprintf(u.out, "run error: %s\n", err.Message)
		return false
	}
	li := u.code.Line(lineIdx)
	text, column, ok := u.rec.WithAnchor(u.code, li, err.Offset)
	if !ok {
		text, column = u.RecreateLine(lineIdx), 0
	}
	fmt.Fprintf(u.out, "run error at line %d:%d: %s\n", lineIdx+1, column, err.Message)
	fmt.Fprintf(u.out, "    %s\n", text)
	fmt.Fprintf(u.out, "    %s^\n", strings.Repeat(" ", column))
	return false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
