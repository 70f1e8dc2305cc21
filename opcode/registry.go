// Package opcode implements the opcode registry (C1) and the concrete
// arithmetic, comparison, logical, constant, and command opcode handlers
// (C9). Every opcode is a pair of functions — a recreate function and an
// execute function — identified by a dense, process-wide id assigned at
// registration time; operator opcodes additionally carry a display
// keyword and a precedence, and command opcodes carry a keyword and are
// reachable by case-insensitive lookup.
package opcode

import "ibc/internal/cistring"

// ID identifies a registered opcode. Ids are dense and stable for the
// lifetime of the process: the same opcode always has the same id across
// every program compiled in a run.
type ID uint16

// Precedence ranks an operator for both the expression compiler's
// precedence-climbing loop and the recreator's parenthesization logic.
// Smaller values bind tighter; Operand (the precedence tag given to a
// bare pushed constant) is the tightest of all, so a constant is never
// parenthesized by a surrounding operator.
type Precedence int

const (
	Operand Precedence = iota
	Exponential
	Negate
	Product
	IntDivide
	Modulo
	Summation
	Relation
	Equality
	Not
	And
	Xor
	Or
	Eqv
	Imp
)

// ExecFunc is the execute half of an opcode: given the running exec
// context, it performs the opcode's effect on the value stack (and, for
// end_code, raises EndOfProgram).
type ExecFunc func(Exec)

// RecreateFunc is the recreate half of an opcode: given the running
// recreate context, it contributes this opcode's text to the stack the
// recreator is assembling.
type RecreateFunc func(Recreate)

type entry struct {
	recreate   RecreateFunc
	execute    ExecFunc
	keyword    string
	precedence Precedence
	hasOp      bool
}

var (
	entries      []entry
	commandIndex = make(map[cistring.String]ID)
)

// Register appends a new opcode with the given recreate and execute
// functions, returning its id (the registry's prior size).
func Register(recreate RecreateFunc, execute ExecFunc) ID {
	id := ID(len(entries))
	entries = append(entries, entry{recreate: recreate, execute: execute})
	return id
}

// RegisterOperator records that id displays as keyword at the given
// precedence. Called once per typed variant of an operator, so that
// keyword_of/precedence_of (and the recreator) can treat all of an
// operator's typed variants identically.
func RegisterOperator(id ID, precedence Precedence, keyword string) {
	e := &entries[id]
	e.keyword = keyword
	e.precedence = precedence
	e.hasOp = true
}

// RegisterCommand records keyword (case-insensitive) as the command
// dispatch name for id.
func RegisterCommand(id ID, keyword string) {
	commandIndex[cistring.Key(keyword)] = id
}

// FindCommand looks up a command keyword case-insensitively.
func FindCommand(keyword string) (ID, bool) {
	id, ok := commandIndex[cistring.Key(keyword)]
	return id, ok
}

// RecreateOf returns the recreate function registered for id.
func RecreateOf(id ID) RecreateFunc {
	return entries[id].recreate
}

// ExecuteOf returns the execute function registered for id.
func ExecuteOf(id ID) ExecFunc {
	return entries[id].execute
}

// KeywordOf returns the display keyword for id, if it was registered as
// an operator.
func KeywordOf(id ID) (string, bool) {
	e := entries[id]
	return e.keyword, e.hasOp
}

// PrecedenceOf returns the precedence for id, if it was registered as an
// operator.
func PrecedenceOf(id ID) (Precedence, bool) {
	e := entries[id]
	return e.precedence, e.hasOp
}

// Len reports how many opcodes are registered. Exposed for tests that
// want to assert the registry is populated before relying on any id.
func Len() int {
	return len(entries)
}
