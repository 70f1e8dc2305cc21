package compiler

import (
	"ibc/compileerr"
	"ibc/datatype"
	"ibc/opcode"
)

// compileCommand dispatches a line's leading keyword to the matching
// command's own compile logic. Per §9's documented FIXME, an unrecognized
// keyword is a CompileError here rather than the null-pointer dereference
// the original left unfixed.
func (c *Compiler) compileCommand() *compileerr.Error {
	column := c.cur.Column()
	word := c.cur.peekWord()
	if word == "" {
		return compileerr.New("expected command keyword", column, 1)
	}
	id, ok := opcode.FindCommand(word)
	if !ok {
		return compileerr.New("unknown command", column, len([]rune(word)))
	}
	c.cur.consume(len([]rune(word)))

	switch id {
	case opcode.PrintID:
		return c.compilePrint()
	case opcode.EndCodeID:
		return c.compileEnd()
	default:
		return compileerr.New("unknown command", column, len([]rune(word)))
	}
}

// compilePrint implements §4.6: PRINT with a trailing expression emits
// the expression, a print_dbl/print_int per its produced type, then the
// print opcode (which writes the newline); PRINT alone emits only print.
func (c *Compiler) compilePrint() *compileerr.Error {
	if !c.cur.atEOF() {
		t, err := c.compileExpr(opcode.Imp, datatype.Null)
		if err != nil {
			return err
		}
		switch t {
		case datatype.Double:
			c.emit(opcode.PrintDblID)
		case datatype.Integer:
			c.emit(opcode.PrintIntID)
		}
	}
	c.emit(opcode.PrintID)
	return nil
}

func (c *Compiler) compileEnd() *compileerr.Error {
	c.emit(opcode.EndCodeID)
	return nil
}
