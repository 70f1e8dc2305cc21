package compiler

import (
	"strconv"
	"strings"

	"ibc/compileerr"
	"ibc/datatype"
	"ibc/numlex"
	"ibc/opcode"
)

// opDef describes one operator: how to recognize it, its precedence and
// associativity, whether it forces both operands to a specific type
// before dispatch (the integer-only logical family, and `\` which always
// widens to double), and how to emit its final opcode once both operands
// are on the stack.
type opDef struct {
	text       string
	keyword    bool // true for alphabetic operators (MOD, AND, OR, XOR, EQV, IMP)
	precedence opcode.Precedence
	rightAssoc bool
	coerce     datatype.DataType // datatype.Null means "no forced coercion"
	combine    func(c *Compiler, lhsType, rhsType datatype.DataType) datatype.DataType
}

func arithCombine(table opcode.Binary) func(*Compiler, datatype.DataType, datatype.DataType) datatype.DataType {
	return func(c *Compiler, lt, rt datatype.DataType) datatype.DataType {
		c.emit(table.ID(lt == datatype.Integer, rt == datatype.Integer))
		if lt == datatype.Integer && rt == datatype.Integer {
			return datatype.Integer
		}
		return datatype.Double
	}
}

func cmpCombine(table opcode.Binary) func(*Compiler, datatype.DataType, datatype.DataType) datatype.DataType {
	return func(c *Compiler, lt, rt datatype.DataType) datatype.DataType {
		c.emit(table.ID(lt == datatype.Integer, rt == datatype.Integer))
		return datatype.Integer
	}
}

func fixedCombine(id opcode.ID, result datatype.DataType) func(*Compiler, datatype.DataType, datatype.DataType) datatype.DataType {
	return func(c *Compiler, _, _ datatype.DataType) datatype.DataType {
		c.emit(id)
		return result
	}
}

// operators lists every binary operator this dialect recognizes, in no
// particular order (lookup is by explicit text match, longest symbols
// tried first so "<=" isn't swallowed as "<").
var operators = []opDef{
	{text: "^", precedence: opcode.Exponential, combine: arithCombine(opcode.ExpOp)},
	{text: "*", precedence: opcode.Product, combine: arithCombine(opcode.MulOp)},
	{text: "/", precedence: opcode.Product, combine: arithCombine(opcode.DivOp)},
	{text: "\\", precedence: opcode.IntDivide, coerce: datatype.Double, combine: fixedCombine(opcode.IntDivID, datatype.Integer)},
	{text: "MOD", keyword: true, precedence: opcode.Modulo, combine: arithCombine(opcode.ModOp)},
	{text: "+", precedence: opcode.Summation, combine: arithCombine(opcode.AddOp)},
	{text: "-", precedence: opcode.Summation, combine: arithCombine(opcode.SubOp)},
	{text: "<=", precedence: opcode.Relation, combine: cmpCombine(opcode.LeOp)},
	{text: ">=", precedence: opcode.Relation, combine: cmpCombine(opcode.GeOp)},
	{text: "<>", precedence: opcode.Equality, combine: cmpCombine(opcode.NeOp)},
	{text: "<", precedence: opcode.Relation, combine: cmpCombine(opcode.LtOp)},
	{text: ">", precedence: opcode.Relation, combine: cmpCombine(opcode.GtOp)},
	{text: "=", precedence: opcode.Equality, combine: cmpCombine(opcode.EqOp)},
	{text: "AND", keyword: true, precedence: opcode.And, coerce: datatype.Integer, combine: fixedCombine(opcode.AndID, datatype.Integer)},
	{text: "OR", keyword: true, precedence: opcode.Or, coerce: datatype.Integer, combine: fixedCombine(opcode.OrID, datatype.Integer)},
	{text: "XOR", keyword: true, precedence: opcode.Xor, coerce: datatype.Integer, combine: fixedCombine(opcode.XorID, datatype.Integer)},
	{text: "EQV", keyword: true, precedence: opcode.Eqv, coerce: datatype.Integer, combine: fixedCombine(opcode.EqvID, datatype.Integer)},
	{text: "IMP", keyword: true, precedence: opcode.Imp, coerce: datatype.Integer, combine: fixedCombine(opcode.ImpID, datatype.Integer)},
}

// peekOperator reports the operator at the cursor, if any, without
// consuming it.
func peekOperator(c *Compiler) (opDef, bool) {
	word := c.cur.peekWord()
	upper := strings.ToUpper(word)
	for _, op := range operators {
		if op.keyword && op.text == upper {
			return op, true
		}
	}
	rest := c.cur.remaining()
	for _, op := range operators {
		if !op.keyword && strings.HasPrefix(rest, op.text) {
			return op, true
		}
	}
	return opDef{}, false
}

func consumeOperator(c *Compiler, op opDef) {
	if op.keyword {
		c.cur.consume(len([]rune(c.cur.peekWord())))
		return
	}
	c.cur.consume(len([]rune(op.text)))
}

// compileExpr parses and emits an expression, consuming operators whose
// precedence is no looser than maxPrec (§4.5's precedence-climbing
// algorithm; smaller opcode.Precedence values bind tighter, so the loop
// condition is "<=" rather than the conventional ">="). An expectedType
// of datatype.Double converts the final produced value via
// convertToDouble; no other expectedType converts it. Any expectedType
// other than datatype.Null makes it an error (ExpNumExprError) if no
// value was produced at all.
func (c *Compiler) compileExpr(maxPrec opcode.Precedence, expectedType datatype.DataType) (datatype.DataType, *compileerr.Error) {
	startColumn := c.cur.Column()
	lhsType, err := c.compileOperand()
	if err != nil {
		return datatype.Null, err
	}
	if lhsType == datatype.Null {
		if expectedType == datatype.Null {
			return datatype.Null, nil
		}
		return datatype.Null, compileerr.New("expected numeric expression", startColumn, 1)
	}

	for {
		op, ok := peekOperator(c)
		if !ok || op.precedence > maxPrec {
			break
		}
		consumeOperator(c, op)

		if op.coerce != datatype.Null {
			lhsType = c.coerceTo(lhsType, op.coerce)
		}

		childFloor := op.precedence
		if !op.rightAssoc {
			childFloor--
		}
		rhsColumn := c.cur.Column()
		rhsType, err := c.compileExpr(childFloor, datatype.Null)
		if err != nil {
			return datatype.Null, err
		}
		if rhsType == datatype.Null {
			return datatype.Null, compileerr.New("expected numeric expression", rhsColumn, 1)
		}
		if op.coerce != datatype.Null {
			rhsType = c.coerceTo(rhsType, op.coerce)
		}

		lhsType = op.combine(c, lhsType, rhsType)
	}

	if expectedType == datatype.Double {
		lhsType = c.convertToDouble(lhsType)
	}
	return lhsType, nil
}

func (c *Compiler) coerceTo(t, want datatype.DataType) datatype.DataType {
	if want == datatype.Integer {
		return c.convertToInteger(t)
	}
	return c.convertToDouble(t)
}

// compileOperand parses a single operand: a numeric constant, a unary
// minus applied to another operand, a NOT applied to an Equality-level
// expression, or a parenthesized expression.
func (c *Compiler) compileOperand() (datatype.DataType, *compileerr.Error) {
	if word := c.cur.peekWord(); strings.EqualFold(word, "NOT") {
		c.cur.consume(len([]rune(word)))
		t, err := c.compileExpr(opcode.Equality, datatype.Null)
		if err != nil {
			return datatype.Null, err
		}
		if t == datatype.Null {
			return datatype.Null, compileerr.New("expected numeric expression", c.cur.Column(), 1)
		}
		c.convertToInteger(t)
		c.emit(opcode.NotID)
		return datatype.Integer, nil
	}

	if r, ok := c.cur.Peek(); ok && r == '(' {
		c.cur.Next()
		t, err := c.compileExpr(opcode.Imp, datatype.Null)
		if err != nil {
			return datatype.Null, err
		}
		if t == datatype.Null {
			return datatype.Null, compileerr.New("expected numeric expression", c.cur.Column(), 1)
		}
		if r2, ok := c.cur.Peek(); !ok || r2 != ')' {
			return datatype.Null, compileerr.New("expected )", c.cur.Column(), 1)
		}
		c.cur.Next()
		return t, nil
	}

	negateColumn := c.cur.Column()
	res, lexErr := numlex.Lex(numSource{c.cur})
	if lexErr != nil {
		return datatype.Null, lexErr
	}
	if res.NegateOperator {
		operandType, err := c.compileOperand()
		if err != nil {
			return datatype.Null, err
		}
		if operandType == datatype.Null {
			return datatype.Null, compileerr.New("expected numeric expression", negateColumn, 1)
		}
		if operandType == datatype.Integer {
			c.emit(opcode.NegIntID)
		} else {
			c.emit(opcode.NegDblID)
		}
		return operandType, nil
	}
	if res.HasUnparsedChar {
		c.cur.pushBack(res.UnparsedChar)
	}
	if res.Text == "" {
		return datatype.Null, nil
	}

	if !res.FloatingPoint {
		if iv, err := strconv.ParseInt(res.Text, 10, 32); err == nil {
			idx := c.nums.Add(res.Text, float64(iv))
			c.emitConst(true, idx)
			return datatype.Integer, nil
		}
	}
	v, err := strconv.ParseFloat(res.Text, 64)
	if err != nil {
		return datatype.Null, compileerr.New("floating point constant is out of range", negateColumn, len([]rune(res.Text)))
	}
	idx := c.nums.Add(res.Text, v)
	c.emitConst(false, idx)
	return datatype.Double, nil
}
