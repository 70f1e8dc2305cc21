package opcode

import "strconv"

func init() {
	PrintDblID = Register(emptyRecreate, execPrintDbl)
	PrintIntID = Register(emptyRecreate, execPrintInt)
	PrintID = Register(recreatePrint, execPrint)
	RegisterCommand(PrintID, "PRINT")

	EndCodeID = Register(recreateEnd, execEnd)
	RegisterCommand(EndCodeID, "END")
}

func execPrintDbl(ctx Exec) {
	v := ctx.PopDouble()
	ctx.Write(strconv.FormatFloat(v, 'g', -1, 64))
}

func execPrintInt(ctx Exec) {
	v := ctx.PopInt()
	ctx.Write(strconv.FormatInt(int64(v), 10))
}

func execPrint(ctx Exec) {
	ctx.Write("\n")
}

func recreatePrint(ctx Recreate) {
	ctx.PushCommandKeyword("PRINT")
}

func execEnd(ctx Exec) {
	ctx.EndOfProgram()
}

func recreateEnd(ctx Recreate) {
	ctx.PushCommandKeyword("END")
}
