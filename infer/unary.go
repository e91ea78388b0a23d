package infer

import "github.com/latticejs/tyinfer/ir"

// unaryArith is the shared shape behind Negate/Inc/Dec (numResult = Number)
// and BitNot (numResult = Int32): a number-only operand gives numResult, a
// bigint-only operand gives BigInt, and an operand that could be either
// keeps both lanes live as Union(numResult, BigInt), since each runtime
// value picks exactly one of the two.
func unaryArith(operand ir.Type, numResult ir.Type) ir.Type {
	if ir.IsNumber(operand) {
		return numResult
	}
	if ir.IsBigInt(operand) {
		return ir.BigInt
	}
	if ir.CanBeBigInt(operand) {
		return ir.Union(numResult, ir.BigInt)
	}
	return numResult
}

func (fp *functionPass) transferUnary(instr *ir.Instruction) ir.Type {
	switch instr.Kind {
	case ir.Negate, ir.Inc, ir.Dec:
		return unaryArith(instr.Operands[0].Type(), ir.Number)
	case ir.BitNot:
		return unaryArith(instr.Operands[0].Type(), ir.Int32)
	}
	// Void/TypeOf/Not carry inherent types; SetType pins them regardless.
	return ir.Any
}
