package infer

import "github.com/latticejs/tyinfer/ir"

// binaryArith handles every arithmetic operator except Add, which alone can
// also produce String (see transferAdd). JS's ToNumeric abstract operation
// applies to both operands independently; the result is numResult unless
// both operands can only be bigints, in which case the whole expression is
// BigInt, or both operands could be bigints without being forced to, in
// which case both lanes stay live until the operand types narrow further.
func binaryArith(l, r ir.Type, numResult ir.Type) ir.Type {
	if ir.IsBigInt(l) && ir.IsBigInt(r) {
		return ir.BigInt
	}
	if ir.IsNumber(l) && ir.IsNumber(r) {
		return numResult
	}
	if ir.CanBeBigInt(l) && ir.CanBeBigInt(r) {
		return ir.Union(numResult, ir.BigInt)
	}
	return numResult
}

// bitwiseResult is the ToInt32-coerced result shape shared by &, |, and ^:
// Int32, plus BigInt when both operands could be bigints. Unlike
// binaryArith it has no BigInt-only case: two BigInt operands still give
// Int32|BigInt.
func bitwiseResult(l, r ir.Type) ir.Type {
	if ir.CanBeBigInt(l) && ir.CanBeBigInt(r) {
		return ir.Union(ir.Int32, ir.BigInt)
	}
	return ir.Int32
}

// transferAdd implements JS's + operator, the one binary arithmetic operator
// whose result can be a String: ToPrimitive is applied to both operands
// first, and if either primitive can be a string, string concatenation wins
// over numeric addition. When neither operand's coercion can invoke user
// code (SideEffectFree) and neither can be a string, the result is knowably
// numeric; otherwise both the numeric and string outcomes stay live because
// a user-code callback invoked during coercion of the other operand could
// still steer the result either way.
func transferAdd(l, r ir.Type) ir.Type {
	if ir.IsString(l) || ir.IsString(r) {
		return ir.String
	}
	if ir.IsNumber(l) && ir.IsNumber(r) {
		return ir.Number
	}
	if ir.IsBigInt(l) && ir.IsBigInt(r) {
		return ir.BigInt
	}
	numeric := ir.Number
	if ir.CanBeBigInt(l) && ir.CanBeBigInt(r) {
		numeric = ir.Union(numeric, ir.BigInt)
	}
	if ir.SideEffectFree(l) && ir.SideEffectFree(r) && !ir.CanBeString(l) && !ir.CanBeString(r) {
		return numeric
	}
	return ir.Union(numeric, ir.String)
}

func (fp *functionPass) transferBinary(instr *ir.Instruction) ir.Type {
	switch instr.Kind {
	case ir.Eq, ir.Neq, ir.StrictEq, ir.StrictNeq, ir.Lt, ir.Lte, ir.Gt, ir.Gte, ir.In, ir.InstanceOf:
		return ir.Boolean
	}
	l := instr.Operands[0].Type()
	r := instr.Operands[1].Type()
	switch instr.Kind {
	case ir.Add:
		return transferAdd(l, r)
	case ir.Sub, ir.Mul, ir.Div, ir.Exp, ir.Shl, ir.Shr:
		return binaryArith(l, r, ir.Number)
	case ir.Mod:
		return binaryArith(l, r, ir.Int32)
	case ir.UShr:
		return ir.Uint32
	case ir.BitAnd, ir.BitOr, ir.BitXor:
		return bitwiseResult(l, r)
	}
	return ir.Any
}
