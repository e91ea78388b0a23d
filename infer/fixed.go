package infer

import "github.com/latticejs/tyinfer/ir"

// transferFixed covers the instruction kinds whose InherentType (ir/instr.go)
// already pins their Type regardless of what this function returns - their
// case here exists only so transfer's dispatch switch is exhaustive, not
// because the returned value does any work. ThrowIfEmpty and PrLoad are the
// two exceptions that still need real logic.
func (fp *functionPass) transferFixed(instr *ir.Instruction) ir.Type {
	switch instr.Kind {
	case ir.ThrowIfEmpty:
		// Passes its operand's type through unchanged: a value flowing out
		// of a temporal-dead-zone check keeps whatever it already carries,
		// Empty included - this pass does not attempt to prove the throw is
		// unreachable and subtract Empty from the result.
		return instr.Operands[0].Type()
	case ir.PrLoad:
		return instr.CheckedType
	}
	if inherent, ok := instr.Kind.InherentType(); ok {
		return inherent
	}
	return ir.Any
}
