package infer

import "github.com/latticejs/tyinfer/ir"

// transferCall resolves Call/Construct to the union of every statically
// known callee's return type, and CallBuiltin/CallIntrinsic to Any - this
// pass carries no builtin signature table, so a builtin or VM intrinsic call
// is always treated as able to return anything.
func (fp *functionPass) transferCall(instr *ir.Instruction) ir.Type {
	switch instr.Kind {
	case ir.CallBuiltin, ir.CallIntrinsic:
		return ir.Any
	}

	callees := fp.provider.CalleesOf(instr)
	if !callees.Ok || callees.Len() == 0 {
		return ir.Any
	}
	t := ir.NoType
	callees.Each(func(callee *ir.Function) {
		t = ir.Union(t, callee.ReturnType)
	})
	return t
}
