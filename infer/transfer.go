package infer

import (
	"github.com/latticejs/tyinfer/internal/diag"
	"github.com/latticejs/tyinfer/ir"
)

// transfer dispatches instr to its family's transfer function. Phi and
// anything without an output are handled by the engine directly and never
// reach here (engine.go, applyTransfer). A kind reaching the default case is
// a programmer error - a new InstrKind added to ir/instr.go without a home
// in one of the family files below - and is treated as an assertion
// failure, not a recoverable condition.
func (fp *functionPass) transfer(instr *ir.Instruction) ir.Type {
	switch instr.Kind {
	case ir.Void, ir.TypeOf, ir.Not, ir.Negate, ir.Inc, ir.Dec, ir.BitNot:
		return fp.transferUnary(instr)

	case ir.Eq, ir.Neq, ir.StrictEq, ir.StrictNeq, ir.Lt, ir.Lte, ir.Gt, ir.Gte, ir.In, ir.InstanceOf,
		ir.Sub, ir.Mul, ir.Div, ir.Exp, ir.Shl, ir.Shr, ir.Mod, ir.UShr, ir.BitAnd, ir.BitOr, ir.BitXor, ir.Add:
		return fp.transferBinary(instr)

	case ir.LoadStack, ir.AllocStack, ir.LoadFrame, ir.Mov, ir.SpillMov, ir.ImplicitMov, ir.LoadConst, ir.LoadParam:
		return fp.transferMemory(instr)

	case ir.LoadProperty:
		return fp.transferProperty(instr)

	case ir.Call, ir.Construct, ir.CallBuiltin, ir.CallIntrinsic:
		return fp.transferCall(instr)

	case ir.AllocObject, ir.AllocArray, ir.AllocObjectLiteral, ir.CreateRegExp, ir.CreateFunction,
		ir.CreateGenerator, ir.GetTemplateObject, ir.CreateArguments, ir.AllocObjectFromBuffer,
		ir.GetBuiltinClosure, ir.GetGlobalObject,
		ir.AddEmptyString, ir.AsNumber, ir.AsNumeric, ir.AsInt32, ir.CoerceThisNS,
		ir.CreateEnvironment, ir.ResolveEnvironment, ir.LoadFromEnvironment,
		ir.GetArgumentsLength, ir.GetArgumentsPropByVal, ir.DeleteProperty,
		ir.Catch, ir.GetNewTarget, ir.IteratorBegin, ir.IteratorNext, ir.IteratorClose,
		ir.ResumeGenerator, ir.TryLoadGlobalProperty, ir.ThrowIfEmpty, ir.PrLoad:
		return fp.transferFixed(instr)

	default:
		fault := diag.Newf(diag.UnhandledTransferFunction,
			"no transfer function registered for instruction kind %v in %s", instr.Kind, fp.f.Name)
		fp.logger.Error("invariant violated", "fault", diag.FormatWithCode(fault))
		panic(fault)
	}
}
