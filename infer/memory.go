package infer

import "github.com/latticejs/tyinfer/ir"

// memLocType is the shared logic behind every addressable memory location
// this pass tracks (an AllocStack slot, or - via recomputeVariables in
// engine.go - a closure Variable): union the operand type of every store
// that writes the location, treating any writer this pass doesn't
// specifically recognize as a full escape to Any, since an unrecognized
// write could stash anything into the slot.
func memLocType(users []*ir.Instruction, storeKind ir.InstrKind, loadKind ir.InstrKind) (t ir.Type, escapes bool) {
	t = ir.NoType
	for _, use := range users {
		switch use.Kind {
		case loadKind:
			// reads do not contribute to the location's type
		case storeKind:
			t = ir.Union(t, use.Operands[0].Type())
		default:
			escapes = true
		}
	}
	return t, escapes
}

func (fp *functionPass) transferMemory(instr *ir.Instruction) ir.Type {
	switch instr.Kind {
	case ir.LoadStack:
		if target, ok := instr.Target.(*ir.Instruction); ok {
			return fp.allocStackType(target)
		}
		return ir.Any
	case ir.LoadFrame:
		return instr.Target.Type()
	case ir.Mov, ir.SpillMov, ir.ImplicitMov:
		return instr.Operands[0].Type()
	case ir.LoadConst:
		return instr.Operands[0].Type()
	case ir.LoadParam:
		return instr.Param.Type()
	case ir.AllocStack:
		return fp.allocStackType(instr)
	}
	return ir.Any
}

// allocStackType computes an AllocStack slot's Type from the operands of
// every StoreStack instruction that writes it; a slot with no users at all
// is unconstrained (Any), and any user kind besides LoadStack/StoreStack
// makes the slot escape.
func (fp *functionPass) allocStackType(alloc *ir.Instruction) ir.Type {
	if len(alloc.Users) == 0 {
		return ir.Any
	}
	t, escapes := memLocType(alloc.Users, ir.StoreStack, ir.LoadStack)
	if escapes {
		return ir.Any
	}
	return t
}
