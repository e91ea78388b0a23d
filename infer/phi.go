package infer

import "github.com/latticejs/tyinfer/ir"

// inferPhi computes a phi's type as the union of every non-phi value
// reachable by transitively chasing through phi-to-phi operands. Phi alone
// is exempt from the "skip if any operand is still bottom" rule the rest of
// the fixpoint loop applies (engine.go, applyTransfer): a phi whose
// back-edge operand hasn't resolved yet still contributes whatever its
// other operands currently know, and the back edge's eventual resolution
// shows up as an ordinary type change in a later sweep - that's what lets a
// loop-carried phi converge instead of deadlocking on its own cycle.
func inferPhi(phi *ir.Instruction) ir.Type {
	leaves := chasePhiLeaves(phi, make(map[*ir.Instruction]bool))
	t := ir.NoType
	for _, leaf := range leaves {
		t = ir.Union(t, leaf.Type())
	}
	return t
}

func chasePhiLeaves(phi *ir.Instruction, seen map[*ir.Instruction]bool) []ir.Value {
	if seen[phi] {
		return nil
	}
	seen[phi] = true
	var leaves []ir.Value
	for _, entry := range phi.PhiEntries {
		if sub, ok := entry.Value.(*ir.Instruction); ok && sub.Kind == ir.Phi {
			leaves = append(leaves, chasePhiLeaves(sub, seen)...)
			continue
		}
		leaves = append(leaves, entry.Value)
	}
	return leaves
}
