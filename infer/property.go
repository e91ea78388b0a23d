package infer

import "github.com/latticejs/tyinfer/ir"

// transferProperty resolves a LoadProperty's type purely from the call graph
// provider's receiver/store queries: an unknown receiver set, an unknown
// store set for any receiver, or an object literal that never owns the
// loaded property all widen the result to Any. A receiver whose known
// stores simply never write the property contributes nothing and the scan
// continues; only when no store across the whole receiver set contributed
// does the result fall back to Any.
func (fp *functionPass) transferProperty(instr *ir.Instruction) ir.Type {
	receivers := fp.provider.ReceiversOf(instr)
	if !receivers.Ok || receivers.Len() == 0 {
		fp.uniqueLoads[instr] = false
		return ir.Any
	}

	t := ir.NoType
	storeCount := 0
	escaped := false
	receivers.Each(func(alloc *ir.Instruction) {
		if escaped {
			return
		}
		if alloc.Kind == ir.AllocObjectLiteral && !instr.IsArrayElement && !ownsProperty(alloc, instr.Prop) {
			escaped = true
			return
		}
		stores := fp.provider.StoresOf(alloc)
		if !stores.Ok {
			escaped = true
			return
		}
		stores.Each(func(store *ir.Instruction) {
			if !storeMatchesProperty(store, instr) {
				return
			}
			t = ir.Union(t, store.Operands[0].Type())
			storeCount++
		})
	})
	if escaped || storeCount == 0 {
		fp.uniqueLoads[instr] = false
		return ir.Any
	}
	fp.uniqueLoads[instr] = storeCount == 1
	return t
}

// ownsProperty reports whether prop is in alloc's owned-property set: a
// StoreOwnProperty user of the allocation names it. A keyed store alone
// does not establish ownership on an object literal, so a load of a
// never-owned property stays at Any (the value may come from the prototype
// chain, which this pass does not model).
func ownsProperty(alloc *ir.Instruction, prop string) bool {
	for _, use := range alloc.Users {
		if use.Kind == ir.StoreOwnProperty && !use.IsArrayElement && use.Prop == prop {
			return true
		}
	}
	return false
}

// storeMatchesProperty reports whether store writes the same property instr
// (a LoadProperty) reads - same name for a keyed access, or both being array
// elements for an indexed one. This pass does not attempt to distinguish
// individual array indices, so any array-element store is a match for any
// array-element load of the same receiver.
func storeMatchesProperty(store, load *ir.Instruction) bool {
	if store.IsArrayElement != load.IsArrayElement {
		return false
	}
	if store.IsArrayElement {
		return true
	}
	return store.Prop == load.Prop
}
