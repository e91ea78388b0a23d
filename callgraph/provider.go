package callgraph

import "github.com/latticejs/tyinfer/ir"

// NewProviderFactory indexes module once and returns a constructor matching
// the external interface this pass requires: "a construction function for a
// per-function call-graph provider given a Function". The index is shared
// read-only state; building it is O(|module|), not O(|module| * functions).
func NewProviderFactory(module *ir.Module) func(*ir.Function) Provider {
	idx := buildIndex(module)
	return func(f *ir.Function) Provider {
		return &functionProvider{idx: idx, f: f}
	}
}

type functionProvider struct {
	idx *index
	f   *ir.Function
}

func (p *functionProvider) CallsitesOf(f *ir.Function) Set[ir.Instruction] {
	return p.idx.callsitesOf(f)
}

func (p *functionProvider) CalleesOf(call *ir.Instruction) Set[ir.Function] {
	return p.idx.calleesOf(call)
}

func (p *functionProvider) ReceiversOf(load *ir.Instruction) Set[ir.Instruction] {
	return p.idx.receiversOf(load)
}

func (p *functionProvider) StoresOf(alloc *ir.Instruction) Set[ir.Instruction] {
	return p.idx.storesOf(alloc)
}

// index is the conservative, on-demand call graph: maps of closure-makers
// per function, allocation escape checks, and a scan over the whole module
// for stores/calls. Its precision is an implementation choice; infer only
// ever observes it through the Provider interface above.
type index struct {
	module *ir.Module

	// makers[F] is every CreateFunction instruction that could evaluate to
	// a closure over F. Bare *ir.Function operands are not recorded here;
	// they are tracked through escaped below.
	makers map[*ir.Function][]ir.Value

	// escaped[F] records that F is referenced somewhere other than as the
	// direct callee of a Call/Construct - passed as an argument, returned,
	// stored - so its callsite set cannot be enumerated completely.
	escaped map[*ir.Function]bool
}

func buildIndex(module *ir.Module) *index {
	idx := &index{
		module:  module,
		makers:  make(map[*ir.Function][]ir.Value),
		escaped: make(map[*ir.Function]bool),
	}
	for _, f := range module.Functions {
		for _, instr := range f.Instructions() {
			if instr.Kind == ir.CreateFunction && instr.Func != nil {
				idx.makers[instr.Func] = append(idx.makers[instr.Func], instr)
			}
			for opIdx, op := range instr.Operands {
				ref, isFunc := op.(*ir.Function)
				if !isFunc {
					continue
				}
				isCallee := (instr.Kind == ir.Call || instr.Kind == ir.Construct) && opIdx == 0
				if !isCallee {
					idx.escaped[ref] = true
				}
			}
		}
	}
	return idx
}

// resolveCallees chases a callee operand through simple forwarding
// (Mov/SpillMov/ImplicitMov and Phi, transitively) to the set of functions
// it could evaluate to. Any leaf that is not a resolvable closure-maker
// marks the whole chase unknown, exactly like the pass's own phi-leaf
// chase: a cycle or an unresolved leaf keeps the answer conservative rather
// than silently dropping a possibility.
func resolveCallees(v ir.Value, seen map[*ir.Instruction]bool, out map[*ir.Function]bool) (ok bool) {
	switch val := v.(type) {
	case *ir.Function:
		out[val] = true
		return true
	case *ir.Instruction:
		if val.Kind == ir.CreateFunction && val.Func != nil {
			out[val.Func] = true
			return true
		}
		switch val.Kind {
		case ir.Mov, ir.SpillMov, ir.ImplicitMov, ir.LoadConst:
			return resolveCallees(val.Operands[0], seen, out)
		case ir.Phi:
			if seen[val] {
				return true
			}
			seen[val] = true
			ok := true
			for _, e := range val.PhiEntries {
				if !resolveCallees(e.Value, seen, out) {
					ok = false
				}
			}
			return ok
		default:
			return false
		}
	default:
		return false
	}
}

func (idx *index) calleesOf(call *ir.Instruction) Set[ir.Function] {
	if len(call.Operands) == 0 {
		return Unknown[ir.Function]()
	}
	out := make(map[*ir.Function]bool)
	if !resolveCallees(call.Operands[0], make(map[*ir.Instruction]bool), out) {
		return Unknown[ir.Function]()
	}
	funcs := make([]*ir.Function, 0, len(out))
	for f := range out {
		funcs = append(funcs, f)
	}
	return KnownOf(funcs...)
}

// escapes reports whether any closure-maker of f is used somewhere other
// than directly as the callee of a Call/Construct - e.g. passed as an
// argument, stored, or returned. A conservative approximation: forwarding
// through Mov/Phi before the call is not chased here, only exact "called
// immediately" usages are recognized as non-escaping.
func (idx *index) escapes(f *ir.Function) bool {
	if idx.escaped[f] {
		return true
	}
	for _, maker := range idx.makers[f] {
		m, ok := maker.(*ir.Instruction)
		if !ok {
			return true
		}
		for _, use := range m.Users {
			if (use.Kind != ir.Call && use.Kind != ir.Construct) || len(use.Operands) == 0 || use.Operands[0] != ir.Value(m) {
				return true
			}
		}
	}
	return false
}

// callsitesOf scans the whole module for Call/Construct instructions whose
// resolved callee set includes f. A function with no CreateFunction maker
// may still be called directly by name (a bare *ir.Function operand), which
// the scan below picks up via calleesOf.
func (idx *index) callsitesOf(f *ir.Function) Set[ir.Instruction] {
	if idx.escapes(f) {
		return Unknown[ir.Instruction]()
	}
	var sites []*ir.Instruction
	for _, fn := range idx.module.Functions {
		for _, instr := range fn.Instructions() {
			if instr.Kind != ir.Call && instr.Kind != ir.Construct {
				continue
			}
			callees := idx.calleesOf(instr)
			if !callees.Ok {
				continue
			}
			found := false
			callees.Each(func(callee *ir.Function) {
				if callee == f {
					found = true
				}
			})
			if found {
				sites = append(sites, instr)
			}
		}
	}
	return KnownOf(sites...)
}

// resolveReceivers chases a property-access object operand to the set of
// allocation sites it could be, the same transitively-chased-Phi shape as
// resolveCallees.
func resolveReceivers(v ir.Value, seen map[*ir.Instruction]bool, out map[*ir.Instruction]bool) bool {
	instr, isInstr := v.(*ir.Instruction)
	if !isInstr {
		return false
	}
	switch instr.Kind {
	case ir.AllocObject, ir.AllocArray, ir.AllocObjectLiteral, ir.AllocObjectFromBuffer:
		out[instr] = true
		return true
	case ir.Mov, ir.SpillMov, ir.ImplicitMov:
		return resolveReceivers(instr.Operands[0], seen, out)
	case ir.Phi:
		if seen[instr] {
			return true
		}
		seen[instr] = true
		ok := true
		for _, e := range instr.PhiEntries {
			if !resolveReceivers(e.Value, seen, out) {
				ok = false
			}
		}
		return ok
	default:
		return false
	}
}

func (idx *index) receiversOf(load *ir.Instruction) Set[ir.Instruction] {
	if len(load.Operands) == 0 {
		return Unknown[ir.Instruction]()
	}
	// Array element receivers are intentionally never resolved: the
	// store-walker could union element stores index-insensitively, but
	// the imprecision that would introduce is left disabled until
	// revisited (see DESIGN.md, Open Question 2).
	out := make(map[*ir.Instruction]bool)
	if !resolveReceivers(load.Operands[0], make(map[*ir.Instruction]bool), out) {
		return Unknown[ir.Instruction]()
	}
	var receivers []*ir.Instruction
	for r := range out {
		if r.Kind == ir.AllocArray {
			return Unknown[ir.Instruction]()
		}
		receivers = append(receivers, r)
	}
	return KnownOf(receivers...)
}

// storesOf collects every property store that may write the object
// allocated at alloc, chasing the allocation through phi/mov aliases: a
// store through an alias names the alias as its Target, not the allocation
// itself, so the walk follows those forwarding users transitively.
func (idx *index) storesOf(alloc *ir.Instruction) Set[ir.Instruction] {
	var stores []*ir.Instruction
	seen := map[*ir.Instruction]bool{alloc: true}
	worklist := []*ir.Instruction{alloc}
	for len(worklist) > 0 {
		alias := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, use := range alias.Users {
			switch use.Kind {
			case ir.StoreOwnProperty, ir.StoreProperty:
				if use.Target != ir.Value(alias) {
					// alias is the stored value, not the receiver:
					// the object escapes into another object.
					return Unknown[ir.Instruction]()
				}
				stores = append(stores, use)
			case ir.LoadProperty:
				// reading a property does not widen the store set
			case ir.Phi, ir.Mov, ir.SpillMov, ir.ImplicitMov:
				if !seen[use] {
					seen[use] = true
					worklist = append(worklist, use)
				}
			default:
				// the receiver flows somewhere this provider cannot
				// enumerate (returned, passed to a call, stored into a
				// variable, ...): escape.
				return Unknown[ir.Instruction]()
			}
		}
	}
	return KnownOf(stores...)
}
