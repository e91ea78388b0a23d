// Package infer implements the per-function fixpoint engine and the
// instruction transfer functions that make up the type-inference pass: a
// conservative, monotone, inter-procedural dataflow analysis over an
// already-built SSA IR that narrows (never widens) the inferred JavaScript
// type of every instruction result, local variable, function return value,
// and formal parameter.
package infer

import (
	"log/slog"

	"github.com/latticejs/tyinfer/callgraph"
	"github.com/latticejs/tyinfer/internal/diag"
	"github.com/latticejs/tyinfer/internal/log"
	"github.com/latticejs/tyinfer/ir"
)

// ProviderFactory builds a call-graph provider scoped to a function, per
// this pass's external interface contract.
type ProviderFactory func(*ir.Function) callgraph.Provider

// RunOnModule runs the pass over every function of module, in module order,
// using log.DefaultLogger as the diagnostic sink. It returns whether any
// instruction, parameter, variable or return type ended the pass different
// from its pre-pass type; a rerun over an already-inferred module returns
// false.
func RunOnModule(module *ir.Module, providers ProviderFactory) bool {
	changed, _ := RunOnModuleWithStats(module, providers, log.DefaultLogger)
	return changed
}

// RunOnModuleWithStats is RunOnModule plus the two counters this pass exposes: total
// instructions whose type changed, and property loads resolved to a unique
// contributing store.
func RunOnModuleWithStats(module *ir.Module, providers ProviderFactory, logger *slog.Logger) (bool, Stats) {
	if logger == nil {
		logger = log.DefaultLogger
	}
	var total Stats
	anyChanged := false
	for _, f := range module.Functions {
		provider := providers(f)
		fp := &functionPass{f: f, provider: provider, logger: logger.With("section", "infer")}
		changed := fp.run()
		anyChanged = anyChanged || changed
		total.merge(fp.stats)
	}
	return anyChanged, total
}

// functionPass holds the mutable state of a single function's fixpoint run:
// the pre-pass snapshot to narrow back down to, and the stats accumulated
// along the way.
type functionPass struct {
	f        *ir.Function
	provider callgraph.Provider
	logger   *slog.Logger
	stats    Stats
	snap     *snapshot

	// uniqueLoads tracks, per LoadProperty, whether its latest evaluation
	// resolved to exactly one contributing store. Keyed by instruction (not
	// a bare counter) because the fixpoint loop re-evaluates every load
	// once per sweep and a later sweep can widen an earlier verdict.
	uniqueLoads map[*ir.Instruction]bool
}

func (fp *functionPass) run() bool {
	fp.uniqueLoads = make(map[*ir.Instruction]bool)
	fp.step1SnapshotAndClear()
	fp.step2SeedParameters()
	fp.step3Fixpoint()
	changed := fp.step4NarrowToPrePass()
	fp.step5Validate()
	for _, unique := range fp.uniqueLoads {
		if unique {
			fp.stats.UniqueStoreLoads++
		}
	}
	fp.logger.Debug("function pass complete",
		"func", fp.f.Name,
		"instructionsChanged", fp.stats.InstructionsChanged,
		"uniqueStoreLoads", fp.stats.UniqueStoreLoads,
	)
	return changed
}

func (fp *functionPass) step1SnapshotAndClear() {
	fp.snap = takeSnapshot(fp.f)
	for _, instr := range fp.f.Instructions() {
		if inherent, ok := instr.Kind.InherentType(); ok {
			instr.SetType(inherent)
		} else {
			instr.SetType(ir.NoType)
		}
	}
	for _, p := range fp.f.Params {
		p.SetType(ir.NoType)
	}
	for _, v := range fp.f.Variables {
		v.SetType(ir.NoType)
	}
	fp.f.ReturnType = ir.NoType
}

func (fp *functionPass) step2SeedParameters() {
	sites := fp.provider.CallsitesOf(fp.f)
	if !sites.Ok || sites.Len() == 0 {
		for _, p := range fp.f.Params {
			p.SetType(ir.Any)
		}
		return
	}
	argUnion := make([]ir.Type, len(fp.f.Params))
	sites.Each(func(call *ir.Instruction) {
		for i := range fp.f.Params {
			argUnion[i] = ir.Union(argUnion[i], argTypeAt(call, i))
		}
	})
	for i, p := range fp.f.Params {
		p.SetType(argUnion[i])
	}
}

// argTypeAt returns the Type of the (i+1)-th operand of a call/construct
// instruction (operand 0 is the callee), or Undefined when the call passes
// fewer than i+1 arguments.
func argTypeAt(call *ir.Instruction, i int) ir.Type {
	argIdx := i + 1
	if argIdx >= len(call.Operands) {
		return ir.Undefined
	}
	return call.Operands[argIdx].Type()
}

func (fp *functionPass) step3Fixpoint() {
	for {
		changed := false
		for _, instr := range fp.f.Instructions() {
			if fp.applyTransfer(instr) {
				changed = true
			}
		}
		if fp.recomputeReturnType() {
			changed = true
		}
		if fp.recomputeVariables() {
			changed = true
		}
		if !changed {
			return
		}
	}
}

// applyTransfer dispatches instr's transfer function and reports whether its
// Type changed. Phi is exempt from the "skip if any operand is bottom" rule;
// every other instruction with an unresolved (NoType) operand is
// left alone this sweep rather than computed from incomplete information -
// it will be revisited once its operands stop being bottom, in a later
// sweep, which this engine's value-comparison change tracking (rather than a
// separate "needs another round" flag) already guarantees terminates.
func (fp *functionPass) applyTransfer(instr *ir.Instruction) bool {
	if !instr.HasOutput() {
		return false
	}
	old := instr.Type()
	var newT ir.Type
	if instr.Kind == ir.Phi {
		newT = inferPhi(instr)
	} else {
		for _, op := range instr.Operands {
			if ir.IsNoType(op.Type()) {
				return false
			}
		}
		newT = fp.transfer(instr)
	}
	instr.SetType(newT)
	return instr.Type() != old
}

func (fp *functionPass) recomputeReturnType() bool {
	old := fp.f.ReturnType
	if fp.f.IsGeneratorInnerFunc {
		fp.f.ReturnType = ir.Any
		return fp.f.ReturnType != old
	}
	t := ir.NoType
	for _, instr := range fp.f.Instructions() {
		if instr.Kind != ir.Return {
			continue
		}
		if len(instr.Operands) == 0 {
			t = ir.Union(t, ir.Undefined)
			continue
		}
		t = ir.Union(t, instr.Operands[0].Type())
	}
	fp.f.ReturnType = t
	return t != old
}

func (fp *functionPass) recomputeVariables() bool {
	changed := false
	for _, v := range fp.f.Variables {
		old := v.Type()
		t, escapes := memLocType(v.Users, ir.StoreFrame, ir.LoadFrame)
		if escapes {
			t = ir.Any
		}
		v.SetType(t)
		if v.Type() != old {
			changed = true
		}
	}
	return changed
}

func (fp *functionPass) step4NarrowToPrePass() bool {
	changed := false
	for _, instr := range fp.f.Instructions() {
		narrowed := ir.Intersect(fp.snap.of(instr), instr.Type())
		instr.SetType(narrowed)
		if instr.Type() != fp.snap.of(instr) {
			fp.stats.InstructionsChanged++
			changed = true
		}
	}
	for _, p := range fp.f.Params {
		p.SetType(ir.Intersect(fp.snap.of(p), p.Type()))
		if p.Type() != fp.snap.of(p) {
			changed = true
		}
	}
	for _, v := range fp.f.Variables {
		v.SetType(ir.Intersect(fp.snap.of(v), v.Type()))
		if v.Type() != fp.snap.of(v) {
			changed = true
		}
	}
	fp.f.ReturnType = ir.Intersect(fp.snap.ret, fp.f.ReturnType)
	if fp.f.ReturnType != fp.snap.ret {
		changed = true
	}
	return changed
}

func (fp *functionPass) step5Validate() {
	for _, instr := range fp.f.Instructions() {
		hasType := !ir.IsNoType(instr.Type())
		if hasType != instr.HasOutput() {
			fault := diag.Newf(diag.OutputDisciplineViolated,
				"instruction %v (kind %v) in %s: hasOutput=%v but type=%v",
				instr.Name, instr.Kind, fp.f.Name, instr.HasOutput(), instr.Type())
			fp.logger.Error("invariant violated", "fault", diag.FormatWithCode(fault))
			panic(fault)
		}
	}
}
