package cmd

import "github.com/latticejs/tyinfer/ir"

// demoScenarios builds the hand-constructed IR modules this command runs the
// pass over, standing in for the AST-to-IR lowering this module does not
// implement. Each mirrors one illustrative JS snippet.
func demoScenarios() map[string]*ir.Module {
	return map[string]*ir.Module{
		"addconst":      addConstScenario(),
		"branchreturn":  branchReturnScenario(),
		"objectshape":   objectShapeScenario(),
		"idcalls":       idCallsScenario(),
		"sumloop":       sumLoopScenario(),
		"unknowncallee": unknownCalleeScenario(),
		"closurevar":    closureVarScenario(),
		"stackslot":     stackSlotScenario(),
	}
}

// addConstScenario: function f(){ return 1 + 2; }
func addConstScenario() *ir.Module {
	f := ir.NewFunction("f")
	entry := f.NewBlock("entry")

	one := ir.NewLiteral(ir.Number, 1)
	two := ir.NewLiteral(ir.Number, 2)
	sum := ir.NewInstr(ir.Add, one, two)
	sum.Name = "sum"
	entry.Emit(sum)

	ret := ir.NewInstr(ir.Return, sum)
	entry.Emit(ret)

	return &ir.Module{Functions: []*ir.Function{f}}
}

// branchReturnScenario: function f(x){ if (x) return "a"; else return 3; }
// with a single known caller passing a Boolean.
func branchReturnScenario() *ir.Module {
	f := ir.NewFunction("f", "x")
	entry := f.NewBlock("entry")
	thenBlock := f.NewBlock("then")
	elseBlock := f.NewBlock("else")

	branch := ir.NewInstr(ir.Terminator, f.Params[0])
	entry.Emit(branch)
	ir.Connect(entry, thenBlock)
	ir.Connect(entry, elseBlock)

	strLit := ir.NewLiteral(ir.String, "a")
	thenRet := ir.NewInstr(ir.Return, strLit)
	thenBlock.Emit(thenRet)

	numLit := ir.NewLiteral(ir.Number, 3)
	elseRet := ir.NewInstr(ir.Return, numLit)
	elseBlock.Emit(elseRet)

	caller := ir.NewFunction("caller")
	callerEntry := caller.NewBlock("entry")
	boolArg := ir.NewLiteral(ir.Boolean, true)
	call := ir.NewInstr(ir.Call, f, boolArg)
	call.Name = "callResult"
	callerEntry.Emit(call)
	callerRet := ir.NewInstr(ir.Return, call)
	callerEntry.Emit(callerRet)

	return &ir.Module{Functions: []*ir.Function{f, caller}}
}

// objectShapeScenario: let o = { k: 7 }; o.k, plus a second function
// demonstrating the same shape after a later reassignment o.k = "s" widens
// the load to union(Number, String).
func objectShapeScenario() *ir.Module {
	singleStore := ir.NewFunction("shapeSingleStore")
	block := singleStore.NewBlock("entry")
	obj := ir.NewInstr(ir.AllocObjectLiteral)
	obj.Name = "o"
	block.Emit(obj)
	init := ir.NewInstr(ir.StoreOwnProperty, ir.NewLiteral(ir.Number, 7))
	init.Prop = "k"
	init.Target = obj
	block.Emit(init)
	load := ir.NewInstr(ir.LoadProperty, obj)
	load.Prop = "k"
	load.Name = "k0"
	block.Emit(load)
	ret := ir.NewInstr(ir.Return, load)
	block.Emit(ret)

	reassigned := ir.NewFunction("shapeReassigned")
	rBlock := reassigned.NewBlock("entry")
	rObj := ir.NewInstr(ir.AllocObjectLiteral)
	rObj.Name = "o"
	rBlock.Emit(rObj)
	rInit := ir.NewInstr(ir.StoreOwnProperty, ir.NewLiteral(ir.Number, 7))
	rInit.Prop = "k"
	rInit.Target = rObj
	rBlock.Emit(rInit)
	rReassign := ir.NewInstr(ir.StoreProperty, ir.NewLiteral(ir.String, "s"))
	rReassign.Prop = "k"
	rReassign.Target = rObj
	rBlock.Emit(rReassign)
	rLoad := ir.NewInstr(ir.LoadProperty, rObj)
	rLoad.Prop = "k"
	rLoad.Name = "k1"
	rBlock.Emit(rLoad)
	rRet := ir.NewInstr(ir.Return, rLoad)
	rBlock.Emit(rRet)

	return &ir.Module{Functions: []*ir.Function{singleStore, reassigned}}
}

// idCallsScenario: function id(x){return x;} called as id(1) and id("s").
func idCallsScenario() *ir.Module {
	id := ir.NewFunction("id", "x")
	idEntry := id.NewBlock("entry")
	idRet := ir.NewInstr(ir.Return, id.Params[0])
	idEntry.Emit(idRet)

	caller := ir.NewFunction("caller")
	callerEntry := caller.NewBlock("entry")

	call1 := ir.NewInstr(ir.Call, id, ir.NewLiteral(ir.Number, 1))
	call1.Name = "r1"
	callerEntry.Emit(call1)

	call2 := ir.NewInstr(ir.Call, id, ir.NewLiteral(ir.String, "s"))
	call2.Name = "r2"
	callerEntry.Emit(call2)

	callerRet := ir.NewInstr(ir.Return)
	callerEntry.Emit(callerRet)

	return &ir.Module{Functions: []*ir.Function{id, caller}}
}

// sumLoopScenario: let s = 0; for (...) s = s + 1; - a phi carrying a
// back-edge through its own arithmetic use, converging to Number despite
// its back-edge operand (sNext) still being unresolved during the first
// fixpoint iteration.
func sumLoopScenario() *ir.Module {
	f := ir.NewFunction("sumloop")
	entry := f.NewBlock("entry")
	loop := f.NewBlock("loop")
	exit := f.NewBlock("exit")
	ir.Connect(entry, loop)
	ir.Connect(loop, loop)
	ir.Connect(loop, exit)

	zero := ir.NewLiteral(ir.Number, 0)

	phi := ir.NewInstr(ir.Phi)
	phi.Name = "s"
	loop.Emit(phi)

	one := ir.NewLiteral(ir.Number, 1)
	next := ir.NewInstr(ir.Add, phi, one)
	next.Name = "sNext"
	loop.Emit(next)

	phi.SetPhiEntries(
		ir.PhiEntry{Value: zero, Pred: entry},
		ir.PhiEntry{Value: next, Pred: loop},
	)

	loopTerm := ir.NewInstr(ir.Terminator)
	loop.Emit(loopTerm)

	ret := ir.NewInstr(ir.Return, phi)
	exit.Emit(ret)

	return &ir.Module{Functions: []*ir.Function{f}}
}

// closureVarScenario: let v = 1; v = "s"; return v; - a closure-captured
// variable whose type is the union of its frame stores, observed through a
// frame load.
func closureVarScenario() *ir.Module {
	f := ir.NewFunction("closureVar")
	v := f.NewVariable("v")
	entry := f.NewBlock("entry")

	init := ir.NewInstr(ir.StoreFrame, ir.NewLiteral(ir.Number, 1))
	init.Target = v
	entry.Emit(init)

	reassign := ir.NewInstr(ir.StoreFrame, ir.NewLiteral(ir.String, "s"))
	reassign.Target = v
	entry.Emit(reassign)

	load := ir.NewInstr(ir.LoadFrame)
	load.Target = v
	load.Name = "v0"
	entry.Emit(load)

	ret := ir.NewInstr(ir.Return, load)
	entry.Emit(ret)

	return &ir.Module{Functions: []*ir.Function{f}}
}

// stackSlotScenario: an alloca-like stack slot written with a Number and a
// BigInt, read back through a load and forwarded through a mov.
func stackSlotScenario() *ir.Module {
	f := ir.NewFunction("stackSlot")
	entry := f.NewBlock("entry")

	slot := ir.NewInstr(ir.AllocStack)
	slot.Name = "slot"
	entry.Emit(slot)

	st1 := ir.NewInstr(ir.StoreStack, ir.NewLiteral(ir.Number, 1))
	st1.Target = slot
	entry.Emit(st1)

	st2 := ir.NewInstr(ir.StoreStack, ir.NewLiteral(ir.BigInt, "1n"))
	st2.Target = slot
	entry.Emit(st2)

	load := ir.NewInstr(ir.LoadStack)
	load.Target = slot
	load.Name = "loaded"
	entry.Emit(load)

	mov := ir.NewInstr(ir.Mov, load)
	mov.Name = "fwd"
	entry.Emit(mov)

	ret := ir.NewInstr(ir.Return, mov)
	entry.Emit(ret)

	return &ir.Module{Functions: []*ir.Function{f}}
}

// unknownCalleeScenario: a call through an unresolved identifier, added to
// another unresolved value. The second addend is itself dynamically typed
// (rather than a numeric literal) so the demo actually exercises the
// canBeBigInt(L) ∧ canBeBigInt(R) branch of the Add transfer function: a
// known Number literal on the right would never satisfy that conjunction, so
// this scenario would otherwise understate what the pass can widen to.
func unknownCalleeScenario() *ir.Module {
	f := ir.NewFunction("unknownCallee")
	entry := f.NewBlock("entry")

	global := ir.NewInstr(ir.LoadFromEnvironment)
	global.Name = "g"
	entry.Emit(global)

	call := ir.NewInstr(ir.Call, global)
	call.Name = "callResult"
	entry.Emit(call)

	other := ir.NewInstr(ir.TryLoadGlobalProperty)
	other.Name = "other"
	entry.Emit(other)

	sum := ir.NewInstr(ir.Add, call, other)
	sum.Name = "sum"
	entry.Emit(sum)

	ret := ir.NewInstr(ir.Return, sum)
	entry.Emit(ret)

	return &ir.Module{Functions: []*ir.Function{f}}
}
