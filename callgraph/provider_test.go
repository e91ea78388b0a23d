package callgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticejs/tyinfer/callgraph"
	"github.com/latticejs/tyinfer/ir"
)

// buildDirectCallModule builds: function callee(x){ return x; }
// function caller(){ return callee(1); }
// with callee referenced directly (not via a CreateFunction closure), which
// is the simplest case the provider must resolve without any escape.
func buildDirectCallModule() (module *ir.Module, callee, caller *ir.Function, call *ir.Instruction) {
	callee = ir.NewFunction("callee", "x")
	calleeEntry := callee.NewBlock("entry")
	calleeEntry.Emit(ir.NewInstr(ir.Return, callee.Params[0]))

	caller = ir.NewFunction("caller")
	callerEntry := caller.NewBlock("entry")
	call = ir.NewInstr(ir.Call, callee, ir.NewLiteral(ir.Number, 1))
	callerEntry.Emit(call)
	callerEntry.Emit(ir.NewInstr(ir.Return, call))

	module = &ir.Module{Functions: []*ir.Function{callee, caller}}
	return
}

func TestCallsitesAndCalleesKnown(t *testing.T) {
	module, callee, _, call := buildDirectCallModule()
	factory := callgraph.NewProviderFactory(module)
	provider := factory(callee)

	callees := provider.CalleesOf(call)
	require.True(t, callees.Ok)
	assert.Equal(t, []*ir.Function{callee}, callees.Slice())

	sites := provider.CallsitesOf(callee)
	require.True(t, sites.Ok)
	assert.Equal(t, []*ir.Instruction{call}, sites.Slice())
}

// A call whose callee operand is loaded from the environment (an unresolved
// global) must report CalleesOf as unknown.
func TestCalleesUnknownThroughEscape(t *testing.T) {
	f := ir.NewFunction("f")
	entry := f.NewBlock("entry")
	global := ir.NewInstr(ir.LoadFromEnvironment)
	entry.Emit(global)
	call := ir.NewInstr(ir.Call, global)
	entry.Emit(call)

	module := &ir.Module{Functions: []*ir.Function{f}}
	provider := callgraph.NewProviderFactory(module)(f)

	callees := provider.CalleesOf(call)
	assert.False(t, callees.Ok)
}

// Callsites of a function that is passed somewhere other than directly as a
// callee (here, returned) must be unknown, since the provider cannot
// enumerate every place the closure may end up being invoked.
func TestCallsitesUnknownWhenFunctionEscapes(t *testing.T) {
	inner := ir.NewFunction("inner")
	innerEntry := inner.NewBlock("entry")
	innerEntry.Emit(ir.NewInstr(ir.Return))

	outer := ir.NewFunction("outer")
	outerEntry := outer.NewBlock("entry")
	maker := ir.NewInstr(ir.CreateFunction)
	maker.Func = inner
	outerEntry.Emit(maker)
	outerEntry.Emit(ir.NewInstr(ir.Return, maker))

	module := &ir.Module{Functions: []*ir.Function{inner, outer}}
	provider := callgraph.NewProviderFactory(module)(inner)

	sites := provider.CallsitesOf(inner)
	assert.False(t, sites.Ok)
}

// A function referenced as a call argument (rather than as the callee)
// escapes: some unknown code may invoke it, so its callsite set is
// unknowable even though the reference never goes through a closure maker.
func TestCallsitesUnknownWhenPassedAsArgument(t *testing.T) {
	callee := ir.NewFunction("callee")
	calleeEntry := callee.NewBlock("entry")
	calleeEntry.Emit(ir.NewInstr(ir.Return))

	f := ir.NewFunction("f")
	entry := f.NewBlock("entry")
	sink := ir.NewInstr(ir.LoadFromEnvironment)
	entry.Emit(sink)
	call := ir.NewInstr(ir.Call, sink, callee)
	entry.Emit(call)

	module := &ir.Module{Functions: []*ir.Function{callee, f}}
	provider := callgraph.NewProviderFactory(module)(callee)

	assert.False(t, provider.CallsitesOf(callee).Ok)
}

// A property load directly on an object literal has that allocation as its
// only receiver, and the allocation's store set is its one own-property
// store. (The resulting load type and unique-store count are checked in
// package infer.)
func TestReceiversAndStoresOfObjectLiteral(t *testing.T) {
	f := ir.NewFunction("f")
	entry := f.NewBlock("entry")
	obj := ir.NewInstr(ir.AllocObjectLiteral)
	entry.Emit(obj)
	store := ir.NewInstr(ir.StoreOwnProperty, ir.NewLiteral(ir.Number, 7))
	store.Prop = "k"
	store.Target = obj
	entry.Emit(store)
	load := ir.NewInstr(ir.LoadProperty, obj)
	load.Prop = "k"
	entry.Emit(load)

	module := &ir.Module{Functions: []*ir.Function{f}}
	provider := callgraph.NewProviderFactory(module)(f)

	receivers := provider.ReceiversOf(load)
	require.True(t, receivers.Ok)
	assert.Equal(t, 1, receivers.Len())

	require.Equal(t, []*ir.Instruction{obj}, receivers.Slice())

	stores := provider.StoresOf(obj)
	require.True(t, stores.Ok)
	assert.Equal(t, 1, stores.Len())
}

// An array allocation is never a known receiver, per the open question 2
// decision in DESIGN.md: array element inference is intentionally disabled.
func TestReceiversOfArrayAlwaysUnknown(t *testing.T) {
	f := ir.NewFunction("f")
	entry := f.NewBlock("entry")
	arr := ir.NewInstr(ir.AllocArray)
	entry.Emit(arr)
	load := ir.NewInstr(ir.LoadProperty, arr)
	load.IsArrayElement = true
	entry.Emit(load)

	module := &ir.Module{Functions: []*ir.Function{f}}
	provider := callgraph.NewProviderFactory(module)(f)

	assert.False(t, provider.ReceiversOf(load).Ok)
}

// StoresOf must escape to unknown when the receiver flows somewhere the
// provider cannot enumerate (here, returned).
func TestStoresOfUnknownWhenReceiverEscapes(t *testing.T) {
	f := ir.NewFunction("f")
	entry := f.NewBlock("entry")
	obj := ir.NewInstr(ir.AllocObjectLiteral)
	entry.Emit(obj)
	entry.Emit(ir.NewInstr(ir.Return, obj))

	module := &ir.Module{Functions: []*ir.Function{f}}
	provider := callgraph.NewProviderFactory(module)(f)

	assert.False(t, provider.StoresOf(obj).Ok)
}
