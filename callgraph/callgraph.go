// Package callgraph answers the inter-procedural reachability questions the
// type-inference pass needs, with an explicit "unknown" sentinel standing in
// for escape: a result the provider cannot enumerate completely, so any
// answer must be treated as possible. Precision here is an implementation
// choice; correctness only requires that a returned set, when known, really
// is complete.
package callgraph

import (
	"github.com/latticejs/tyinfer/ir"
	"github.com/latticejs/tyinfer/util/hset"
)

// Set wraps an answer to one of Provider's queries: either a known, complete
// collection of *T, or "unknown" (Ok == false). The two are kept distinct
// because an empty set here legitimately means "definitely none", not
// "I don't know".
type Set[T any] struct {
	values hset.HSet[*T]
	Ok     bool
}

// Unknown is the escape-sentinel answer.
func Unknown[T any]() Set[T] { return Set[T]{} }

// KnownEmpty is the answer "definitely none", distinct from Unknown.
func KnownEmpty[T any]() Set[T] {
	return Set[T]{values: hset.Empty[*T](hset.Identity[*T]()), Ok: true}
}

// KnownOf builds a known, complete answer from elems.
func KnownOf[T any](elems ...*T) Set[T] {
	return Set[T]{values: hset.New(hset.Identity[*T](), elems...), Ok: true}
}

// Each calls yield for every element of a known set. Calling it on an
// unknown set is a caller bug (check Ok first); it is a no-op rather than a
// panic so a defensive caller degrades gracefully.
func (s Set[T]) Each(yield func(*T)) {
	if !s.Ok {
		return
	}
	for v := range s.values.All() {
		yield(v)
	}
}

// Slice returns the known elements in unspecified order, nil when unknown.
func (s Set[T]) Slice() []*T {
	if !s.Ok {
		return nil
	}
	return s.values.AsSlice()
}

// Len reports the number of known elements; 0 for both Unknown and
// KnownEmpty (callers that care about the distinction must check Ok).
func (s Set[T]) Len() int {
	if !s.Ok {
		return 0
	}
	return s.values.Len()
}

// Provider answers the four queries the pass needs, scoped to a single
// function's conservative call graph.
type Provider interface {
	// CallsitesOf returns every Call/Construct instruction, anywhere in
	// the module, that may invoke f.
	CallsitesOf(f *ir.Function) Set[ir.Instruction]

	// CalleesOf returns every Function call (a Call or Construct
	// instruction) may invoke.
	CalleesOf(call *ir.Instruction) Set[ir.Function]

	// ReceiversOf returns every allocation instruction whose object may
	// reach property-load instruction load.
	ReceiversOf(load *ir.Instruction) Set[ir.Instruction]

	// StoresOf returns every property-store instruction that may write
	// into the object allocated at alloc.
	StoresOf(alloc *ir.Instruction) Set[ir.Instruction]
}
