// Package ir is the fixed data model the type-inference pass consumes: a
// minimal but complete SSA-ish representation of a whole JavaScript program,
// built just well enough to exercise every operation infer.RunOnModule needs.
// The real lexer/parser/AST-to-IR lowering that would normally populate this
// model lives upstream of this module and is out of scope here; callers build
// an ir.Module directly (see cmd/scenarios.go for hand-built examples).
package ir

// Value is the common supertype of every entity that carries an inferred
// Type: instructions, parameters, variables, literals, and functions
// (referenced as first-class values, e.g. as a Call operand).
type Value interface {
	Type() Type
	isValue()
}

// Module is an ordered collection of functions. Iteration order over
// Functions is part of the pass's external contract: functions are visited
// in this order, exactly once per RunOnModule call.
type Module struct {
	Functions []*Function
}

// Function is a JS function: a scope of captured Variables, an ordered list
// of basic blocks, an ordered list of formal Parameters, and a ReturnType
// that the pass both reads (for recursive calls) and recomputes.
type Function struct {
	Name string

	Params    []*Parameter
	Variables []*Variable
	Blocks    []*BasicBlock

	ReturnType Type

	// IsGeneratorInnerFunc forces ReturnType to Any regardless of the
	// union of its Return operands: a generator's inner function's
	// apparent "return" is not its actual completion value once
	// resumption is taken into account.
	IsGeneratorInnerFunc bool
}

func (f *Function) Type() Type { return f.ReturnType }
func (*Function) isValue()     {}

// Instructions returns every instruction in the function, in block then
// program order - the order the infer package's per-function pass walks for
// each fixpoint iteration.
func (f *Function) Instructions() []*Instruction {
	var out []*Instruction
	for _, b := range f.Blocks {
		out = append(out, b.Instrs...)
	}
	return out
}

// BasicBlock is a straight-line sequence of instructions ending in a
// terminator, with explicit predecessor/successor edges for phi resolution.
type BasicBlock struct {
	Name    string
	Instrs  []*Instruction
	Preds   []*BasicBlock
	Succs   []*BasicBlock
	Func    *Function
}

// Parameter is a formal parameter of a Function.
type Parameter struct {
	Name  string
	Index int
	t     Type
}

func (p *Parameter) Type() Type     { return p.t }
func (p *Parameter) SetType(t Type) { p.t = t }
func (*Parameter) isValue()         {}

// Variable is a closure-captured slot, read via LoadFrame and written via
// StoreFrame. Unlike a stack slot it has no single defining instruction: its
// Type is recomputed every iteration as the union of all its stores.
type Variable struct {
	Name  string
	t     Type
	Users []*Instruction
}

// AddUser records that use reads or writes v.
func (v *Variable) AddUser(use *Instruction) {
	v.Users = append(v.Users, use)
}

func (v *Variable) Type() Type     { return v.t }
func (v *Variable) SetType(t Type) { v.t = t }
func (*Variable) isValue()         {}

// Literal wraps a compile-time constant. Its Type is fixed at construction
// and never mutated by the pass.
type Literal struct {
	t Type
	// Value is informational only (for diagnostics/printing); the pass
	// never inspects it.
	Value any
}

func NewLiteral(t Type, value any) *Literal { return &Literal{t: t, Value: value} }

func (l *Literal) Type() Type { return l.t }
func (*Literal) isValue()     {}

// UndefinedLiteral returns a fresh Literal of type Undefined, the type a
// parameter receives from a call that passes fewer arguments than the callee
// has parameters.
func UndefinedLiteral() *Literal { return NewLiteral(Undefined, nil) }
