package ir

// InstrKind enumerates every instruction family the transfer functions in
// package infer must handle. A new kind added here without a matching case
// in infer's dispatch switch panics mid-pass (see infer/transfer.go).
type InstrKind int

const (
	// Unary operators (infer/unary.go)
	Void InstrKind = iota
	TypeOf
	Not
	Negate
	Inc
	Dec
	BitNot

	// Binary comparisons (always Bool, infer/binary.go)
	Eq
	Neq
	StrictEq
	StrictNeq
	Lt
	Lte
	Gt
	Gte
	In
	InstanceOf

	// Binary arithmetic (infer/binary.go)
	Sub
	Mul
	Div
	Exp
	Shl
	Shr
	Mod
	UShr
	BitAnd
	BitOr
	BitXor
	Add

	// Memory and control (infer/memory.go)
	LoadStack
	StoreStack
	AllocStack
	LoadFrame
	StoreFrame
	Mov
	SpillMov
	ImplicitMov
	LoadConst
	LoadParam
	Phi
	Terminator // Branch/Jump/Return/Throw/Switch etc, no output

	Return

	// Property access (infer/property.go)
	LoadProperty
	StoreOwnProperty
	StoreProperty // keyed or computed property store, not establishing ownership

	// Calls (infer/calls.go)
	Call
	Construct
	CallBuiltin
	CallIntrinsic

	// Fixed/inherent-typed instructions (infer/fixed.go)
	AllocObject
	AllocArray
	AllocObjectLiteral
	CreateRegExp
	CreateFunction
	CreateGenerator
	GetTemplateObject
	CreateArguments
	AllocObjectFromBuffer
	GetBuiltinClosure
	GetGlobalObject

	AddEmptyString
	AsNumber
	AsNumeric
	AsInt32
	CoerceThisNS

	CreateEnvironment
	ResolveEnvironment
	LoadFromEnvironment

	GetArgumentsLength
	GetArgumentsPropByVal

	DeleteProperty

	Catch
	GetNewTarget
	IteratorBegin
	IteratorNext
	IteratorClose
	ResumeGenerator
	TryLoadGlobalProperty

	ThrowIfEmpty

	PrLoad
)

var instrKindNames = [...]string{
	Void: "Void", TypeOf: "TypeOf", Not: "Not", Negate: "Negate", Inc: "Inc", Dec: "Dec", BitNot: "BitNot",
	Eq: "Eq", Neq: "Neq", StrictEq: "StrictEq", StrictNeq: "StrictNeq", Lt: "Lt", Lte: "Lte", Gt: "Gt", Gte: "Gte",
	In: "In", InstanceOf: "InstanceOf",
	Sub: "Sub", Mul: "Mul", Div: "Div", Exp: "Exp", Shl: "Shl", Shr: "Shr", Mod: "Mod", UShr: "UShr",
	BitAnd: "BitAnd", BitOr: "BitOr", BitXor: "BitXor", Add: "Add",
	LoadStack: "LoadStack", StoreStack: "StoreStack", AllocStack: "AllocStack",
	LoadFrame: "LoadFrame", StoreFrame: "StoreFrame",
	Mov: "Mov", SpillMov: "SpillMov", ImplicitMov: "ImplicitMov", LoadConst: "LoadConst", LoadParam: "LoadParam",
	Phi: "Phi", Terminator: "Terminator", Return: "Return",
	LoadProperty: "LoadProperty", StoreOwnProperty: "StoreOwnProperty", StoreProperty: "StoreProperty",
	Call: "Call", Construct: "Construct", CallBuiltin: "CallBuiltin", CallIntrinsic: "CallIntrinsic",
	AllocObject: "AllocObject", AllocArray: "AllocArray", AllocObjectLiteral: "AllocObjectLiteral",
	CreateRegExp: "CreateRegExp", CreateFunction: "CreateFunction", CreateGenerator: "CreateGenerator",
	GetTemplateObject: "GetTemplateObject", CreateArguments: "CreateArguments",
	AllocObjectFromBuffer: "AllocObjectFromBuffer", GetBuiltinClosure: "GetBuiltinClosure",
	GetGlobalObject: "GetGlobalObject",
	AddEmptyString: "AddEmptyString", AsNumber: "AsNumber", AsNumeric: "AsNumeric", AsInt32: "AsInt32",
	CoerceThisNS: "CoerceThisNS",
	CreateEnvironment: "CreateEnvironment", ResolveEnvironment: "ResolveEnvironment",
	LoadFromEnvironment: "LoadFromEnvironment",
	GetArgumentsLength: "GetArgumentsLength", GetArgumentsPropByVal: "GetArgumentsPropByVal",
	DeleteProperty: "DeleteProperty",
	Catch: "Catch", GetNewTarget: "GetNewTarget", IteratorBegin: "IteratorBegin", IteratorNext: "IteratorNext",
	IteratorClose: "IteratorClose", ResumeGenerator: "ResumeGenerator", TryLoadGlobalProperty: "TryLoadGlobalProperty",
	ThrowIfEmpty: "ThrowIfEmpty",
	PrLoad:       "PrLoad",
}

func (k InstrKind) String() string {
	if int(k) >= 0 && int(k) < len(instrKindNames) && instrKindNames[k] != "" {
		return instrKindNames[k]
	}
	return "invalid"
}

// hasOutput reports whether instructions of this kind are expected to end
// the pass with a non-NoType Type. Store*, terminators, and
// control instructions have no output.
func (k InstrKind) hasOutput() bool {
	switch k {
	case StoreStack, StoreFrame, StoreOwnProperty, StoreProperty, Terminator, Return:
		return false
	default:
		return true
	}
}

// InherentType reports the fixed Type instructions of this kind always carry,
// independent of their operands. The second return is false
// for every kind whose Type is instead computed from its operands.
func (k InstrKind) InherentType() (Type, bool) {
	switch k {
	case AllocObject, AllocArray, AllocObjectLiteral, CreateRegExp, CreateFunction,
		CreateGenerator, GetTemplateObject, CreateArguments, AllocObjectFromBuffer,
		GetBuiltinClosure, GetGlobalObject, CoerceThisNS:
		return Object, true
	case AddEmptyString:
		return String, true
	case AsNumber:
		return Number, true
	case AsNumeric:
		return Number | BigInt, true
	case AsInt32:
		return Int32, true
	case CreateEnvironment, ResolveEnvironment:
		return Environment, true
	case GetArgumentsLength:
		return Number, true
	case DeleteProperty:
		return Boolean, true
	case GetArgumentsPropByVal, Catch, GetNewTarget, IteratorBegin, IteratorNext,
		IteratorClose, ResumeGenerator, TryLoadGlobalProperty, LoadFromEnvironment:
		return Any, true
	case Eq, Neq, StrictEq, StrictNeq, Lt, Lte, Gt, Gte, In, InstanceOf:
		return Boolean, true
	case TypeOf:
		return String, true
	case Not:
		return Boolean, true
	case Void:
		return Undefined, true
	default:
		return NoType, false
	}
}

// PhiEntry pairs an incoming value with the predecessor block it flows from.
type PhiEntry struct {
	Value Value
	Pred  *BasicBlock
}

// Instruction is one IR operation. Most fields are shared by every kind;
// the family-specific ones (PhiEntries, Prop, CheckedType, ...) are only
// meaningful for the kinds that use them.
type Instruction struct {
	Kind     InstrKind
	Operands []Value
	Block    *BasicBlock

	t Type

	Users []*Instruction

	// PhiEntries is populated only for Kind == Phi.
	PhiEntries []PhiEntry

	// Prop is the property name for LoadProperty / StoreOwnProperty /
	// StoreProperty; empty for an array-element store (IsArrayElement).
	Prop           string
	IsArrayElement bool

	// Target is the Variable a LoadFrame reads or a StoreFrame writes, or
	// the AllocStack a LoadStack/StoreStack addresses.
	Target Value

	// Param is the Parameter a LoadParam reads.
	Param *Parameter

	// CheckedType is the annotated type PrLoad carries.
	CheckedType Type

	// Func is the closure target for a CreateFunction instruction.
	Func *Function

	// Name aids diagnostics; not read by the pass.
	Name string
}

func (i *Instruction) Type() Type { return i.t }
func (*Instruction) isValue()     {}

// SetType assigns i's Type, honoring the inherent-type invariant: an
// instruction kind with a fixed inherent type always ends up at that type
// regardless of what the caller passes in.
func (i *Instruction) SetType(t Type) {
	if inherent, ok := i.Kind.InherentType(); ok {
		i.t = inherent
		return
	}
	i.t = t
}

// NewInstr builds an instruction of the given kind with the given operands,
// defaulting its Type to its inherent type if it has one, to NoType if it
// has no output, else to Any (the top of the lattice): before this pass has
// ever narrowed anything, "no information yet" is the correct upper bound
// for the anti-widening guarantee to mean anything on a first run.
func NewInstr(kind InstrKind, operands ...Value) *Instruction {
	i := &Instruction{Kind: kind, Operands: operands}
	switch inherent, ok := kind.InherentType(); {
	case ok:
		i.t = inherent
	case !kind.hasOutput():
		i.t = NoType
	default:
		i.t = Any
	}
	return i
}

// HasOutput reports whether i is expected to carry a non-NoType Type once
// the pass completes.
func (i *Instruction) HasOutput() bool { return i.Kind.hasOutput() }

// AddUser records that use reads i's result. Kept for completeness of the
// data model; the shipped transfer functions only need it for AllocStack /
// memLocType (infer/memory.go) and the owned-property scan
// (infer/property.go).
func (i *Instruction) AddUser(use *Instruction) {
	i.Users = append(i.Users, use)
}
