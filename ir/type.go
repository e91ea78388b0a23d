package ir

import "strings"

// Type is a set of JavaScript runtime type tags, represented as a bitmask.
// It is the lattice described by the type-inference pass: NoType (⊥) is the
// empty set, Any (⊤) is the union of every tag, and Union/Intersect are the
// lattice join/meet.
//
// Int32 and Uint32 are proper subsets of Number: IsNumber reports true for
// either, but Union(Int32, String) is not Number - the narrower tag is not
// widened away just because a caller asked a coarser question of it.
type Type uint16

const (
	NoType Type = 0

	Undefined Type = 1 << iota
	Null
	Boolean
	String
	Number
	Int32
	Uint32
	BigInt
	Object
	Environment
	Empty
)

// Any is the union of every non-bottom tag.
const Any = Undefined | Null | Boolean | String | Number | Int32 | Uint32 | BigInt | Object | Environment | Empty

// Union returns the smallest Type that is a superset of both a and b.
func Union(a, b Type) Type { return a | b }

// Intersect returns the largest Type that is a subset of both a and b.
func Intersect(a, b Type) Type { return a & b }

// IsNoType reports whether t is the bottom of the lattice.
func IsNoType(t Type) bool { return t == NoType }

// IsNumber reports whether t could only ever be some flavor of number
// (Number, Int32, or Uint32 - never a disjoint tag alongside them).
func IsNumber(t Type) bool {
	return t != NoType && t&^(Number|Int32|Uint32) == 0
}

// IsString reports whether t is exactly String (and not NoType).
func IsString(t Type) bool { return t != NoType && t&^String == 0 }

// IsBigInt reports whether t is exactly BigInt (and not NoType).
func IsBigInt(t Type) bool { return t != NoType && t&^BigInt == 0 }

// CanBe reports whether t and tag share at least one possible runtime tag.
func CanBe(t, tag Type) bool { return t&tag != 0 }

// CanBeString reports whether t might be a string at runtime.
func CanBeString(t Type) bool { return CanBe(t, String) }

// CanBeBigInt reports whether t might be a bigint at runtime.
func CanBeBigInt(t Type) bool { return CanBe(t, BigInt) }

// SideEffectFree reports whether coercing a value of type t can never invoke
// user code (valueOf/toString/Symbol.toPrimitive). Objects and strings are
// excluded because their coercion can call back into the program; every other
// tag coerces without side effects.
func SideEffectFree(t Type) bool {
	return t&^(Undefined|Null|Boolean|Number|Int32|Uint32|BigInt) == 0
}

var tagNames = []struct {
	tag  Type
	name string
}{
	{Undefined, "Undefined"},
	{Null, "Null"},
	{Boolean, "Boolean"},
	{String, "String"},
	{Number, "Number"},
	{Int32, "Int32"},
	{Uint32, "Uint32"},
	{BigInt, "BigInt"},
	{Object, "Object"},
	{Environment, "Environment"},
	{Empty, "Empty"},
}

// String renders t for diagnostics, e.g. "Number|String" or "NoType"/"Any".
func (t Type) String() string {
	switch t {
	case NoType:
		return "NoType"
	case Any:
		return "Any"
	}
	var parts []string
	for _, tn := range tagNames {
		if t&tn.tag != 0 {
			parts = append(parts, tn.name)
		}
	}
	if len(parts) == 0 {
		return "NoType"
	}
	return strings.Join(parts, "|")
}

// Hash lets Type be used as a key in the hash sets used across this module
// (see util/hset), and as an immutable.Hasher element.
func (t Type) Hash() uint32 { return uint32(t) }
