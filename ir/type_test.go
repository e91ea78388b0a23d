package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticejs/tyinfer/ir"
)

// union/intersect are commutative, associative, idempotent;
// union is monotone; union(a, NoType) = a; intersect(a, Any) = a.
func TestLatticeL1(t *testing.T) {
	tags := []ir.Type{ir.NoType, ir.Undefined, ir.Null, ir.Boolean, ir.String, ir.Number,
		ir.Int32, ir.Uint32, ir.BigInt, ir.Object, ir.Environment, ir.Empty, ir.Any}

	for _, a := range tags {
		for _, b := range tags {
			assert.Equal(t, ir.Union(a, b), ir.Union(b, a), "union not commutative for %v,%v", a, b)
			assert.Equal(t, ir.Intersect(a, b), ir.Intersect(b, a), "intersect not commutative for %v,%v", a, b)
		}
	}

	for _, a := range tags {
		for _, b := range tags {
			for _, c := range tags {
				assert.Equal(t, ir.Union(ir.Union(a, b), c), ir.Union(a, ir.Union(b, c)))
				assert.Equal(t, ir.Intersect(ir.Intersect(a, b), c), ir.Intersect(a, ir.Intersect(b, c)))
			}
		}
	}

	for _, a := range tags {
		assert.Equal(t, a, ir.Union(a, a), "union not idempotent for %v", a)
		assert.Equal(t, a, ir.Intersect(a, a), "intersect not idempotent for %v", a)
		assert.Equal(t, a, ir.Union(a, ir.NoType))
		assert.Equal(t, a, ir.Intersect(a, ir.Any))
	}

	// monotonicity: a subset step can only grow (or hold) under union. Int32
	// is its own tag, so joining Number onto Int32|String keeps Int32.
	assert.Equal(t, ir.Union(ir.Union(ir.Number, ir.Int32), ir.String), ir.Union(ir.Union(ir.Int32, ir.String), ir.Number))
}

// Int32/Uint32 are proper subtypes of Number - isNumber holds
// for them, but a union with a disjoint tag is not itself Number.
func TestLatticeL2(t *testing.T) {
	assert.True(t, ir.IsNumber(ir.Int32))
	assert.True(t, ir.IsNumber(ir.Uint32))
	assert.True(t, ir.IsNumber(ir.Number))
	assert.False(t, ir.IsNumber(ir.String))
	assert.False(t, ir.IsNumber(ir.NoType))

	mixed := ir.Union(ir.Int32, ir.String)
	assert.NotEqual(t, ir.Number, mixed)
	assert.False(t, ir.IsNumber(mixed))
}

func TestIsString(t *testing.T) {
	assert.True(t, ir.IsString(ir.String))
	assert.False(t, ir.IsString(ir.Union(ir.String, ir.Number)))
	assert.False(t, ir.IsString(ir.NoType))
}

func TestIsBigInt(t *testing.T) {
	assert.True(t, ir.IsBigInt(ir.BigInt))
	assert.False(t, ir.IsBigInt(ir.Union(ir.BigInt, ir.Number)))
}

func TestCanBe(t *testing.T) {
	u := ir.Union(ir.Number, ir.String)
	assert.True(t, ir.CanBeString(u))
	assert.True(t, ir.CanBe(u, ir.Number))
	assert.False(t, ir.CanBeBigInt(u))
	assert.True(t, ir.CanBeString(ir.Any))
	assert.True(t, ir.CanBeBigInt(ir.Any))
}

func TestIsNoType(t *testing.T) {
	assert.True(t, ir.IsNoType(ir.NoType))
	assert.False(t, ir.IsNoType(ir.Any))
	assert.False(t, ir.IsNoType(ir.Undefined))
}

func TestSideEffectFree(t *testing.T) {
	assert.True(t, ir.SideEffectFree(ir.Number))
	assert.True(t, ir.SideEffectFree(ir.Union(ir.Union(ir.Undefined, ir.Null), ir.Union(ir.Boolean, ir.BigInt))))
	assert.False(t, ir.SideEffectFree(ir.Object))
	assert.False(t, ir.SideEffectFree(ir.String))
	assert.False(t, ir.SideEffectFree(ir.Union(ir.Number, ir.Object)))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "NoType", ir.NoType.String())
	assert.Equal(t, "Any", ir.Any.String())
	assert.Equal(t, "Number", ir.Number.String())
	assert.Contains(t, ir.Union(ir.Number, ir.String).String(), "Number")
	assert.Contains(t, ir.Union(ir.Number, ir.String).String(), "String")
}

func TestTypeHashDistinguishesTags(t *testing.T) {
	assert.NotEqual(t, ir.Number.Hash(), ir.String.Hash())
	assert.Equal(t, ir.Number.Hash(), ir.Number.Hash())
}
