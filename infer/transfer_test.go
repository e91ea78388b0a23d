package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticejs/tyinfer/ir"
)

// sampleTypes is a representative slice of the lattice for the monotonicity
// checks below: singletons, the common unions the pass actually produces,
// and the top. NoType is deliberately absent - the engine never applies a
// transfer function to an unresolved operand (applyTransfer's skip rule),
// so monotonicity is only required over non-bottom inputs.
var sampleTypes = []ir.Type{
	ir.Undefined,
	ir.Null,
	ir.Boolean,
	ir.String,
	ir.Number,
	ir.Int32,
	ir.BigInt,
	ir.Object,
	ir.Union(ir.Number, ir.String),
	ir.Union(ir.Number, ir.BigInt),
	ir.Union(ir.String, ir.Object),
	ir.Union(ir.Undefined, ir.Null),
	ir.Any,
}

func subset(a, b ir.Type) bool { return ir.Union(a, b) == b }

// Every transfer helper must be monotone: growing an input type can only
// grow (or hold) the output type. A non-monotone helper would let the
// fixpoint loop oscillate instead of converging.
func TestUnaryArithMonotone(t *testing.T) {
	for _, numResult := range []ir.Type{ir.Number, ir.Int32} {
		for _, a := range sampleTypes {
			for _, b := range sampleTypes {
				if !subset(a, b) {
					continue
				}
				assert.True(t, subset(unaryArith(a, numResult), unaryArith(b, numResult)),
					"unaryArith(%v) ⊄ unaryArith(%v)", a, b)
			}
		}
	}
}

func TestBinaryArithMonotone(t *testing.T) {
	for _, numResult := range []ir.Type{ir.Number, ir.Int32} {
		for _, l := range sampleTypes {
			for _, lBig := range sampleTypes {
				if !subset(l, lBig) {
					continue
				}
				for _, r := range sampleTypes {
					for _, rBig := range sampleTypes {
						if !subset(r, rBig) {
							continue
						}
						assert.True(t, subset(binaryArith(l, r, numResult), binaryArith(lBig, rBig, numResult)),
							"binaryArith(%v,%v) ⊄ binaryArith(%v,%v)", l, r, lBig, rBig)
					}
				}
			}
		}
	}
}

func TestAddMonotone(t *testing.T) {
	for _, l := range sampleTypes {
		for _, lBig := range sampleTypes {
			if !subset(l, lBig) {
				continue
			}
			for _, r := range sampleTypes {
				for _, rBig := range sampleTypes {
					if !subset(r, rBig) {
						continue
					}
					assert.True(t, subset(transferAdd(l, r), transferAdd(lBig, rBig)),
						"transferAdd(%v,%v) ⊄ transferAdd(%v,%v)", l, r, lBig, rBig)
				}
			}
		}
	}
}

// Spot checks on Add's distinguished cases, one per branch of the analysis.
func TestAddCases(t *testing.T) {
	cases := []struct {
		name string
		l, r ir.Type
		want ir.Type
	}{
		{"string wins", ir.String, ir.Number, ir.String},
		{"both numbers", ir.Number, ir.Int32, ir.Number},
		{"both bigints", ir.BigInt, ir.BigInt, ir.BigInt},
		{"side effect free non-string", ir.Union(ir.Number, ir.Boolean), ir.Null, ir.Number},
		{"bigint possible both sides", ir.Union(ir.Number, ir.BigInt), ir.Union(ir.Boolean, ir.BigInt), ir.Union(ir.Number, ir.BigInt)},
		{"object operand keeps string live", ir.Object, ir.Number, ir.Union(ir.Number, ir.String)},
		{"any plus any", ir.Any, ir.Any, ir.Union(ir.Union(ir.Number, ir.BigInt), ir.String)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, transferAdd(tc.l, tc.r))
		})
	}
}
