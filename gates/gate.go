// Package gates implements the PLONK custom-gate identities §4.4 lists:
// the generic gate, the Poseidon permutation round gate, short-Weierstrass
// point addition, variable-base scalar multiplication (VBSM), and
// endomorphism-accelerated VBSM. Each is a row-wise identity evaluator: given
// a row's witness values (and, where the gate spans two rows, the next
// row's), it returns the identity's value — zero exactly when the row
// satisfies the gate.
//
// The prover accumulates these (scaled by successive powers of the
// Fiat–Shamir challenge alpha, one power per gate kind — the
// quotient-polynomial decomposition §4.3 describes) across every row of the
// domain to build the combined quotient numerator; the row evaluator here
// is the one piece of domain-specific math that differs per gate, so
// isolating it per file is what lets constraintsystem/permutation stay
// gate-agnostic.
package gates

import "github.com/dlogzk/plonkipa/curve"

// Row is the per-row witness slice a gate identity reads: the 15 wire
// values at the gate's row, and (for two-row gates like VBSM/Poseidon) the
// same 15 values one row ahead.
type Row struct {
	Wires     [15]curve.ScalarField
	NextWires [15]curve.ScalarField
}

func mul(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Mul(&a, &b)
	return out
}

func add(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Add(&a, &b)
	return out
}

func sub(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Sub(&a, &b)
	return out
}

func neg(a curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Neg(&a)
	return out
}

func square(a curve.ScalarField) curve.ScalarField {
	return mul(a, a)
}

// AlphaPowers returns [1, alpha, alpha^2, ...] of length n, the per-gate-kind
// scaling the prover folds each gate's identity by before summing them into
// one combined quotient numerator (§4.3).
func AlphaPowers(alpha curve.ScalarField, n int) []curve.ScalarField {
	out := make([]curve.ScalarField, n)
	acc := curve.ScalarField{}
	acc.SetUint64(1)
	for i := 0; i < n; i++ {
		out[i] = acc
		acc = mul(acc, alpha)
	}
	return out
}
