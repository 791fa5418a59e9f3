// Package endo holds the single bit-folding recurrence that both
// transcript.ScalarChallenge (§4.7: a short squeezed challenge reinterpreted
// as a scalar via the curve endomorphism) and the endomorphism-accelerated
// variable-base scalar multiplication gate (§4.4, gates/endovbsm.go) run.
// Sharing one implementation means the two can't silently drift apart — the
// VBSM gate's arithmetic identity only holds if it matches exactly what the
// verifier uses to turn a squeezed challenge into a scalar.
package endo

import "github.com/dlogzk/plonkipa/curve"

// FoldBit applies one step of the doubling + conditional-add recurrence to
// the running (a, b) accumulator, consuming one pair of challenge bits —
// the same two-bits-per-step GLV decomposition used by
// ScalarChallenge.ToField and by the endo-VBSM gate's per-row identity.
//
// signBit picks the sign of the increment (+1 if set, -1 otherwise);
// placeBit picks which accumulator receives it. Recurrence (a, b both
// start at 2):
//
//	a, b := 2a, 2b
//	s := 1 if signBit else -1
//	if placeBit { a += s } else { b += s }
func FoldBit(a, b curve.ScalarField, signBit, placeBit bool) (curve.ScalarField, curve.ScalarField) {
	a.Add(&a, &a)
	b.Add(&b, &b)

	var s curve.ScalarField
	if signBit {
		s.SetUint64(1)
	} else {
		s.SetUint64(1)
		s.Neg(&s)
	}

	if placeBit {
		a.Add(&a, &s)
	} else {
		b.Add(&b, &s)
	}
	return a, b
}

// Final combines the folded (a, b) accumulator into a single scalar via the
// curve's endomorphism constant: a*EndoR + b.
func Final(a, b curve.ScalarField, endoR curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Mul(&a, &endoR)
	out.Add(&out, &b)
	return out
}

// Seed is the accumulator's starting value (a = b = 2) before any bits are
// folded in.
func Seed() curve.ScalarField {
	var two curve.ScalarField
	two.SetUint64(2)
	return two
}
