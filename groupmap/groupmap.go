// Package groupmap implements the deterministic field-to-curve map §4.1
// step 1 calls for: turning a base-field element (itself the output of
// hashing a domain-separation label through the Fq sponge) into a curve
// point, with no secret trapdoor, so anyone can recompute and audit an SRS.
//
// The map used is try-and-increment: test whether x^3 + CurveB is a
// quadratic residue, and if not, walk x forward deterministically until it
// is. It is not constant-time — irrelevant here, since every input is
// public (an SRS index or a label, never a secret) — and always terminates
// in an expected 2 steps since quadratic residues are ~half the field.
package groupmap

import "github.com/dlogzk/plonkipa/curve"

var one = func() curve.BaseField {
	var e curve.BaseField
	e.SetUint64(1)
	return e
}()

// ToGroup deterministically maps t to an affine point on the curve, never
// the point at infinity.
func ToGroup(t curve.BaseField) curve.Point {
	x := t
	b := curve.CurveB()

	for {
		var x2, x3, rhs curve.BaseField
		x2.Mul(&x, &x)
		x3.Mul(&x2, &x)
		rhs.Add(&x3, &b)

		var y curve.BaseField
		if rhs.IsZero() {
			return curve.Point{X: x, Y: rhs}
		}
		if y.Sqrt(&rhs) != nil {
			return curve.Point{X: x, Y: y}
		}

		x.Add(&x, &one)
	}
}
