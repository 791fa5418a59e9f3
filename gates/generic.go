package gates

import "github.com/dlogzk/plonkipa/curve"

// Generic is the PLONK generic gate (§4.2):
//
//	qL*l + qR*r + qM*l*r + qO*o + qC + public = 0
//
// using wires 0, 1, 2 of the 15-wire row as l, r, o — the same convention
// the teacher's 3-column generic gate uses, just embedded in the first
// three columns of a wider row.
type Generic struct{}

// Evaluate returns the generic gate's identity value for one row; zero
// exactly when the row's l, r, o satisfy the selector-weighted equation.
// public is the public-input contribution for this row (zero on rows
// MarkPublic wasn't called on).
func (Generic) Evaluate(wires [15]curve.ScalarField, ql, qr, qm, qo, qc, public curve.ScalarField) curve.ScalarField {
	l, r, o := wires[0], wires[1], wires[2]

	acc := mul(ql, l)
	acc = add(acc, mul(qr, r))
	acc = add(acc, mul(qm, mul(l, r)))
	acc = add(acc, mul(qo, o))
	acc = add(acc, qc)
	acc = add(acc, public)
	return acc
}
