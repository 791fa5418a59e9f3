package gates

import "github.com/dlogzk/plonkipa/curve"

// Addition is the short-Weierstrass point-addition gate (§4.4, spec.md
// lines ~128-131): one row, witness columns xP,yP,xQ,yQ,xS,yS,s — wires
// 0..6 of the 15-wire row, mapped in that order.
type Addition struct{}

// Identities returns the 3 raw identity values for a point-addition row:
//
//	(xQ − xP)·s − (yQ − yP) = 0
//	s² − (xP + xQ + xS) = 0
//	s·(xP − xS) − (yS + yP) = 0
func (Addition) Identities(wires [15]curve.ScalarField) [3]curve.ScalarField {
	xP, yP, xQ, yQ, xS, yS, s := wires[0], wires[1], wires[2], wires[3], wires[4], wires[5], wires[6]

	var out [3]curve.ScalarField
	out[0] = sub(mul(sub(xQ, xP), s), sub(yQ, yP))
	out[1] = sub(square(s), add(add(xP, xQ), xS))
	out[2] = sub(mul(s, sub(xP, xS)), add(yS, yP))
	return out
}

// Evaluate folds the 3 identities by successive powers of alpha.
func (g Addition) Evaluate(wires [15]curve.ScalarField, alpha curve.ScalarField) curve.ScalarField {
	ids := g.Identities(wires)
	pow := AlphaPowers(alpha, len(ids))
	var acc curve.ScalarField
	acc.SetZero()
	for i, v := range ids {
		acc = add(acc, mul(pow[i], v))
	}
	return acc
}
