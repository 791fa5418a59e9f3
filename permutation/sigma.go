package permutation

import (
	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
)

// SigmaLagrange returns wire column k's wiring-permutation value at every
// domain row, in Lagrange (evaluation) form — the same sigmaVal
// BuildZ/RowContribution compute pointwise on the small domain, exposed
// here so proverr/verifierr can interpolate it into a polynomial and
// evaluate it off the small domain (the large domain the quotient is
// assembled on, or the Fiat-Shamir point ζ).
func SigmaLagrange(cs *constraintsystem.ConstraintSystem, k int) []curve.ScalarField {
	n := cs.Domains.N
	out := make([]curve.ScalarField, n)
	for row := 0; row < n; row++ {
		sw, sr := cs.SigmaWire[k][row], cs.SigmaRow[k][row]
		out[row] = mul(cosetFactor(sw, n), domainPoint(cs, sr))
	}
	return out
}
