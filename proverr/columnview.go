package proverr

import (
	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
)

// ColumnView is one polynomial's coefficient form plus its evaluations on
// the mid (4n) and large (8n) domains, together with the "one row ahead"
// and "one row behind" rotations of those evaluations the multi-row gate
// identities need (Rotate by Mid/N or Large/N steps through the same
// small-domain row exactly because the small domain's generator is the
// mid/large generator raised to Mid/N or Large/N — see constraintsystem.Rotate).
type ColumnView struct {
	coeffs []curve.ScalarField

	mid     []curve.ScalarField
	midNext []curve.ScalarField
	midPrev []curve.ScalarField

	large     []curve.ScalarField
	largeNext []curve.ScalarField
	largePrev []curve.ScalarField
}

func BuildView(cs *constraintsystem.ConstraintSystem, lagrange []curve.ScalarField) ColumnView {
	coeffs := constraintsystem.Interpolate(cs.Domains.Domain, lagrange)
	mid := constraintsystem.Evaluate(cs.Domains.DomainMid, coeffs)
	large := constraintsystem.Evaluate(cs.Domains.DomainLarge, coeffs)
	midShift := cs.Domains.Mid / cs.Domains.N
	largeShift := cs.Domains.Large / cs.Domains.N
	return ColumnView{
		coeffs:    coeffs,
		mid:       mid,
		midNext:   constraintsystem.Rotate(mid, midShift),
		midPrev:   constraintsystem.Rotate(mid, -midShift),
		large:     large,
		largeNext: constraintsystem.Rotate(large, largeShift),
		largePrev: constraintsystem.Rotate(large, -largeShift),
	}
}
