// Package transcript implements the Fiat–Shamir transcript §4.7 builds the
// non-interactive proof around: a pair of Poseidon sponges (one per field,
// §4.6's FqSponge/FrSponge) that the prover and verifier both drive in
// lockstep, absorbing commitments and public evaluations and squeezing the
// challenges (β, γ, α, ζ, the IPA round challenges, …) that replace an
// interactive verifier.
package transcript

import (
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/poseidon"
)

// Transcript binds a base-field sponge (absorbs curve points as they're
// committed) and a scalar-field sponge (absorbs/squeezes the scalars that
// drive the rest of the protocol once a digest crosses from Fq to Fr).
type Transcript struct {
	fq poseidon.SpongeFq
	fr poseidon.SpongeFr
}

// New starts a fresh transcript, optionally domain-separated by label so two
// unrelated protocol instances never share a challenge even on identical
// inputs.
func New(label string) *Transcript {
	t := &Transcript{fq: poseidon.NewSpongeFq(), fr: poseidon.NewSpongeFr()}
	if label != "" {
		t.absorbLabel(label)
	}
	return t
}

func (t *Transcript) absorbLabel(label string) {
	for _, b := range []byte(label) {
		var e curve.BaseField
		e.SetUint64(uint64(b))
		t.fq.Absorb(&e)
	}
}

// AbsorbPoint folds a curve point (a commitment, an IPA round's L or R, …)
// into the base-field sponge.
func (t *Transcript) AbsorbPoint(p curve.Point) error {
	return t.fq.AbsorbPoint(&p)
}

// AbsorbPoints folds a sequence of points in order.
func (t *Transcript) AbsorbPoints(ps []curve.Point) error {
	for i := range ps {
		if err := t.AbsorbPoint(ps[i]); err != nil {
			return err
		}
	}
	return nil
}

// AbsorbScalar folds a scalar-field element (an evaluation, a public input)
// into the scalar-field sponge directly.
func (t *Transcript) AbsorbScalar(s curve.ScalarField) {
	t.fr.Absorb(&s)
}

// AbsorbScalars folds a sequence of scalars in order.
func (t *Transcript) AbsorbScalars(ss []curve.ScalarField) {
	for i := range ss {
		t.AbsorbScalar(ss[i])
	}
}

// crossToScalar moves a base-field digest across to the scalar-field
// sponge: squeeze Fq, reduce its canonical bytes mod r, and absorb the
// result into Fr. Every challenge derived after a batch of point absorbs
// goes through this once so later scalar squeezes depend on everything
// absorbed so far in both sponges.
func (t *Transcript) crossToScalar() {
	digest := t.fq.Squeeze()
	var asScalar curve.ScalarField
	asScalar.SetBytes(digest.Marshal())
	t.fr.Absorb(&asScalar)
}

// SqueezeScalar folds the current Fq state across and squeezes one
// scalar-field challenge (used directly for β and γ — full-width
// challenges that don't need the ScalarChallenge endomorphism shortcut).
func (t *Transcript) SqueezeScalar() curve.ScalarField {
	t.crossToScalar()
	return t.fr.Squeeze()
}

// SqueezeDigest returns the next base-field squeeze without crossing into
// Fr — used when the caller wants a base-field value directly (e.g. a
// group-map input, §4.1).
func (t *Transcript) SqueezeDigest() curve.BaseField {
	return t.fq.Squeeze()
}

// Fork returns an independent copy of the transcript's state.
func (t *Transcript) Fork() *Transcript {
	return &Transcript{fq: t.fq.Fork(), fr: t.fr.Fork()}
}
