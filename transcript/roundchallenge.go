package transcript

import "github.com/dlogzk/plonkipa/curve"

// SqueezeRoundChallenge derives one IPA round challenge (§4.7): squeeze a
// scalar pre-image, and if it isn't a quadratic residue, scale it by the
// curve's fixed non-residue once (the product of two non-residues is a
// residue), then take the square root. Taking
// a square root (rather than using the pre-image directly) is what lets the
// verifier's batched check treat a round challenge and its inverse
// symmetrically in the folding equation.
//
// nonResidue is a curve parameter (curve.Parameters.ChallengeNonResidue),
// never hard-coded — §9 Open Question #2.
func (t *Transcript) SqueezeRoundChallenge(nonResidue curve.ScalarField) curve.ScalarField {
	preimage := t.SqueezeScalar()

	if preimage.Legendre() == -1 {
		preimage.Mul(&preimage, &nonResidue)
	}

	var out curve.ScalarField
	out.Sqrt(&preimage)
	return out
}
