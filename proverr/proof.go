// Package proverr implements the prover's orchestration of one PLONK-IPA
// proof (§4.5): interpolating and committing the witness and grand-product
// polynomials, deriving every Fiat-Shamir challenge in the order the
// verifier will replay, assembling and dividing the quotient polynomial,
// and opening every committed polynomial at ζ and ζ·ω.
//
// Grounded directly on original_source/dlog/plonk/src/prover.rs
// (`ProverProof::create`), generalized from its 3-wire columns to
// witness.Width (15) and from its single gate identity (generic) to the
// full custom-gate family gates/ implements, with the logging/timing
// conventions of the teacher's internal/backend/bn254/plonk/prove.go.
package proverr

import (
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/ipa"
	"github.com/dlogzk/plonkipa/witness"
)

// ProofEvaluations is every committed polynomial's value at one of the two
// Fiat-Shamir evaluation points (ζ or ζ·ω).
type ProofEvaluations struct {
	Witness [witness.Width]curve.ScalarField
	Z       curve.ScalarField
	T       curve.ScalarField
}

// Proof is everything Verify needs to check one proof: the witness-column,
// grand-product and quotient commitments, the declared public inputs, the
// two evaluation points' worth of evaluations, the generic/custom-gate
// linearization scalar at ζ, and one independent IPA opening proof per
// committed polynomial.
//
// DESIGN.md records why this carries 18 independent openings rather than
// one batched opening across every polynomial (spec.md §4.5 step 10): the
// already-built ipa.Open/VerifyBatch model one polynomial (or its SRS
// chunks) per call, not several distinct polynomials folded into a single
// proof.
type Proof struct {
	Public []curve.ScalarField

	PublicComm  *ipa.Commitment
	WitnessComm [witness.Width]*ipa.Commitment
	ZComm       *ipa.Commitment
	TComm       *ipa.Commitment

	Evals [2]ProofEvaluations // [0] at ζ, [1] at ζ·ω
	F     curve.ScalarField   // generic/custom-gate linearization scalar at ζ — see DESIGN.md's lnrz decision

	// NPrevEval is wire column 7 (the EndoVBSM accumulator) evaluated at
	// ζ·ω⁻¹ — the one extra point EndoVBSM's linearization term needs
	// (it checks its running accumulator against the *previous* row,
	// unlike every other multi-row gate here which checks against the
	// next one). WitnessOpen[7] carries this as a third opened point
	// alongside ζ and ζ·ω rather than introducing a separate proof field.
	NPrevEval curve.ScalarField

	PublicOpen  *ipa.OpeningProof
	WitnessOpen [witness.Width]*ipa.OpeningProof
	ZOpen       *ipa.OpeningProof
	TOpen       *ipa.OpeningProof
}
