package proverr

import (
	"fmt"
	"time"

	"github.com/consensys/gnark/logger"

	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/errs"
	"github.com/dlogzk/plonkipa/ipa"
	"github.com/dlogzk/plonkipa/permutation"
	"github.com/dlogzk/plonkipa/transcript"
	"github.com/dlogzk/plonkipa/witness"
)

// MaxQuotientSize bounds the committed quotient polynomial's length —
// DivideByVanishing's output can be no longer than the largest sum it
// divided (cs.Domains.Large) minus the n it divided by, and fixing that
// bound lets t always be committed the same way regardless of how much of
// the combined quotient's top coefficients happened to be zero.
func MaxQuotientSize(cs *constraintsystem.ConstraintSystem) int {
	return cs.Domains.Large - cs.Domains.N
}

// Prove builds one PLONK-IPA proof (§4.5) that w satisfies cs, with the
// first publicCount rows of wire column 0 declared as public inputs.
//
// The ten steps below follow original_source/dlog/plonk/src/prover.rs's
// ProverProof::create in order: interpolate and commit the witness and
// public-input polynomials, derive β/γ, build and blind the grand product
// z, derive α, assemble and divide the quotient polynomial t, derive ζ,
// evaluate every polynomial at ζ and ζ·ω, compute the linearization scalar
// f(ζ), and open every committed polynomial.
func Prove(cs *constraintsystem.ConstraintSystem, scheme *ipa.CommitmentScheme, w *witness.Witness, publicCount int) (*Proof, error) {
	start := time.Now()
	log := logger.Logger().With().Str("package", "proverr").Int("domainSize", 0).Logger()

	if err := cs.EnsureCompiled(); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	n := cs.Domains.N
	log = log.With().Int("domainSize", n).Logger()

	tr := transcript.New("plonkipa")

	// Step 1: interpolate and commit the 15 witness columns and the
	// public-input polynomial, absorbing each commitment as it's made.
	var wv [witness.Width]ColumnView
	var witnessComm [witness.Width]*ipa.Commitment
	for k := 0; k < witness.Width; k++ {
		wv[k] = BuildView(cs, w.Columns[k])
		comm, err := scheme.Commit(wv[k].coeffs, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: witness column %d", err, k)
		}
		witnessComm[k] = comm
		if err := tr.AbsorbPoints(comm.Unshifted); err != nil {
			return nil, err
		}
	}

	if publicCount > n {
		return nil, fmt.Errorf("%w: publicCount %d exceeds domain size %d", errs.ErrWitnessInconsistent, publicCount, n)
	}
	public := append([]curve.ScalarField(nil), w.Columns[0][:publicCount]...)
	pubLagrange := constraintsystem.PublicLagrange(n, public)
	pubView := BuildView(cs, pubLagrange)
	pubComm, err := scheme.Commit(pubView.coeffs, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: public-input polynomial", err)
	}
	if err := tr.AbsorbPoints(pubComm.Unshifted); err != nil {
		return nil, err
	}

	// Step 2: derive β, γ.
	beta := tr.SqueezeScalar()
	gamma := tr.SqueezeScalar()

	// Step 3: build and blind the grand-product polynomial z, commit it.
	z := permutation.BuildZ(cs, w, beta, gamma)
	r0, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	r1, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	permutation.BlindLastTwo(z, r0, r1)

	atOne, atOmegaNMinus3 := permutation.BoundaryRemainders(z)
	if !atOne.IsZero() || !atOmegaNMinus3.IsZero() {
		return nil, fmt.Errorf("%w: z boundary condition", errs.ErrProofCreation)
	}

	zv := BuildView(cs, z)
	zComm, err := scheme.Commit(zv.coeffs, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: grand-product polynomial", err)
	}
	if err := tr.AbsorbPoints(zComm.Unshifted); err != nil {
		return nil, err
	}

	// Step 4: derive α, the gate/boundary-condition scaling schedule. Like
	// ζ/v/u below (but not β/γ, which stay full-width), α is a ScalarChallenge
	// folded through endo_r rather than a plain squeeze.
	alpha := tr.SqueezeScalarChallenge().ToField(curve.BW12377.EndoR)
	allAlpha := [7]curve.ScalarField{}
	copy(allAlpha[:], GateAlphaSchedule(alpha))

	// Step 5: assemble the combined quotient numerator on the mid and large
	// domains (including the two boundary-condition terms, folded in via
	// the Lagrange-basis polynomials assembleQuotient builds), divide by
	// the vanishing polynomial.
	sel := BuildSelectorViews(cs)
	sigma := BuildSigmaViews(cs)
	zkpm := BuildZkpmView(cs)
	starts := PoseidonStartRounds(cs)

	quotMid, quotLarge, err := assembleQuotient(cs, wv, sel, pubView, zv, sigma, zkpm, curve.BW12377.EndoQ, beta, gamma, alpha, allAlpha, starts)
	if err != nil {
		return nil, err
	}

	numerator := constraintsystem.Interpolate(cs.Domains.DomainLarge, combineMidLarge(cs, quotMid, quotLarge))

	gen := cs.Domains.Domain.Generator

	tCoeffs, remainder := constraintsystem.DivideByVanishing(numerator, n)
	if err := errDivision(remainder); err != nil {
		return nil, err
	}

	maxQuot := MaxQuotientSize(cs)
	tComm, err := scheme.Commit(tCoeffs, &maxQuot)
	if err != nil {
		return nil, fmt.Errorf("%w: quotient polynomial", err)
	}
	if err := tr.AbsorbPoints(tComm.Unshifted); err != nil {
		return nil, err
	}
	if tComm.Shifted != nil {
		if err := tr.AbsorbPoint(*tComm.Shifted); err != nil {
			return nil, err
		}
	}

	// Step 6: derive ζ, a ScalarChallenge folded through endo_r.
	zeta := tr.SqueezeScalarChallenge().ToField(curve.BW12377.EndoR)
	var zetaOmega curve.ScalarField
	zetaOmega.Mul(&zeta, &gen)

	// Step 7: evaluate every committed polynomial at ζ and ζ·ω.
	var evals [2]ProofEvaluations
	for k := 0; k < witness.Width; k++ {
		evals[0].Witness[k] = constraintsystem.HornerEval(wv[k].coeffs, zeta)
		evals[1].Witness[k] = constraintsystem.HornerEval(wv[k].coeffs, zetaOmega)
	}
	evals[0].Z = constraintsystem.HornerEval(zv.coeffs, zeta)
	evals[1].Z = constraintsystem.HornerEval(zv.coeffs, zetaOmega)
	evals[0].T = constraintsystem.HornerEval(tCoeffs, zeta)
	evals[1].T = constraintsystem.HornerEval(tCoeffs, zetaOmega)

	for i := 0; i < 2; i++ {
		tr.AbsorbScalars(evals[i].Witness[:])
		tr.AbsorbScalar(evals[i].Z)
		tr.AbsorbScalar(evals[i].T)
	}

	// Step 8: compute the generic/custom-gate linearization scalar f(ζ) —
	// see Proof.F's doc comment for why this excludes the permutation term.
	zetaOmegaInv := PrevPoint(cs, zeta)
	nPrevEval := constraintsystem.HornerEval(wv[EndoAccumulatorWire].coeffs, zetaOmegaInv)
	tr.AbsorbScalar(nPrevEval)
	f := EvalFAtComplete(cs, zeta, evals[0].Witness, evals[1].Witness, nPrevEval, sel, pubView, alpha, starts, curve.BW12377.EndoQ)

	// Step 9: open every committed polynomial at (ζ, ζ·ω), sharing one
	// sequential transcript across all 18 opens rather than one batched
	// opening across distinct polynomials — see Proof's doc comment. Wire
	// EndoAccumulatorWire additionally opens at ζ·ω⁻¹ for EndoVBSM's nPrev.
	v := tr.SqueezeScalarChallenge().ToField(curve.BW12377.EndoR)
	u := tr.SqueezeScalarChallenge().ToField(curve.BW12377.EndoR)
	evalPoints := []curve.ScalarField{zeta, zetaOmega}
	nPrevPoints := []curve.ScalarField{zeta, zetaOmega, zetaOmegaInv}

	var witnessOpen [witness.Width]*ipa.OpeningProof
	for k := 0; k < witness.Width; k++ {
		points := evalPoints
		if k == EndoAccumulatorWire {
			points = nPrevPoints
		}
		proof, err := scheme.Open(tr, wv[k].coeffs, nil, points, v, u)
		if err != nil {
			return nil, fmt.Errorf("%w: witness column %d", err, k)
		}
		witnessOpen[k] = proof
	}
	pubOpen, err := scheme.Open(tr, pubView.coeffs, nil, evalPoints, v, u)
	if err != nil {
		return nil, fmt.Errorf("%w: public-input polynomial", err)
	}
	zOpen, err := scheme.Open(tr, zv.coeffs, nil, evalPoints, v, u)
	if err != nil {
		return nil, fmt.Errorf("%w: grand-product polynomial", err)
	}
	tOpen, err := scheme.Open(tr, tCoeffs, &maxQuot, evalPoints, v, u)
	if err != nil {
		return nil, fmt.Errorf("%w: quotient polynomial", err)
	}

	// Step 10: assemble the proof.
	proof := &Proof{
		Public:      public,
		PublicComm:  pubComm,
		WitnessComm: witnessComm,
		ZComm:       zComm,
		TComm:       tComm,
		Evals:       evals,
		F:           f,
		NPrevEval:   nPrevEval,
		PublicOpen:  pubOpen,
		WitnessOpen: witnessOpen,
		ZOpen:       zOpen,
		TOpen:       tOpen,
	}

	log.Debug().Dur("took", time.Since(start)).Msg("proof created")
	return proof, nil
}

// GateAlphaSchedule returns the 7 alpha powers the quotient assembly and
// boundary quotients scale by: [0]/[1] for the two boundary conditions,
// [2..6] for generic/addition/poseidon/vbsm/endo-vbsm.
func GateAlphaSchedule(alpha curve.ScalarField) []curve.ScalarField {
	return powersFrom(alpha, 7)
}

func powersFrom(alpha curve.ScalarField, n int) []curve.ScalarField {
	out := make([]curve.ScalarField, n)
	acc := curve.ScalarField{}
	acc.SetUint64(1)
	for i := 0; i < n; i++ {
		out[i] = acc
		acc.Mul(&acc, &alpha)
	}
	return out
}

// combineMidLarge folds the mid-domain gate contributions into large-domain
// evaluation form before summing with the large-domain contributions. A
// mid-domain index and the large-domain index of the same number can't
// simply be added: the mid domain's generator is the large domain's squared
// (Large/Mid = 2), so index i means a different field point on each — the
// mid-domain evaluations have to be interpolated back to coefficients and
// re-evaluated on the large domain first.
func combineMidLarge(cs *constraintsystem.ConstraintSystem, quotMid, quotLarge []curve.ScalarField) []curve.ScalarField {
	midCoeffs := constraintsystem.Interpolate(cs.Domains.DomainMid, quotMid)
	midOnLarge := constraintsystem.Evaluate(cs.Domains.DomainLarge, midCoeffs)
	out := make([]curve.ScalarField, cs.Domains.Large)
	for i := range out {
		out[i].Add(&midOnLarge[i], &quotLarge[i])
	}
	return out
}
