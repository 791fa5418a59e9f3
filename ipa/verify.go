package ipa

import (
	"fmt"
	"math/big"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/errs"
	"github.com/dlogzk/plonkipa/groupmap"
	"github.com/dlogzk/plonkipa/transcript"
)

// BatchItem is one opening to check as part of a batched Verify call: a
// commitment (with its chunk evaluations at each of EvalPoints), the
// opening proof, and the same scaling factors/degree bound Open was called
// with for it.
type BatchItem struct {
	Transcript  *transcript.Transcript
	EvalPoints  []curve.ScalarField
	Polyscale   curve.ScalarField
	Evalscale   curve.ScalarField
	Commitment  *Commitment
	Evaluations [][]curve.ScalarField // Evaluations[pointIdx][chunkIdx]
	DegreeBound *int
	Proof       *OpeningProof
}

// VerifyBatch checks a batch of IPA openings against a single SRS by
// accumulating every proof's algebraic check into one combined
// multi-scalar-multiplication equation that must equal the identity — the
// "single accumulated MSM equation across a proof batch" §4.1 calls for.
// Grounded on original_source/dlog/commitment/src/commitment.rs's
// `SRS::verify`.
func (cs *CommitmentScheme) VerifyBatch(items []BatchItem) (bool, error) {
	n := len(cs.SRS.G)
	if n == 0 {
		return false, fmt.Errorf("%w: empty SRS", errs.ErrDomainCreation)
	}
	rounds := CeilLog2(n)
	paddedLength := 1 << rounds

	points := make([]curve.Point, paddedLength, paddedLength*4)
	copy(points, cs.SRS.G)
	points = append(points, cs.SRS.H)

	scalars := make([]curve.ScalarField, paddedLength+1, (paddedLength+1)*4)

	randBase, err := curve.RandomScalar()
	if err != nil {
		return false, err
	}
	sgRandBase, err := curve.RandomScalar()
	if err != nil {
		return false, err
	}

	randBaseI := one()
	sgRandBaseI := one()

	for _, item := range items {
		tr := item.Transcript
		proof := item.Proof

		t := tr.SqueezeDigest()
		u := groupmap.ToGroup(t)

		chal, chalInv, chalSq, chalSqInv, err := replayChallenges(tr, proof)
		if err != nil {
			return false, err
		}

		if err := tr.AbsorbPoint(proof.Delta); err != nil {
			return false, err
		}
		c := tr.SqueezeScalarChallenge().ToField(curve.BW12377.EndoR)

		b0 := combinedBPoly(item.EvalPoints, item.Evalscale, chal, chalInv)
		sArr := BPolyCoefficients(foldInv(chalInv), chalSq)

		negRandBaseI := neg(randBaseI)

		// Sg: -(rand_base_i*z1 + sg_rand_base_i).
		var sgScalar curve.ScalarField
		sgScalar.Mul(&negRandBaseI, &proof.Z1)
		sgScalar.Add(&sgScalar, neg(sgRandBaseI))
		points = append(points, proof.Sg)
		scalars = append(scalars, sgScalar)

		// sg_rand_base_i * s, spread over the first paddedLength SRS bases.
		for i, s := range sArr {
			var term curve.ScalarField
			term.Mul(&sgRandBaseI, &s)
			scalars[i].Add(&scalars[i], &term)
		}

		// H: -rand_base_i*z2.
		var hTerm curve.ScalarField
		hTerm.Mul(&randBaseI, &proof.Z2)
		scalars[paddedLength].Add(&scalars[paddedLength], neg(hTerm))

		// U: -rand_base_i*z1*b0.
		var uScalar curve.ScalarField
		uScalar.Mul(&proof.Z1, &b0)
		uScalar.Mul(&uScalar, &negRandBaseI)
		points = append(points, u)
		scalars = append(scalars, uScalar)

		// L/R pairs: rand_base_i*c_i * (chalSq[i], chalSqInv[i]).
		randBaseICI := mul(c, randBaseI)
		for i, pair := range proof.LR {
			points = append(points, pair.L, pair.R)
			scalars = append(scalars, mul(randBaseICI, chalSq[i]), mul(randBaseICI, chalSqInv[i]))
		}

		combinedInnerProduct := accumulateCommitmentTerms(&points, &scalars, item, randBaseICI, n)

		// U: rand_base_i*c_i * combined_inner_product.
		points = append(points, u)
		scalars = append(scalars, mul(randBaseICI, combinedInnerProduct))

		// Delta: rand_base_i.
		points = append(points, proof.Delta)
		scalars = append(scalars, randBaseI)

		randBaseI = mul(randBaseI, randBase)
		sgRandBaseI = mul(sgRandBaseI, sgRandBase)
	}

	acc, err := cs.Kernel.MSM(points, scalars)
	if err != nil {
		return false, fmt.Errorf("%w: %v", errs.ErrOpenProof, err)
	}
	return acc.Z.IsZero(), nil
}

// replayChallenges re-derives every round's folding challenge from the
// proof's (L, R) pairs, exactly as Open derived them, so Verify never trusts
// a challenge the proof itself supplies.
func replayChallenges(tr *transcript.Transcript, proof *OpeningProof) (chal, chalInv, chalSq, chalSqInv []curve.ScalarField, err error) {
	for _, pair := range proof.LR {
		if err = tr.AbsorbPoint(pair.L); err != nil {
			return
		}
		if err = tr.AbsorbPoint(pair.R); err != nil {
			return
		}
		u := tr.SqueezeRoundChallenge(curve.BW12377.ChallengeNonResidue)
		var uInv curve.ScalarField
		uInv.Inverse(&u)

		chal = append(chal, u)
		chalInv = append(chalInv, uInv)
		chalSq = append(chalSq, mul(u, u))
		chalSqInv = append(chalSqInv, mul(uInv, uInv))
	}
	return
}

func combinedBPoly(evalPoints []curve.ScalarField, r curve.ScalarField, chal, chalInv []curve.ScalarField) curve.ScalarField {
	scale := one()
	res := curve.ScalarField{}
	for _, e := range evalPoints {
		res = add(res, mul(scale, BPoly(chal, chalInv, e)))
		scale = mul(scale, r)
	}
	return res
}

func foldInv(chalInv []curve.ScalarField) curve.ScalarField {
	res := one()
	for i := range chalInv {
		res = mul(res, chalInv[i])
	}
	return res
}

// accumulateCommitmentTerms folds one batch item's commitment chunks (and
// its optional shifted/degree-bound chunk) into the running MSM, returning
// the combined, xi-weighted inner product the rest of the equation checks
// against.
func accumulateCommitmentTerms(points *[]curve.Point, scalars *[]curve.ScalarField, item BatchItem, randBaseICI curve.ScalarField, srsSize int) curve.ScalarField {
	comm := item.Commitment
	res := curve.ScalarField{}
	xiI := one()

	numChunks := len(comm.Unshifted)
	for chunkIdx := 0; chunkIdx < numChunks; chunkIdx++ {
		evalsForChunk := make([]curve.ScalarField, len(item.Evaluations))
		for pIdx := range item.Evaluations {
			evalsForChunk[pIdx] = item.Evaluations[pIdx][chunkIdx]
		}
		term := EvalPolynomial(evalsForChunk, item.Evalscale)
		res = add(res, mul(xiI, term))

		*scalars = append(*scalars, mul(randBaseICI, xiI))
		*points = append(*points, comm.Unshifted[chunkIdx])
		xiI = mul(xiI, item.Polyscale)
	}

	if item.DegreeBound != nil && comm.Shifted != nil {
		m := *item.DegreeBound
		shiftExp := big.NewInt(int64(srsSize - m%srsSize))

		lastChunk := numChunks - 1
		shiftedEvals := make([]curve.ScalarField, len(item.EvalPoints))
		for pIdx, e := range item.EvalPoints {
			var powed curve.ScalarField
			powed.Exp(e, shiftExp)
			shiftedEvals[pIdx] = mul(powed, item.Evaluations[pIdx][lastChunk])
		}
		term := EvalPolynomial(shiftedEvals, item.Evalscale)
		res = add(res, mul(xiI, term))

		*scalars = append(*scalars, mul(randBaseICI, xiI))
		*points = append(*points, *comm.Shifted)
	}

	return res
}

func one() curve.ScalarField {
	var e curve.ScalarField
	e.SetUint64(1)
	return e
}

func add(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Add(&a, &b)
	return out
}

func mul(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Mul(&a, &b)
	return out
}

func neg(a curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Neg(&a)
	return out
}
