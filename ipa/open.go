package ipa

import (
	"fmt"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/errs"
	"github.com/dlogzk/plonkipa/groupmap"
	"github.com/dlogzk/plonkipa/transcript"
)

// LRPair is one round's pair of commitments to the low/high halves of the
// folded accumulator, produced while halving the working vector from N down
// to 1.
type LRPair struct {
	L curve.Point
	R curve.Point
}

// OpeningProof is the output of Open: log(N) (L, R) pairs plus the
// Schnorr-style final step (Delta, Z1, Z2) proving knowledge of the final
// folded scalar a0 (and its blinding), and Sg, the folded SRS base the
// verifier recomputes independently via BPolyCoefficients and compares
// against.
type OpeningProof struct {
	LR    []LRPair
	Delta curve.Point
	Z1    curve.ScalarField
	Z2    curve.ScalarField
	Sg    curve.Point
}

// CeilLog2 returns the smallest k with 2^k >= d.
func CeilLog2(d int) int {
	pow2 := 1
	k := 0
	for d > pow2 {
		k++
		pow2 *= 2
	}
	return k
}

// Open produces a proof that the committed polynomial(s) formed by chunking
// coeffs (with an optional degree bound, exactly as Commit chunks them)
// evaluate, at every point in evalPoints, to the values the verifier will
// independently recompute from the proof's folded evaluation — without
// revealing coeffs. polyscale combines chunks of one long polynomial into a
// single opened polynomial (mirrors the original's multi-polynomial batching,
// specialized to one polynomial per call); evalscale combines multiple
// evaluation points into one folded b-vector.
//
// Grounded on original_source/dlog/commitment/src/commitment.rs's `SRS::open`.
func (cs *CommitmentScheme) Open(
	tr *transcript.Transcript,
	coeffs []curve.ScalarField,
	degreeBound *int,
	evalPoints []curve.ScalarField,
	polyscale curve.ScalarField,
	evalscale curve.ScalarField,
) (*OpeningProof, error) {
	n := len(cs.SRS.G)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty SRS", errs.ErrDomainCreation)
	}

	t := tr.SqueezeDigest()
	u := groupmap.ToGroup(t)

	rounds := CeilLog2(n)
	paddedLength := 1 << rounds

	g := make([]curve.Point, paddedLength)
	copy(g, cs.SRS.G)

	p := combineChunks(coeffs, degreeBound, n, polyscale)

	a := make([]curve.ScalarField, paddedLength)
	copy(a, p)

	bInit := foldedEvalPowers(paddedLength, evalPoints, evalscale)
	b := make([]curve.ScalarField, paddedLength)
	copy(b, bInit)

	var lr []LRPair
	var blindersL, blindersR []curve.ScalarField
	var chals, chalInvs []curve.ScalarField

	for r := 0; r < rounds; r++ {
		half := len(g) / 2
		gLo, gHi := g[:half], g[half:]
		aLo, aHi := a[:half], a[half:]
		bLo, bHi := b[:half], b[half:]

		randL, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		randR, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}

		lPoint, err := msmWithBlind(cs, gHi, aLo, cs.SRS.H, u, randL, InnerProd(aLo, bHi))
		if err != nil {
			return nil, err
		}
		rPoint, err := msmWithBlind(cs, gLo, aHi, cs.SRS.H, u, randR, InnerProd(aHi, bLo))
		if err != nil {
			return nil, err
		}

		lr = append(lr, LRPair{L: lPoint, R: rPoint})
		blindersL = append(blindersL, randL)
		blindersR = append(blindersR, randR)

		if err := tr.AbsorbPoint(lPoint); err != nil {
			return nil, err
		}
		if err := tr.AbsorbPoint(rPoint); err != nil {
			return nil, err
		}

		uChal := tr.SqueezeRoundChallenge(curve.BW12377.ChallengeNonResidue)
		var uInv curve.ScalarField
		uInv.Inverse(&uChal)

		chals = append(chals, uChal)
		chalInvs = append(chalInvs, uInv)

		// a_new[i] = a_hi[i]*u_inv + a_lo[i]*u
		a = foldHiInvLoU(aHi, aLo, uInv, uChal)
		// b_new[i] = b_lo[i]*u_inv + b_hi[i]*u
		b = foldHiInvLoU(bLo, bHi, uInv, uChal)
		g = foldPoints(gLo, gHi, uInv, uChal)
	}

	a0, b0, g0 := a[0], b[0], g[0]

	rPrime := curve.ScalarField{}
	for i := range blindersL {
		var uSq, uInvSq, t1, t2 curve.ScalarField
		uSq.Mul(&chals[i], &chals[i])
		uInvSq.Mul(&chalInvs[i], &chalInvs[i])
		t1.Mul(&blindersL[i], &uSq)
		t2.Mul(&blindersR[i], &uInvSq)
		rPrime.Add(&rPrime, &t1)
		rPrime.Add(&rPrime, &t2)
	}

	d, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	rDelta, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}

	uTimesB0 := curve.ScalarMul(u, &b0)
	var g0PlusUB0 curve.Jac
	g0PlusUB0.FromAffine(&g0)
	g0PlusUB0.AddMixed(&uTimesB0)
	g0PlusUB0Affine := curve.JacToAffine(&g0PlusUB0)

	deltaTerm1 := curve.ScalarMul(g0PlusUB0Affine, &d)
	deltaTerm2 := curve.ScalarMul(cs.SRS.H, &rDelta)
	var deltaJac curve.Jac
	deltaJac.FromAffine(&deltaTerm1)
	deltaJac.AddMixed(&deltaTerm2)
	delta := curve.JacToAffine(&deltaJac)

	if err := tr.AbsorbPoint(delta); err != nil {
		return nil, err
	}
	c := tr.SqueezeScalarChallenge().ToField(curve.BW12377.EndoR)

	var z1, z2, cTimesRPrime curve.ScalarField
	z1.Mul(&a0, &c)
	z1.Add(&z1, &d)
	cTimesRPrime.Mul(&c, &rPrime)
	z2.Add(&cTimesRPrime, &rDelta)

	return &OpeningProof{LR: lr, Delta: delta, Z1: z1, Z2: z2, Sg: g0}, nil
}

// combineChunks folds a (possibly SRS-sized-or-longer) coefficient vector
// into one opened polynomial of length <= n, scaling successive chunks by
// increasing powers of polyscale, and folding in the shifted segment when a
// degree bound is set.
func combineChunks(coeffs []curve.ScalarField, degreeBound *int, n int, polyscale curve.ScalarField) []curve.ScalarField {
	out := make([]curve.ScalarField, n)
	scale := curve.ScalarField{}
	scale.SetUint64(1)

	offset := 0
	for offset < len(coeffs) {
		end := offset + n
		if end > len(coeffs) {
			end = len(coeffs)
		}
		segment := coeffs[offset:end]
		for i := range segment {
			var term curve.ScalarField
			term.Mul(&segment[i], &scale)
			out[i].Add(&out[i], &term)
		}
		scale.Mul(&scale, &polyscale)
		offset += n

		if offset >= len(coeffs) && degreeBound != nil {
			m := *degreeBound
			if rem := m % n; rem != 0 {
				shift := n - rem
				for i := range segment {
					if i+shift < n {
						var term curve.ScalarField
						term.Mul(&segment[i], &scale)
						out[i+shift].Add(&out[i+shift], &term)
					}
				}
				scale.Mul(&scale, &polyscale)
			}
		}
	}
	return out
}

// foldedEvalPowers builds the length-paddedLength vector b_j =
// sum_i evalscale^i * evalPoints[i]^j.
func foldedEvalPowers(paddedLength int, evalPoints []curve.ScalarField, evalscale curve.ScalarField) []curve.ScalarField {
	res := make([]curve.ScalarField, paddedLength)
	scale := curve.ScalarField{}
	scale.SetUint64(1)
	for _, e := range evalPoints {
		powers := Pows(paddedLength, e)
		for i, t := range powers {
			var term curve.ScalarField
			term.Mul(&scale, &t)
			res[i].Add(&res[i], &term)
		}
		scale.Mul(&scale, &evalscale)
	}
	return res
}

// foldHiInvLoU returns first[i]*uInv + second[i]*u element-wise.
func foldHiInvLoU(first, second []curve.ScalarField, uInv, u curve.ScalarField) []curve.ScalarField {
	out := make([]curve.ScalarField, len(first))
	for i := range first {
		var t1, t2 curve.ScalarField
		t1.Mul(&first[i], &uInv)
		t2.Mul(&second[i], &u)
		out[i].Add(&t1, &t2)
	}
	return out
}

func foldPoints(lo, hi []curve.Point, uInv, u curve.ScalarField) []curve.Point {
	out := make([]curve.Point, len(lo))
	for i := range lo {
		out[i] = ShamirSum(uInv, lo[i], u, hi[i])
	}
	return out
}

// msmWithBlind computes MSM(points, scalars) + blind*h + auxScalar*auxPoint,
// the shape both the L and R commitments in each round share.
func msmWithBlind(cs *CommitmentScheme, points []curve.Point, scalars []curve.ScalarField, h curve.Point, auxPoint curve.Point, blind, auxScalar curve.ScalarField) (curve.Point, error) {
	allPoints := make([]curve.Point, 0, len(points)+2)
	allPoints = append(allPoints, points...)
	allPoints = append(allPoints, h, auxPoint)

	allScalars := make([]curve.ScalarField, 0, len(scalars)+2)
	allScalars = append(allScalars, scalars...)
	allScalars = append(allScalars, blind, auxScalar)

	acc, err := cs.Kernel.MSM(allPoints, allScalars)
	if err != nil {
		return curve.Point{}, fmt.Errorf("%w: %v", errs.ErrOracleCommit, err)
	}
	return curve.JacToAffine(acc), nil
}
