package ipa

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/srs"
	"github.com/dlogzk/plonkipa/transcript"
)

func scalar(v uint64) curve.ScalarField {
	var e curve.ScalarField
	e.SetUint64(v)
	return e
}

func TestCommitOpenVerifyRoundTrip(t *testing.T) {
	s := srs.New("ipa-roundtrip", 8)
	cs := New(s)

	coeffs := []curve.ScalarField{scalar(3), scalar(1), scalar(4), scalar(1)}
	comm, err := cs.Commit(coeffs, nil)
	require.NoError(t, err)
	require.Len(t, comm.Unshifted, 1)

	z := scalar(5)
	evalAtZ := EvalPolynomial(coeffs, z)

	polyscale := scalar(7)
	evalscale := scalar(11)

	proveTr := transcript.New("ipa-roundtrip-proof")
	proof, err := cs.Open(proveTr, coeffs, nil, []curve.ScalarField{z}, polyscale, evalscale)
	require.NoError(t, err)

	verifyTr := transcript.New("ipa-roundtrip-proof")
	ok, err := cs.VerifyBatch([]BatchItem{{
		Transcript:  verifyTr,
		EvalPoints:  []curve.ScalarField{z},
		Polyscale:   polyscale,
		Evalscale:   evalscale,
		Commitment:  comm,
		Evaluations: [][]curve.ScalarField{{evalAtZ}},
		Proof:       proof,
	}})
	require.NoError(t, err)
	require.True(t, ok, "a correctly constructed opening must verify")
}

func TestVerifyRejectsWrongEvaluation(t *testing.T) {
	s := srs.New("ipa-reject", 8)
	cs := New(s)

	coeffs := []curve.ScalarField{scalar(3), scalar(1), scalar(4), scalar(1)}
	comm, err := cs.Commit(coeffs, nil)
	require.NoError(t, err)

	z := scalar(5)
	polyscale := scalar(7)
	evalscale := scalar(11)

	proveTr := transcript.New("ipa-reject-proof")
	proof, err := cs.Open(proveTr, coeffs, nil, []curve.ScalarField{z}, polyscale, evalscale)
	require.NoError(t, err)

	wrongEval := scalar(999)

	verifyTr := transcript.New("ipa-reject-proof")
	ok, err := cs.VerifyBatch([]BatchItem{{
		Transcript:  verifyTr,
		EvalPoints:  []curve.ScalarField{z},
		Polyscale:   polyscale,
		Evalscale:   evalscale,
		Commitment:  comm,
		Evaluations: [][]curve.ScalarField{{wrongEval}},
		Proof:       proof,
	}})
	require.NoError(t, err)
	require.False(t, ok, "a tampered evaluation must not verify")
}

// TestShamirSumMatchesNaive is the P5-style property: the simultaneous
// double-and-add fold (ShamirSum) must always agree with two independent
// scalar multiplications added together (NaiveCombine), across random
// scalar/point pairs.
func TestShamirSumMatchesNaive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("ShamirSum == NaiveCombine", prop.ForAll(
		func(a, b, c, d uint64) bool {
			uInv, u := scalar(a+1), scalar(b+1)
			g1 := curve.ScalarMul(curve.Generator(), ref(scalar(c+1)))
			g2 := curve.ScalarMul(curve.Generator(), ref(scalar(d+1)))

			got := ShamirSum(uInv, g1, u, g2)
			want := NaiveCombine(uInv, g1, u, g2)
			return got.Equal(&want)
		},
		gen.UInt64Range(0, 1<<20),
		gen.UInt64Range(0, 1<<20),
		gen.UInt64Range(0, 1<<20),
		gen.UInt64Range(0, 1<<20),
	))

	properties.TestingRun(t)
}

func ref(e curve.ScalarField) *curve.ScalarField { return &e }
