package proverr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/ipa"
	"github.com/dlogzk/plonkipa/srs"
	"github.com/dlogzk/plonkipa/witness"
)

func newTestWitness(n int) *witness.Witness {
	w := witness.New(n)
	for col := 0; col < witness.Width; col++ {
		for row := 0; row < n; row++ {
			var v curve.ScalarField
			v.SetUint64(uint64(col*100 + row + 1))
			w.Set(col, row, v)
		}
	}
	return w
}

// newTestScheme builds an IPA commitment scheme over an SRS sized to the
// largest thing Prove ever commits to for a given n: the quotient
// polynomial's degree bound (MaxQuotientSize). Every shorter polynomial
// (witness columns, public, z) chunks into a single, zero-padded segment of
// that same scheme.
func newTestScheme(cs *constraintsystem.ConstraintSystem, label string) *ipa.CommitmentScheme {
	s := srs.New(label, MaxQuotientSize(cs))
	return ipa.New(s)
}

// TestProveEmptyCircuitRoundTrip exercises Prove end to end on a
// constraint system with no gates and no copy constraints tagged: every
// selector column interpolates to the zero polynomial, and with no
// Connect() calls sigma is the identity permutation, so the grand product z
// stays 1 and every gate/permutation/boundary identity is satisfied by any
// witness (see permutation.TestBuildZNoConnectsKeepsRatioOneEachStep for
// the same property at the permutation-package level). This is the
// simplest possible instance that still drives every step of Prove's
// ten-step orchestration.
func TestProveEmptyCircuitRoundTrip(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())

	w := newTestWitness(n)
	scheme := newTestScheme(cs, "prove-empty-roundtrip")

	proof, err := Prove(cs, scheme, w, 0)
	require.NoError(t, err)
	require.NotNil(t, proof)

	require.Empty(t, proof.Public)
	require.NotNil(t, proof.PublicComm)
	require.NotNil(t, proof.ZComm)
	require.NotNil(t, proof.TComm)
	for k := 0; k < witness.Width; k++ {
		require.NotNil(t, proof.WitnessComm[k])
		require.NotNil(t, proof.WitnessOpen[k])
	}

	// EndoVBSM's accumulator wire (wire 7) additionally opens at ζ·ω⁻¹,
	// recorded separately as NPrevEval rather than a fourth ProofEvaluations
	// point.
	require.NotNil(t, proof.WitnessOpen[EndoAccumulatorWire])
}

// TestProveGenericGateWithPublicInput exercises a non-trivial generic-gate
// identity (ql*l + public = 0, i.e. l == declared public value) on row 0,
// with every other row left untagged (trivially satisfied, as in the empty
// case above).
func TestProveGenericGateWithPublicInput(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)

	var ql, zero curve.ScalarField
	ql.SetUint64(1)
	cs.AddGenericGate(0, ql, zero, zero, zero, zero)
	cs.MarkPublic(0)
	require.NoError(t, cs.Compile())

	w := newTestWitness(n)
	var declared curve.ScalarField
	declared.SetUint64(42)
	w.Set(0, 0, declared) // l at row 0 must equal the declared public value

	scheme := newTestScheme(cs, "prove-generic-public")

	proof, err := Prove(cs, scheme, w, 1)
	require.NoError(t, err)
	require.Len(t, proof.Public, 1)
	require.True(t, proof.Public[0].Equal(&declared))
}

// TestGateAlphaScheduleIsPowersOfAlpha checks the 7-element schedule is
// exactly alpha^0..alpha^6, the outer scaling the quotient assembly and
// boundary terms rely on to keep every gate kind's contribution from
// colliding in the combined sum.
func TestGateAlphaScheduleIsPowersOfAlpha(t *testing.T) {
	var alpha curve.ScalarField
	alpha.SetUint64(5)

	got := GateAlphaSchedule(alpha)
	require.Len(t, got, 7)

	var want curve.ScalarField
	want.SetUint64(1)
	for i := 0; i < 7; i++ {
		require.True(t, got[i].Equal(&want), "alpha^%d", i)
		want.Mul(&want, &alpha)
	}
}

// TestCombineMidLargeIsIdentityOnZeroMid checks that when the mid-domain
// contribution is entirely zero, combineMidLarge returns exactly the
// large-domain contribution unchanged — the degenerate case that still
// exercises the mid->large resampling path (interpolating an all-zero
// vector yields the zero polynomial, which evaluates to zero everywhere on
// the large domain too).
func TestCombineMidLargeIsIdentityOnZeroMid(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())

	quotMid := make([]curve.ScalarField, cs.Domains.Mid)
	quotLarge := make([]curve.ScalarField, cs.Domains.Large)
	for i := range quotLarge {
		quotLarge[i].SetUint64(uint64(i + 1))
	}

	out := combineMidLarge(cs, quotMid, quotLarge)
	require.Len(t, out, cs.Domains.Large)
	for i := range out {
		require.True(t, out[i].Equal(&quotLarge[i]), "index %d", i)
	}
}
