package verifierr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/errs"
	"github.com/dlogzk/plonkipa/ipa"
	"github.com/dlogzk/plonkipa/proverr"
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

func newTestScheme(cs *constraintsystem.ConstraintSystem, label string) *ipa.CommitmentScheme {
	s := srs.New(label, proverr.MaxQuotientSize(cs))
	return ipa.New(s)
}

// TestVerifyAcceptsValidProof round-trips Prove->Verify on the same
// trivially-satisfied empty circuit proverr's own round-trip test uses (no
// gates, no copy constraints): every identity Verify checks collapses to
// 0=0, so this exercises the full replay/recompute/batch-verify pipeline
// without depending on any one gate's correctness.
func TestVerifyAcceptsValidProof(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())

	w := newTestWitness(n)
	scheme := newTestScheme(cs, "verify-empty-roundtrip")

	proof, err := proverr.Prove(cs, scheme, w, 0)
	require.NoError(t, err)

	ok, err := Verify(cs, scheme, proof)
	require.NoError(t, err)
	require.True(t, ok, "a genuine proof over a trivially-satisfied circuit must verify")
}

// TestVerifyAcceptsGenericGateWithPublicInput additionally exercises the
// generic-gate identity and the public-input-polynomial evaluation path
// (constraintsystem.EvalPublicAt), not just the trivial all-zero-selector
// case.
func TestVerifyAcceptsGenericGateWithPublicInput(t *testing.T) {
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
	w.Set(0, 0, declared)

	scheme := newTestScheme(cs, "verify-generic-public")

	proof, err := proverr.Prove(cs, scheme, w, 1)
	require.NoError(t, err)

	ok, err := Verify(cs, scheme, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestVerifyRejectsWrongDeclaredPublicInput changes the proof's declared
// public value after the fact (without touching the witness the prover
// actually committed to): the generic-gate identity l - public = 0 no
// longer holds at the public row, so the main quotient identity (step 3)
// must fail.
func TestVerifyRejectsWrongDeclaredPublicInput(t *testing.T) {
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
	w.Set(0, 0, declared)

	scheme := newTestScheme(cs, "verify-wrong-public")

	proof, err := proverr.Prove(cs, scheme, w, 1)
	require.NoError(t, err)

	var wrong curve.ScalarField
	wrong.SetUint64(43)
	proof.Public[0] = wrong

	ok, err := Verify(cs, scheme, proof)
	require.ErrorIs(t, err, errs.ErrProofVerification)
	require.False(t, ok)
}

// TestVerifyRejectsTamperedOpeningProof corrupts one witness column's IPA
// opening proof directly (a value the transcript replay never absorbs, so
// every challenge Verify re-derives still matches the prover's), isolating
// the failure to step 4's batch verification rather than the main identity
// check in step 3.
func TestVerifyRejectsTamperedOpeningProof(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())

	w := newTestWitness(n)
	scheme := newTestScheme(cs, "verify-tampered-opening")

	proof, err := proverr.Prove(cs, scheme, w, 0)
	require.NoError(t, err)

	tampered := *proof.WitnessOpen[0]
	var one curve.ScalarField
	one.SetUint64(1)
	tampered.Z1.Add(&tampered.Z1, &one)
	proof.WitnessOpen[0] = &tampered

	ok, err := Verify(cs, scheme, proof)
	require.ErrorIs(t, err, errs.ErrOpenProof)
	require.False(t, ok)
}
