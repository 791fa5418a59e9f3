package gates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/curve"
)

func TestEndoVBSMBooleanityCatchesNonBooleanBit(t *testing.T) {
	var this [15]curve.ScalarField
	this[5].SetUint64(2) // sign bit not boolean
	var nPrev curve.ScalarField

	ids := (EndoVBSM{}).Identities(curve.BW12377.EndoQ, this, nPrev)
	var zero curve.ScalarField
	require.False(t, ids[0].Equal(&zero))
}

func TestEndoVBSMTableSelectionOnPlaceZero(t *testing.T) {
	// place = 0 selects xQ = xT directly (no endomorphism applied).
	var this [15]curve.ScalarField
	this[0].SetUint64(9) // xT
	this[1].SetUint64(4) // yT
	this[5].SetUint64(1) // sign = 1 -> yQ = yT
	this[6].SetUint64(0) // place = 0 -> xQ = xT
	this[8].SetUint64(9) // xQ
	this[9].SetUint64(4) // yQ
	var nPrev curve.ScalarField

	ids := (EndoVBSM{}).Identities(curve.BW12377.EndoQ, this, nPrev)
	var zero curve.ScalarField
	require.True(t, ids[2].Equal(&zero), "xQ selection identity")
	require.True(t, ids[3].Equal(&zero), "yQ selection identity")
}

func TestReconstructScalarDeterministicOnAllZeroBits(t *testing.T) {
	bits := make([]bool, 8)
	got := reconstructScalar(bits, curve.BW12377.EndoR)
	// Folding all-false bit pairs 4 times from seed 2 is deterministic;
	// just check it doesn't panic and returns a stable value across calls.
	got2 := reconstructScalar(bits, curve.BW12377.EndoR)
	require.True(t, got.Equal(&got2))
}
