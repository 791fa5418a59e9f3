package gates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/curve"
)

func TestVBSMBooleanityIdentitiesCatchNonBooleanBit(t *testing.T) {
	var this, next [15]curve.ScalarField
	this[11].SetUint64(2) // b1 = 2, not boolean

	ids := (VBSM{}).Identities(this, next)
	var zero curve.ScalarField
	require.False(t, ids[0].Equal(&zero))
}

func TestVBSMBooleanityIdentitiesPassOnZeroOrOne(t *testing.T) {
	var this, next [15]curve.ScalarField
	this[11].SetUint64(1)
	this[14].SetUint64(0)
	next[12].SetUint64(1)
	next[14].SetUint64(0)
	next[1].SetUint64(1)

	ids := (VBSM{}).Identities(this, next)
	var zero curve.ScalarField
	for i := 0; i < 5; i++ {
		require.True(t, ids[i].Equal(&zero), "booleanity identity %d", i)
	}
}

func TestVBSMEvaluateCombinesViaAlpha(t *testing.T) {
	var this, next [15]curve.ScalarField
	var alpha curve.ScalarField
	alpha.SetUint64(2)

	got := (VBSM{}).Evaluate(this, next, alpha)
	// All identities are zero on the all-zero row (0-0=0, etc.), so the
	// folded sum must be zero regardless of alpha.
	var zero curve.ScalarField
	require.True(t, got.Equal(&zero))
}
