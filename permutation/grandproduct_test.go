package permutation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
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

func TestBuildZStartsAtOneAndPinsSecondBoundary(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())
	w := newTestWitness(n)

	var beta, gamma curve.ScalarField
	beta.SetUint64(2)
	gamma.SetUint64(3)

	z := BuildZ(cs, w, beta, gamma)
	require.Len(t, z, n)

	var one curve.ScalarField
	one.SetUint64(1)
	require.True(t, z[0].Equal(&one))
	require.True(t, z[n-3].Equal(&one))

	atOne, atBoundary := BoundaryRemainders(z)
	var zero curve.ScalarField
	require.True(t, atOne.Equal(&zero))
	require.True(t, atBoundary.Equal(&zero))
}

func TestBuildZNoConnectsKeepsRatioOneEachStep(t *testing.T) {
	// With no Connect() calls, sigma is the identity permutation, so every
	// numerator/denominator factor is identical and z stays 1 throughout
	// the deterministic (non-blinded) prefix.
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())
	w := newTestWitness(n)

	var beta, gamma curve.ScalarField
	beta.SetUint64(5)
	gamma.SetUint64(7)

	z := BuildZ(cs, w, beta, gamma)
	var one curve.ScalarField
	one.SetUint64(1)
	for i := 0; i < n-2; i++ {
		require.True(t, z[i].Equal(&one), "z[%d]", i)
	}
}

func TestBlindLastTwoOverwritesOnlyFinalSlots(t *testing.T) {
	n := 8
	z := make([]curve.ScalarField, n)
	for i := range z {
		z[i].SetUint64(uint64(i + 1))
	}
	var r0, r1 curve.ScalarField
	r0.SetUint64(999)
	r1.SetUint64(998)
	BlindLastTwo(z, r0, r1)

	require.True(t, z[n-2].Equal(&r0))
	require.True(t, z[n-1].Equal(&r1))
	var three curve.ScalarField
	three.SetUint64(3)
	require.True(t, z[2].Equal(&three))
}
