package permutation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
)

func TestZkpmMasksLastThreeRows(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())

	var zero, one curve.ScalarField
	one.SetUint64(1)

	for row := 0; row < n; row++ {
		got := Zkpm(cs, row)
		if row >= n-3 {
			require.True(t, got.Equal(&zero), "row %d should be masked", row)
		} else {
			require.True(t, got.Equal(&one), "row %d should be unmasked", row)
		}
	}
}

func TestRowContributionZeroWhenZRatioHoldsAndUnmasked(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())
	w := newTestWitness(n)

	var beta, gamma curve.ScalarField
	beta.SetUint64(2)
	gamma.SetUint64(3)

	z := BuildZ(cs, w, beta, gamma)

	for row := 0; row < n-3; row++ {
		zkpl := Zkpm(cs, row)
		got := RowContribution(cs, w, row, z[row], z[row+1], beta, gamma, zkpl)
		var zero curve.ScalarField
		require.True(t, got.Equal(&zero), "row %d", row)
	}
}

func TestRowContributionZeroOnMaskedRowsRegardlessOfZ(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())
	w := newTestWitness(n)

	var beta, gamma, bogus curve.ScalarField
	beta.SetUint64(2)
	gamma.SetUint64(3)
	bogus.SetUint64(12345)

	zkpl := Zkpm(cs, n-1)
	got := RowContribution(cs, w, n-1, bogus, bogus, beta, gamma, zkpl)
	var zero curve.ScalarField
	require.True(t, got.Equal(&zero))
}
