package poseidon

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/curve"
)

// TestOneRoundMatchesDirectRoundFormula is a known-answer-vector check (P8):
// it recomputes round 0's output by hand, directly from FrParams()'s own
// round-constant row and MDS matrix (add round constants, raise to Alpha,
// multiply by MDS), rather than by calling OneRound/Permute and comparing
// the result to itself. A bug shared between this test's arithmetic and
// OneRound's would have to be identical in both independently-written
// formulas to go undetected.
func TestOneRoundMatchesDirectRoundFormula(t *testing.T) {
	params := FrParams()

	state := make([]curve.ScalarField, params.Width)
	for i := range state {
		state[i].SetUint64(uint64(i + 1))
	}

	want := make([]curve.ScalarField, params.Width)
	rc := params.RoundConstants[0]
	alpha := new(big.Int).SetUint64(params.Alpha)
	added := make([]curve.ScalarField, params.Width)
	for i := range added {
		added[i].Add(&state[i], &rc[i])
		added[i].Exp(added[i], alpha)
	}
	for i := 0; i < params.Width; i++ {
		row := params.MDS[i]
		for j := 0; j < params.Width; j++ {
			var term curve.ScalarField
			term.Mul(&row[j], &added[j])
			want[i].Add(&want[i], &term)
		}
	}

	got := OneRound(params, 0, state)
	for i := range got {
		require.True(t, got[i].Equal(&want[i]), "element %d", i)
	}
}
