package gates

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/poseidon"
)

// directRound recomputes one Poseidon round by hand from params' own round
// constants and MDS matrix, independently of poseidon.OneRound, so the
// known-answer test below isn't just feeding the permutation's own output
// back into itself.
func directRound(params *poseidon.Parameters[curve.ScalarField, *curve.ScalarField], r int, state []curve.ScalarField) []curve.ScalarField {
	alpha := new(big.Int).SetUint64(params.Alpha)
	rc := params.RoundConstants[r]
	added := make([]curve.ScalarField, len(state))
	for i := range added {
		added[i].Add(&state[i], &rc[i])
		added[i].Exp(added[i], alpha)
	}
	out := make([]curve.ScalarField, len(state))
	for i := range out {
		row := params.MDS[i]
		for j := range added {
			var term curve.ScalarField
			term.Mul(&row[j], &added[j])
			out[i].Add(&out[i], &term)
		}
	}
	return out
}

func TestPoseidonGateZeroOnFiveCorrectRounds(t *testing.T) {
	params := poseidon.FrParams()

	state := []curve.ScalarField{{}, {}, {}}
	state[0].SetUint64(1)
	state[1].SetUint64(2)
	state[2].SetUint64(3)

	var this, next [15]curve.ScalarField
	this[0], this[1], this[2] = state[0], state[1], state[2]

	startRound := 0
	for r := 0; r < roundsPerRow; r++ {
		state = poseidon.OneRound(params, startRound+r, state)
		if r < roundsPerRow-1 {
			this[3*(r+1)], this[3*(r+1)+1], this[3*(r+1)+2] = state[0], state[1], state[2]
		} else {
			next[0], next[1], next[2] = state[0], state[1], state[2]
		}
	}

	ids := (Poseidon{}).Identities(startRound, this, next)
	var zero curve.ScalarField
	for _, triple := range ids {
		for _, v := range triple {
			require.True(t, v.Equal(&zero))
		}
	}
}

// TestPoseidonGateZeroOnKnownAnswerVector builds the 5-round row trace via
// directRound's independently-written arithmetic (not poseidon.OneRound) and
// checks the gate identities still vanish — a known-answer check that a bug
// shared between OneRound and this gate's Identities would not survive.
func TestPoseidonGateZeroOnKnownAnswerVector(t *testing.T) {
	params := poseidon.FrParams()

	state := []curve.ScalarField{{}, {}, {}}
	state[0].SetUint64(5)
	state[1].SetUint64(9)
	state[2].SetUint64(13)

	var this, next [15]curve.ScalarField
	this[0], this[1], this[2] = state[0], state[1], state[2]

	startRound := 0
	for r := 0; r < roundsPerRow; r++ {
		state = directRound(params, startRound+r, state)
		if r < roundsPerRow-1 {
			this[3*(r+1)], this[3*(r+1)+1], this[3*(r+1)+2] = state[0], state[1], state[2]
		} else {
			next[0], next[1], next[2] = state[0], state[1], state[2]
		}
	}

	ids := (Poseidon{}).Identities(startRound, this, next)
	var zero curve.ScalarField
	for _, triple := range ids {
		for _, v := range triple {
			require.True(t, v.Equal(&zero))
		}
	}
}

func TestPoseidonGateNonZeroOnCorruptedRound(t *testing.T) {
	params := poseidon.FrParams()

	state := []curve.ScalarField{{}, {}, {}}
	state[0].SetUint64(1)
	state[1].SetUint64(2)
	state[2].SetUint64(3)

	var this, next [15]curve.ScalarField
	this[0], this[1], this[2] = state[0], state[1], state[2]

	startRound := 0
	for r := 0; r < roundsPerRow; r++ {
		state = poseidon.OneRound(params, startRound+r, state)
		if r < roundsPerRow-1 {
			this[3*(r+1)], this[3*(r+1)+1], this[3*(r+1)+2] = state[0], state[1], state[2]
		} else {
			next[0], next[1], next[2] = state[0], state[1], state[2]
		}
	}
	this[6].SetUint64(12345) // corrupt round-2 boundary

	ids := (Poseidon{}).Identities(startRound, this, next)
	var zero curve.ScalarField
	allZero := true
	for _, triple := range ids {
		for _, v := range triple {
			if !v.Equal(&zero) {
				allZero = false
			}
		}
	}
	require.False(t, allZero)
}
