package gates

import (
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/poseidon"
)

// Poseidon is the Poseidon-permutation gate (§4.4, §4.6): each round maps a
// state x to MDS·sbox(x + rc), the order poseidon.OneRound applies (round
// constants are added before the S-box, not after the MDS step). Packing one full round per row would
// waste 12 of 15 wires on a width-3 state, so — matching why the witness is
// 15 wires wide rather than 3 (DESIGN.md) — one gate row packs 5
// consecutive rounds of the width-3 permutation:
//
//	wires 0:2   = state entering round startRound
//	wires 3:5   = state after round startRound   (= round startRound+1 input)
//	wires 6:8   = state after round startRound+1
//	wires 9:11  = state after round startRound+2
//	wires 12:14 = state after round startRound+3
//	next row's wires 0:2 = state after round startRound+4
//
// Each 3-wire boundary must match poseidon.OneRound applied to the previous
// boundary. A row reads the round constants of rounds startRound through
// startRound+4, so startRound+4 must be below RoundsFull. With
// FrRoundsFull/FqRoundsFull = 63, which is not a multiple of 5, rows at
// startRound 0, 5, ..., 55 cover rounds 0..59; no row layout in this module
// pads or covers the last 3 rounds.
type Poseidon struct{}

const roundsPerRow = 5

// Identities returns the 5 raw identity triples (state-width 3 each, so 15
// scalar identities total) checking each of the 5 packed round transitions.
func (Poseidon) Identities(startRound int, this, next [15]curve.ScalarField) [roundsPerRow][3]curve.ScalarField {
	params := poseidon.FrParams()

	boundary := func(i int) [3]curve.ScalarField {
		if i == roundsPerRow {
			return [3]curve.ScalarField{next[0], next[1], next[2]}
		}
		return [3]curve.ScalarField{this[3*i], this[3*i+1], this[3*i+2]}
	}

	var out [roundsPerRow][3]curve.ScalarField
	for r := 0; r < roundsPerRow; r++ {
		in := boundary(r)
		want := boundary(r + 1)
		got := poseidon.OneRound(params, startRound+r, in[:])
		out[r][0] = sub(got[0], want[0])
		out[r][1] = sub(got[1], want[1])
		out[r][2] = sub(got[2], want[2])
	}
	return out
}

// Evaluate folds all 15 scalar identities by successive powers of alpha.
func (g Poseidon) Evaluate(startRound int, this, next [15]curve.ScalarField, alpha curve.ScalarField) curve.ScalarField {
	ids := g.Identities(startRound, this, next)
	pow := AlphaPowers(alpha, roundsPerRow*3)
	var acc curve.ScalarField
	acc.SetZero()
	k := 0
	for r := 0; r < roundsPerRow; r++ {
		for j := 0; j < 3; j++ {
			acc = add(acc, mul(pow[k], ids[r][j]))
			k++
		}
	}
	return acc
}
