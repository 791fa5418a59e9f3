package gates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/curve"
)

// buildSatisfyingRow picks xP, yP, xQ, s freely and derives yQ, xS, yS so
// the three addition identities hold exactly, rather than hand-computing
// field values.
func buildSatisfyingRow(xPv, yPv, xQv, sv uint64) [15]curve.ScalarField {
	var xP, yP, xQ, s curve.ScalarField
	xP.SetUint64(xPv)
	yP.SetUint64(yPv)
	xQ.SetUint64(xQv)
	s.SetUint64(sv)

	// yQ = yP + (xQ - xP) * s
	yQ := add(yP, mul(sub(xQ, xP), s))
	// xS = s^2 - xP - xQ
	xS := sub(sub(square(s), xP), xQ)
	// yS = s*(xP - xS) - yP
	yS := sub(mul(s, sub(xP, xS)), yP)

	var wires [15]curve.ScalarField
	wires[0], wires[1], wires[2], wires[3], wires[4], wires[5], wires[6] = xP, yP, xQ, yQ, xS, yS, s
	return wires
}

func TestAdditionGateZeroOnSatisfyingRow(t *testing.T) {
	wires := buildSatisfyingRow(2, 3, 5, 7)
	for _, id := range (Addition{}).Identities(wires) {
		var zero curve.ScalarField
		require.True(t, id.Equal(&zero))
	}
}

func TestAdditionGateNonZeroOnViolatingRow(t *testing.T) {
	wires := buildSatisfyingRow(2, 3, 5, 7)
	wires[5].SetUint64(999) // corrupt yS

	ids := (Addition{}).Identities(wires)
	var zero curve.ScalarField
	require.False(t, ids[2].Equal(&zero))
}
