package constraintsystem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/curve"
)

func TestCompileBuildsSelfLoopsByDefault(t *testing.T) {
	cs := New(4)
	require.NoError(t, cs.Compile())

	for w := 0; w < 15; w++ {
		for row := 0; row < 4; row++ {
			require.Equal(t, w, cs.SigmaWire[w][row])
			require.Equal(t, row, cs.SigmaRow[w][row])
		}
	}
}

func TestConnectBuildsACycle(t *testing.T) {
	cs := New(4)
	cs.Connect(0, 0, 1, 2) // wire 0 row 0 <-> wire 1 row 2
	require.NoError(t, cs.Compile())

	// (0,0) -> (1,2) -> (0,0): a 2-cycle.
	require.Equal(t, 1, cs.SigmaWire[0][0])
	require.Equal(t, 2, cs.SigmaRow[0][0])
	require.Equal(t, 0, cs.SigmaWire[1][2])
	require.Equal(t, 0, cs.SigmaRow[1][2])
}

func TestGenericGateSelectorsStored(t *testing.T) {
	cs := New(4)
	var ql, qr, qm, qo, qc curve.ScalarField
	ql.SetUint64(1)
	qr.SetUint64(1)
	cs.AddGenericGate(0, ql, qr, qm, qo, qc)

	require.Equal(t, GateGeneric, cs.Gates.At(0))
	require.Equal(t, GateZero, cs.Gates.At(1))
	require.True(t, cs.Selectors.QL[0].Equal(&ql))
}
