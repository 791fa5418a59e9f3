package gates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/curve"
)

func TestGenericGateZeroOnSatisfyingRow(t *testing.T) {
	// l + r - o = 0, i.e. ql=1, qr=1, qo=-1, qm=0, qc=0.
	var wires [15]curve.ScalarField
	wires[0].SetUint64(3) // l
	wires[1].SetUint64(4) // r
	wires[2].SetUint64(7) // o

	var ql, qr, qo, qm, qc, public curve.ScalarField
	ql.SetUint64(1)
	qr.SetUint64(1)
	qo.SetUint64(1)
	qo.Neg(&qo)

	got := Generic{}.Evaluate(wires, ql, qr, qm, qo, qc, public)
	var zero curve.ScalarField
	require.True(t, got.Equal(&zero))
}

func TestGenericGateNonZeroOnViolatingRow(t *testing.T) {
	var wires [15]curve.ScalarField
	wires[0].SetUint64(3)
	wires[1].SetUint64(4)
	wires[2].SetUint64(100) // wrong output

	var ql, qr, qo, qm, qc, public curve.ScalarField
	ql.SetUint64(1)
	qr.SetUint64(1)
	qo.SetUint64(1)
	qo.Neg(&qo)

	got := Generic{}.Evaluate(wires, ql, qr, qm, qo, qc, public)
	var zero curve.ScalarField
	require.False(t, got.Equal(&zero))
}
