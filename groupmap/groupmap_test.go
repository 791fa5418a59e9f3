package groupmap

import (
	"testing"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/stretchr/testify/require"
)

func TestToGroupOnCurve(t *testing.T) {
	for i := uint64(0); i < 64; i++ {
		var t0 curve.BaseField
		t0.SetUint64(i)
		p := ToGroup(t0)
		require.True(t, p.IsOnCurve(), "ToGroup(%d) produced a point off-curve", i)
	}
}

func TestToGroupDeterministic(t *testing.T) {
	var t0 curve.BaseField
	t0.SetUint64(12345)
	p1 := ToGroup(t0)
	p2 := ToGroup(t0)
	require.True(t, p1.Equal(&p2))
}
