package proverr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dlogzk/plonkipa/constraintsystem"
)

// TestProofEncodeDecodeRoundTrip checks that a proof survives a CBOR
// encode/decode cycle byte-for-byte equal to the original, using go-cmp
// (rather than a field-by-field manual walk) to catch any field Encode/
// Decode might silently drop.
func TestProofEncodeDecodeRoundTrip(t *testing.T) {
	n := 8
	cs := constraintsystem.New(n)
	require.NoError(t, cs.Compile())

	w := newTestWitness(n)
	scheme := newTestScheme(cs, "encode-roundtrip")

	proof, err := Prove(cs, scheme, w, 0)
	require.NoError(t, err)

	data, err := proof.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	got, err := DecodeProof(data)
	require.NoError(t, err)

	if diff := cmp.Diff(proof, got); diff != "" {
		t.Fatalf("decoded proof differs from original (-want +got):\n%s", diff)
	}
}
