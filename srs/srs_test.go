package srs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeterministic(t *testing.T) {
	s1 := New("test-srs", 16)
	s2 := New("test-srs", 16)
	require.Equal(t, s1.N, s2.N)
	for i := range s1.G {
		require.True(t, s1.G[i].Equal(&s2.G[i]))
	}
	require.True(t, s1.H.Equal(&s2.H))
}

func TestNewDifferentLabelsDiffer(t *testing.T) {
	s1 := New("label-a", 4)
	s2 := New("label-b", 4)
	require.False(t, s1.G[0].Equal(&s2.G[0]))
}

func TestWriteToReadFromRoundTrip(t *testing.T) {
	s1 := New("round-trip", 8)

	var buf bytes.Buffer
	_, err := s1.WriteTo(&buf)
	require.NoError(t, err)

	var s2 SRS
	_, err = s2.ReadFrom(&buf)
	require.NoError(t, err)

	require.Equal(t, s1.N, s2.N)
	for i := range s1.G {
		require.True(t, s1.G[i].Equal(&s2.G[i]))
	}
	require.True(t, s1.H.Equal(&s2.H))
}

func TestReadFromRejectsTruncation(t *testing.T) {
	s1 := New("truncated", 8)

	var buf bytes.Buffer
	_, err := s1.WriteTo(&buf)
	require.NoError(t, err)

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-1])
	var s2 SRS
	_, err = s2.ReadFrom(truncated)
	require.Error(t, err)
}
