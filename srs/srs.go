// Package srs builds and (de)serializes the Structured Reference String
// §3/§4.1 describe: a deterministic vector of curve points plus one
// blinding point, generated with no secret trapdoor via groupmap so anyone
// can recompute and audit it (unlike a KZG SRS, which needs a trusted
// setup and a toxic-waste ceremony — the whole point of choosing IPA).
//
// Grounded on the teacher's `backend/plonk/bls12-377/setup.go` Setup()
// shape (a deterministic construction step producing a ProvingKey/
// VerifyingKey pair) and `famouswizard-gnark`'s mpcsetup marshal.go
// WriteTo/ReadFrom pattern for the disk encoding.
package srs

import (
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/errs"
	"github.com/dlogzk/plonkipa/groupmap"
	"github.com/dlogzk/plonkipa/poseidon"
)

// SRS is the public parameters the IPA commitment scheme (§4.1) and the
// constraint system (§4.2) are built over: N commitment bases plus one
// blinding base. Unlike a KZG SRS, G carries no hidden structure (no secret
// s with G_i = [s^i]Generator) — ipa.Commit treats G simply as a vector of
// independent bases for a Pedersen-style vector commitment, so there is no
// separate "monomial vs Lagrange basis" SRS to maintain; a caller free to
// interpret the vector it commits to as polynomial coefficients or as
// evaluations on a domain, whichever the constraint system needs.
type SRS struct {
	N int
	G []curve.Point // commitment bases, index 0..N-1
	H curve.Point   // blinding base
}

// New deterministically derives an N-base SRS from label, via the
// base-field sponge feeding groupmap.ToGroup — no randomness, no secret.
// Two calls with the same (label, N) always produce byte-identical SRSes.
func New(label string, n int) *SRS {
	sponge := poseidon.NewSpongeFq()
	absorbLabel(&sponge, label)

	g := make([]curve.Point, n)
	for i := 0; i < n; i++ {
		var idx curve.BaseField
		idx.SetUint64(uint64(i))
		sponge.Absorb(&idx)
		g[i] = groupmap.ToGroup(sponge.Squeeze())
	}

	var hTag curve.BaseField
	hTag.SetUint64(uint64(n))
	sponge.Absorb(&hTag)
	h := groupmap.ToGroup(sponge.Squeeze())

	return &SRS{N: n, G: g, H: h}
}

func absorbLabel(s *poseidon.SpongeFq, label string) {
	for _, b := range []byte(label) {
		var e curve.BaseField
		e.SetUint64(uint64(b))
		s.Absorb(&e)
	}
}

// WriteTo canonically encodes the SRS: N, then G, then H, then a blake2b-256
// checksum of the encoded points. gnark-crypto's own per-point decoding
// already rejects a malformed point; the checksum additionally lets
// ReadFrom detect points that decode cleanly but differ from what was
// written. ReadFrom checks it only after every point has been decoded.
func (s *SRS) WriteTo(w io.Writer) (int64, error) {
	checksum, err := checksumPoints(s.G, s.H)
	if err != nil {
		return 0, err
	}

	enc := curve.NewEncoder(w)
	if err := enc.Encode(uint64(s.N)); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(s.G); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(&s.H); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(checksum[:]); err != nil {
		return enc.BytesWritten(), err
	}
	return enc.BytesWritten(), nil
}

// ReadFrom decodes an SRS written by WriteTo and verifies its checksum.
func (s *SRS) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)

	var n uint64
	if err := dec.Decode(&n); err != nil {
		return dec.BytesRead(), err
	}
	g := make([]curve.Point, n)
	if err := dec.Decode(&g); err != nil {
		return dec.BytesRead(), err
	}
	var h curve.Point
	if err := dec.Decode(&h); err != nil {
		return dec.BytesRead(), err
	}
	var gotChecksum []byte
	if err := dec.Decode(&gotChecksum); err != nil {
		return dec.BytesRead(), err
	}

	wantChecksum, err := checksumPoints(g, h)
	if err != nil {
		return dec.BytesRead(), err
	}
	if string(gotChecksum) != string(wantChecksum[:]) {
		return dec.BytesRead(), fmt.Errorf("%w: SRS checksum mismatch, file is truncated or corrupted", errs.ErrDomainCreation)
	}

	s.N = int(n)
	s.G = g
	s.H = h
	return dec.BytesRead(), nil
}

func checksumPoints(g []curve.Point, h curve.Point) ([32]byte, error) {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, err
	}
	for i := range g {
		hasher.Write(g[i].Marshal())
	}
	hasher.Write(h.Marshal())
	var out [32]byte
	copy(out[:], hasher.Sum(nil))
	return out, nil
}
