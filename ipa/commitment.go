// Package ipa implements the Bulletproofs-style inner-product-argument
// polynomial commitment scheme §4.1 specifies: commit (chunked MSM over an
// N-sized SRS), open (a log-round halving reduction that squeezes one
// challenge per round, producing a logarithm-sized proof), and verify
// (accumulating one batch's worth of proofs into a single multi-scalar-
// multiplication equation).
//
// Grounded directly on original_source/dlog/commitment/src/commitment.rs
// (`SRS::commit`/`SRS::open`/`SRS::verify`, `PolyComm`, `OpeningProof`,
// `b_poly`/`b_poly_coefficients`, `window_shamir`/`shamir_sum`), adapted to
// gnark-crypto's field/curve types and to `transcript.Transcript` in place
// of the original's `FqSponge` trait object.
package ipa

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/errs"
	"github.com/dlogzk/plonkipa/internal/msm"
	"github.com/dlogzk/plonkipa/srs"
)

// Commitment is a chunked commitment to a polynomial whose coefficient
// vector may be longer than the SRS: one commitment per N-sized chunk
// (Unshifted), plus an optional commitment to the last chunk shifted to the
// top of the SRS window (Shifted) when the polynomial carries a public
// degree bound.
type Commitment struct {
	Unshifted []curve.Point
	Shifted   *curve.Point
}

// CommitmentScheme binds an SRS and the MSM kernel used to evaluate it.
type CommitmentScheme struct {
	SRS    *srs.SRS
	Kernel msm.Kernel
}

// New builds a CommitmentScheme over s using the default (CPU) MSM kernel.
func New(s *srs.SRS) *CommitmentScheme {
	return &CommitmentScheme{SRS: s, Kernel: msm.Default}
}

// Commit commits to coeffs (a polynomial's coefficient vector, low degree
// first), chunked into ceil(len(coeffs)/N) segments. If degreeBound is
// non-nil and not a multiple of N, the last partial segment is additionally
// committed shifted to the right edge of the SRS window, so a verifier can
// check the degree bound algebraically (§4.1 "optional bounded commitment").
func (cs *CommitmentScheme) Commit(coeffs []curve.ScalarField, degreeBound *int) (*Commitment, error) {
	n := len(cs.SRS.G)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty SRS", errs.ErrDomainCreation)
	}

	numChunks := (len(coeffs) + n - 1) / n
	if numChunks == 0 {
		numChunks = 1
	}
	// Chunks are independent MSMs over the same SRS window, so they commit
	// concurrently rather than one at a time — errgroup.Group waits for every
	// chunk and surfaces the first error any MSM returned, instead of each
	// goroutine having to report through a channel by hand. It has no
	// context, so a failing chunk does not stop the others.
	unshifted := make([]curve.Point, numChunks)
	var g errgroup.Group
	for i := 0; i < numChunks; i++ {
		i := i
		start := i * n
		end := start + n
		if end > len(coeffs) {
			end = len(coeffs)
		}
		chunk := padTo(coeffs[start:end], n)
		g.Go(func() error {
			acc, err := cs.Kernel.MSM(cs.SRS.G, chunk)
			if err != nil {
				return fmt.Errorf("%w: %v", errs.ErrOracleCommit, err)
			}
			unshifted[i] = curve.JacToAffine(acc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var shifted *curve.Point
	if degreeBound != nil {
		m := *degreeBound
		if rem := m % n; rem != 0 {
			start := m - rem
			end := len(coeffs)
			if start > end {
				start = end
			}
			segment := padTo(coeffs[start:end], rem)
			acc, err := cs.Kernel.MSM(cs.SRS.G[n-rem:], segment)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", errs.ErrOracleCommit, err)
			}
			p := curve.JacToAffine(acc)
			shifted = &p
		}
	}

	return &Commitment{Unshifted: unshifted, Shifted: shifted}, nil
}

// padTo right-pads v with zero scalars to length n, copying rather than
// mutating the caller's slice.
func padTo(v []curve.ScalarField, n int) []curve.ScalarField {
	out := make([]curve.ScalarField, n)
	copy(out, v)
	return out
}
