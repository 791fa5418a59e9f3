// Package msm defines the pluggable batched multi-scalar-multiplication
// kernel §9 calls out as "the single performance-critical kernel... MUST be
// pluggable (Pippenger or window-NAF) and parallelisable."
//
// The default Kernel delegates to gnark-crypto's own parallel MultiExp
// (Pippenger-family under the hood). A GPU kernel (the teacher depends on
// ingonyama-zk/iciclegnark for exactly this) would implement the same
// interface; we don't wire that dependency in directly because we cannot
// exercise real GPU bindings here (see DESIGN.md) — the seam is what
// matters, not a specific backend.
package msm

import "github.com/dlogzk/plonkipa/curve"

// Kernel computes a batched multi-scalar multiplication.
type Kernel interface {
	MSM(points []curve.Point, scalars []curve.ScalarField) (*curve.Jac, error)
}

// CPUKernel is the default Kernel, backed by gnark-crypto's MultiExp.
type CPUKernel struct {
	// NbTasks bounds the parallelism gnark-crypto's MultiExp is allowed to
	// use; zero means "let gnark-crypto choose" (its own GOMAXPROCS default).
	NbTasks int
}

func (k CPUKernel) MSM(points []curve.Point, scalars []curve.ScalarField) (*curve.Jac, error) {
	cfg := curve.MultiExpConfig{NbTasks: k.NbTasks}
	return curve.MultiExp(points, scalars, cfg)
}

// Default is the Kernel used when no other is configured.
var Default Kernel = CPUKernel{}
