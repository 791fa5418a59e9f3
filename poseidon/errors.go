package poseidon

import (
	"fmt"

	"github.com/dlogzk/plonkipa/errs"
)

var errOracleCommitInfinity = fmt.Errorf("%w: point at infinity", errs.ErrOracleCommit)
