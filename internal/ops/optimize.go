package ops

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// Optimize runs the standard rm-epsilon -> determinize -> minimize
// pipeline. rm-epsilon failure (a negative-weight epsilon cycle) is fatal
// and reported immediately. Determinize or minimize failure falls back to
// the best result reached so far: determinize failure returns the
// epsilon-free transducer, and minimize failure (the input was not
// deterministic and epsilon-free to begin with, which should not happen
// here but is checked defensively) returns the determinized one.
func Optimize(m *graph.Mutable, limits types.Limits) (out *graph.Mutable, cause *types.Error) {
	epsFree, ok := RmEpsilon(m)
	if !ok {
		return nil, types.ErrNegativeCycle
	}

	det, detOK, detCause := Determinize(epsFree, limits)
	if !detOK {
		return epsFree, detCause
	}

	min, minOK := Minimize(det)
	if !minOK {
		return det, nil
	}

	return min, nil
}
