// Package ops implements the automaton operation suite: the state-product,
// subset-construction, partition-refinement, and priority-queue-relaxation
// algorithms that transform one or more Mutable transducers into another.
// Every exported function takes and returns *graph.Mutable (never a
// handle); pkg/fstapi and pkg/fst are the only callers, and they resolve
// handles to graphs (under the registry mutex) before reaching here.
package ops

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// appendStates copies every state of src onto the end of dst, shifting arc
// targets by the renumbering delta |dst|, and returns that delta. Used by
// Union, Concat, and Replace.
func appendStates(dst, src *graph.Mutable) uint32 {
	delta := dst.NumStates()
	n := src.NumStates()
	for s := uint32(0); s < n; s++ {
		dst.AddState()
	}
	for s := uint32(0); s < n; s++ {
		dst.SetFinal(s+delta, src.FinalWeight(s))
		arcs := src.Arcs(s)
		shifted := make([]types.Arc, len(arcs))
		for i, a := range arcs {
			shifted[i] = types.Arc{
				ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight,
				NextState: a.NextState + delta,
			}
		}
		dst.SetArcs(s+delta, shifted)
	}
	return delta
}
