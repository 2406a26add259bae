package ops

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// triple identifies a product state: A's state, B's state, and the
// epsilon-matching filter state.
type triple struct {
	a, b uint32
	f    types.EpsFilterState
}

// Compose builds the product transducer C recognizing (x, z) with weight
// min over y of w_A(x,y) + w_B(y,z). Exploration is reachable-only, via a
// worklist, states emitted to the output in the order first discovered.
func Compose(a, b *graph.Mutable) *graph.Mutable {
	out := graph.NewMutable()

	if a.Start() == types.NoState || b.Start() == types.NoState {
		return out
	}

	ids := make(map[triple]uint32)
	var worklist []triple

	start := triple{a.Start(), b.Start(), types.FilterBoth}
	ids[start] = out.AddState()
	out.SetStart(ids[start])
	worklist = append(worklist, start)

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		curID := ids[cur]

		if a.IsFinal(cur.a) && b.IsFinal(cur.b) {
			out.SetFinal(curID, a.FinalWeight(cur.a)+b.FinalWeight(cur.b))
		}

		step := func(next triple, il, ol types.Label, w types.Weight) {
			id, seen := ids[next]
			if !seen {
				id = out.AddState()
				ids[next] = id
				worklist = append(worklist, next)
			}
			out.AddArc(curID, il, ol, w, id)
		}

		for _, ea := range a.Arcs(cur.a) {
			for _, eb := range b.Arcs(cur.b) {
				if ea.OLabel == eb.ILabel && ea.OLabel != types.Epsilon {
					step(triple{ea.NextState, eb.NextState, types.FilterBoth}, ea.ILabel, eb.OLabel, ea.Weight+eb.Weight)
				}
			}
		}

		// eps2: A advances alone (its output is epsilon), B stays.
		if cur.f != types.FilterForbidEps2 {
			for _, ea := range a.Arcs(cur.a) {
				if ea.OLabel == types.Epsilon {
					step(triple{ea.NextState, cur.b, types.FilterForbidEps1}, ea.ILabel, types.Epsilon, ea.Weight)
				}
			}
		}

		// eps1: B advances alone (its input is epsilon), A stays.
		if cur.f != types.FilterForbidEps1 {
			for _, eb := range b.Arcs(cur.b) {
				if eb.ILabel == types.Epsilon {
					step(triple{cur.a, eb.NextState, types.FilterForbidEps2}, types.Epsilon, eb.OLabel, eb.Weight)
				}
			}
		}
	}

	return out
}
