package ops

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// epsClosure computes, for a single source state p, the shortest tropical
// distance to every state reachable from p through epsilon:epsilon arcs
// only. It is a Bellman-Ford relaxation rather than Dijkstra because the
// epsilon subgraph is not guaranteed non-negative -- only guaranteed free
// of negative cycles, which this function also detects.
func epsClosure(m *graph.Mutable, p uint32) (map[uint32]types.Weight, bool) {
	n := m.NumStates()
	dist := map[uint32]types.Weight{p: types.One}

	relax := func() bool {
		changed := false
		for q, dq := range copyDist(dist) {
			for _, a := range m.Arcs(q) {
				if !a.IsEpsilon() {
					continue
				}
				nd := dq + a.Weight
				if cur, ok := dist[a.NextState]; !ok || nd < cur {
					dist[a.NextState] = nd
					changed = true
				}
			}
		}
		return changed
	}

	for i := uint32(0); i < n; i++ {
		if !relax() {
			break
		}
	}
	// One extra pass: if anything still improves, there is a negative cycle
	// reachable from p.
	if relax() {
		return nil, false
	}
	return dist, true
}

func copyDist(d map[uint32]types.Weight) map[uint32]types.Weight {
	out := make(map[uint32]types.Weight, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// RmEpsilon returns a new, epsilon:epsilon-free transducer with the same
// language and weights as m. ok is false if m has a negative-weight
// epsilon cycle.
func RmEpsilon(m *graph.Mutable) (out *graph.Mutable, ok bool) {
	n := m.NumStates()
	out = graph.NewMutable()
	for s := uint32(0); s < n; s++ {
		out.AddState()
	}
	out.SetStart(m.Start())

	for p := uint32(0); p < n; p++ {
		closure, good := epsClosure(m, p)
		if !good {
			return nil, false
		}
		final := m.FinalWeight(p)
		for q, w := range closure {
			if m.IsFinal(q) {
				cand := w + m.FinalWeight(q)
				if cand < final {
					final = cand
				}
			}
			for _, a := range m.Arcs(q) {
				if a.IsEpsilon() {
					continue
				}
				out.AddArc(p, a.ILabel, a.OLabel, w+a.Weight, a.NextState)
			}
		}
		out.SetFinal(p, final)
	}
	return out, true
}
