package ops

import (
	"container/heap"

	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// Path is one extracted shortest path: the arc sequence from start to a
// final state, the final weight of that last state, and the total
// tropical weight (arc weights plus FinalWeight).
type Path struct {
	Arcs        []types.Arc
	FinalWeight types.Weight
	Weight      types.Weight
}

type pqItem struct {
	state  uint32
	weight types.Weight
	arcs   []types.Arc // arcs taken to reach state, for path reconstruction
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPath extracts up to opts.N lowest-weight accepting paths from m
// and builds the transducer whose language is exactly those paths: a
// fresh start with an ε:ε 0-weight arc into each path's own linear chain,
// the chains otherwise disjoint. Requires non-negative arc and final
// weights; ok is false otherwise.
func ShortestPath(m *graph.Mutable, opts types.ShortestPathOptions) (out *graph.Mutable, ok bool) {
	paths, ok := Paths(m, opts)
	if !ok {
		return nil, false
	}
	return pathUnion(paths), true
}

// pathUnion builds the union-of-linear-chains transducer for paths, per
// the N-best construction: one fresh start state, an ε:ε weight-One arc
// from it into each path's own chain of states.
func pathUnion(paths []Path) *graph.Mutable {
	out := graph.NewMutable()
	start := out.AddState()
	out.SetStart(start)
	for _, p := range paths {
		branchStart := out.AddState()
		out.AddArc(start, types.Epsilon, types.Epsilon, types.One, branchStart)
		cur := branchStart
		for _, a := range p.Arcs {
			next := out.AddState()
			out.AddArc(cur, a.ILabel, a.OLabel, a.Weight, next)
			cur = next
		}
		out.SetFinal(cur, p.FinalWeight)
	}
	return out
}

// Paths extracts up to opts.N lowest-weight accepting paths from m via a
// priority-queue relaxation (Dijkstra for N=1, generalized to an N-best
// pop-and-expand for N>1), without building the union transducer. It is a
// convenience for callers that want the paths directly (e.g. for printing
// or further decoding); ShortestPath's transducer result is the primary,
// authoritative N-best output. Requires non-negative arc and final
// weights; ok is false otherwise.
func Paths(m *graph.Mutable, opts types.ShortestPathOptions) (paths []Path, ok bool) {
	n := m.NumStates()
	for s := uint32(0); s < n; s++ {
		if m.FinalWeight(s) < 0 {
			return nil, false
		}
		for _, a := range m.Arcs(s) {
			if a.Weight < 0 {
				return nil, false
			}
		}
	}

	if m.Start() == types.NoState || opts.N <= 0 {
		return nil, true
	}

	pq := &priorityQueue{{state: m.Start(), weight: types.One}}
	heap.Init(pq)

	// visits bounds how many times the queue may pop a given state: N is
	// sufficient for N-best since no more than N distinct best paths can
	// route through any single state's onward subtree.
	visits := make(map[uint32]int)
	seenStrings := make(map[string]bool)

	for pq.Len() > 0 && len(paths) < opts.N {
		item := heap.Pop(pq).(pqItem)

		if visits[item.state] >= opts.N {
			continue
		}
		visits[item.state]++

		if m.IsFinal(item.state) {
			final := m.FinalWeight(item.state)
			total := item.weight + final
			dup := false
			if opts.Unique {
				key := pathSignature(item.arcs)
				dup = seenStrings[key]
				seenStrings[key] = true
			}
			if !dup {
				paths = append(paths, Path{Arcs: append([]types.Arc(nil), item.arcs...), FinalWeight: final, Weight: total})
			}
			if len(paths) >= opts.N {
				break
			}
		}

		for _, a := range m.Arcs(item.state) {
			nextArcs := make([]types.Arc, len(item.arcs)+1)
			copy(nextArcs, item.arcs)
			nextArcs[len(item.arcs)] = a
			heap.Push(pq, pqItem{state: a.NextState, weight: item.weight + a.Weight, arcs: nextArcs})
		}
	}

	return paths, true
}

func pathSignature(arcs []types.Arc) string {
	b := make([]byte, 0, len(arcs)*8)
	for _, a := range arcs {
		b = append(b, byte(a.ILabel), byte(a.ILabel>>8), byte(a.ILabel>>16), byte(a.ILabel>>24))
		b = append(b, byte(a.OLabel), byte(a.OLabel>>8), byte(a.OLabel>>16), byte(a.OLabel>>24))
	}
	return string(b)
}
