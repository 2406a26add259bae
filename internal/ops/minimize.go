package ops

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// Minimize collapses equivalent states of a deterministic, epsilon-free
// transducer m via Hopcroft-style partition refinement, returning a fresh
// transducer. ok is false if m has an epsilon arc or a state with two
// out-arcs sharing the same input label, since minimization is only
// well-defined on deterministic input.
func Minimize(m *graph.Mutable) (out *graph.Mutable, ok bool) {
	n := m.NumStates()
	if !isDeterministicEpsilonFree(m) {
		return nil, false
	}

	// Initial partition: states grouped by final weight (non-final states
	// form their own class since +Inf is itself a distinct "weight").
	classOf := make([]int, n)
	classWeight := make(map[types.Weight]int)
	var classes [][]uint32
	for s := uint32(0); s < n; s++ {
		w := m.FinalWeight(s)
		id, ok := classWeight[w]
		if !ok {
			id = len(classes)
			classWeight[w] = id
			classes = append(classes, nil)
		}
		classes[id] = append(classes[id], s)
		classOf[s] = id
	}

	for {
		signature := func(s uint32) string {
			arcs := append([]types.Arc(nil), m.Arcs(s)...)
			sort.Slice(arcs, func(i, j int) bool { return arcLessByLabel(arcs[i], arcs[j]) })
			var b strings.Builder
			for _, a := range arcs {
				b.WriteString(strconv.FormatUint(uint64(a.ILabel), 36))
				b.WriteByte(':')
				b.WriteString(strconv.FormatUint(uint64(a.OLabel), 36))
				b.WriteByte(':')
				b.WriteString(strconv.FormatFloat(a.Weight, 'b', -1, 64))
				b.WriteByte(':')
				b.WriteString(strconv.Itoa(classOf[a.NextState]))
				b.WriteByte(',')
			}
			return b.String()
		}

		var newClasses [][]uint32
		newClassOf := make([]int, n)
		changed := false

		for _, cls := range classes {
			groups := make(map[string][]uint32)
			var order []string
			for _, s := range cls {
				sig := signature(s)
				if _, seen := groups[sig]; !seen {
					order = append(order, sig)
				}
				groups[sig] = append(groups[sig], s)
			}
			if len(order) > 1 {
				changed = true
			}
			sort.Strings(order)
			for _, sig := range order {
				id := len(newClasses)
				newClasses = append(newClasses, groups[sig])
				for _, s := range groups[sig] {
					newClassOf[s] = id
				}
			}
		}

		classes = newClasses
		classOf = newClassOf
		if !changed {
			break
		}
	}

	out = graph.NewMutable()
	for range classes {
		out.AddState()
	}
	// Representative: the lowest original state id in each class, for
	// deterministic tie-breaking independent of map iteration order.
	rep := make([]uint32, len(classes))
	for id, cls := range classes {
		best := cls[0]
		for _, s := range cls[1:] {
			if s < best {
				best = s
			}
		}
		rep[id] = best
	}

	if m.Start() != types.NoState {
		out.SetStart(uint32(classOf[m.Start()]))
	}
	for id, s := range rep {
		out.SetFinal(uint32(id), m.FinalWeight(s))
		for _, a := range m.Arcs(s) {
			out.AddArc(uint32(id), a.ILabel, a.OLabel, a.Weight, uint32(classOf[a.NextState]))
		}
	}
	return out, true
}

func isDeterministicEpsilonFree(m *graph.Mutable) bool {
	n := m.NumStates()
	for s := uint32(0); s < n; s++ {
		seen := make(map[types.Label]bool)
		for _, a := range m.Arcs(s) {
			if a.IsEpsilon() {
				return false
			}
			if seen[a.ILabel] {
				return false
			}
			seen[a.ILabel] = true
		}
	}
	return true
}

func arcLessByLabel(a, b types.Arc) bool {
	if a.ILabel != b.ILabel {
		return a.ILabel < b.ILabel
	}
	return a.OLabel < b.OLabel
}
