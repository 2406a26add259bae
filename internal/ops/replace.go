package ops

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// Rule is one grammar rule passed to Replace: a nonterminal label and the
// transducer fragment it expands to. Arcs in fragment whose ilabel matches
// some other rule's nonterminal are themselves expanded recursively.
type Rule struct {
	Nonterminal types.Label
	Fragment    *graph.Mutable
}

// Replace expands every occurrence of a nonterminal label in root, and
// transitively in each rule's own fragment, by substituting the matching
// rule's fragment in place, non-recursively: a nonterminal may not expand
// (directly or transitively) into itself. maxDepth caps expansion depth as
// a secondary guard. ok is false on a detected cycle or a depth overrun.
func Replace(root *graph.Mutable, rootNonterminal types.Label, rules []Rule, maxDepth int) (out *graph.Mutable, ok bool, cause *types.Error) {
	byLabel := make(map[types.Label]*graph.Mutable, len(rules))
	for _, r := range rules {
		byLabel[r.Nonterminal] = r.Fragment
	}

	active := make(map[types.Label]bool)
	var expand func(m *graph.Mutable, depth int) (*graph.Mutable, *types.Error)

	expand = func(m *graph.Mutable, depth int) (*graph.Mutable, *types.Error) {
		if depth > maxDepth {
			return nil, types.ErrRecursiveReplace
		}

		result := graph.NewMutable()
		delta := appendStates(result, m)
		if m.Start() != types.NoState {
			result.SetStart(m.Start() + delta)
		}

		n := m.NumStates()
		for s := uint32(0); s < n; s++ {
			rs := s + delta
			arcs := append([]types.Arc(nil), result.Arcs(rs)...)
			var kept []types.Arc
			for _, a := range arcs {
				frag, isNonterm := byLabel[a.ILabel]
				if !isNonterm {
					kept = append(kept, a)
					continue
				}
				if active[a.ILabel] {
					return nil, types.ErrRecursiveReplace
				}
				active[a.ILabel] = true
				expanded, err := expand(frag, depth+1)
				active[a.ILabel] = false
				if err != nil {
					return nil, err
				}

				subDelta := appendStates(result, expanded)
				entry := expanded.Start()
				if entry == types.NoState {
					// Nonterminal expands to the empty language: this arc
					// leads nowhere and is simply dropped.
					continue
				}
				kept = append(kept, types.Arc{ILabel: types.Epsilon, OLabel: types.Epsilon, Weight: a.Weight, NextState: entry + subDelta})

				en := expanded.NumStates()
				for es := uint32(0); es < en; es++ {
					if expanded.IsFinal(es) {
						result.AddArc(es+subDelta, types.Epsilon, types.Epsilon, expanded.FinalWeight(es), a.NextState)
						result.SetFinal(es+subDelta, types.Zero)
					}
				}
			}
			result.SetArcs(rs, kept)
		}

		return result, nil
	}

	active[rootNonterminal] = true
	expanded, err := expand(root, 0)
	if err != nil {
		return nil, false, err
	}
	return expanded, true, nil
}
