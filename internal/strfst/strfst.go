// Package strfst builds and extracts linear-chain transducers: the
// compile_string / print_string half of the engine, for representing a
// single weighted (input, output) string pair as a minimal-state FST.
package strfst

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// CompileAcceptor builds the linear-chain acceptor for labels: state i has
// one arc labels[i]:labels[i] to state i+1, weight One throughout, and the
// last state final with weight One.
func CompileAcceptor(labels []types.Label) *graph.Mutable {
	return CompileTransducer(labels, labels)
}

// CompileTransducer builds the linear-chain transducer mapping ilabels to
// olabels. When the two sequences differ in length, the shorter is padded
// with Epsilon, so arcs past its end advance only the longer tape by one
// symbol while the others advance both -- a chain of length
// max(len(ilabels), len(olabels)).
func CompileTransducer(ilabels, olabels []types.Label) *graph.Mutable {
	n := len(ilabels)
	if len(olabels) > n {
		n = len(olabels)
	}

	m := graph.NewMutable()
	start := m.AddState()
	m.SetStart(start)

	cur := start
	for i := 0; i < n; i++ {
		il := types.Epsilon
		if i < len(ilabels) {
			il = ilabels[i]
		}
		ol := types.Epsilon
		if i < len(olabels) {
			ol = olabels[i]
		}
		next := m.AddState()
		m.AddArc(cur, il, ol, types.One, next)
		cur = next
	}
	m.SetFinal(cur, types.One)
	return m
}

// PrintLinearPath extracts the single string encoded by m, for a
// transducer produced by (or shaped like) CompileAcceptor: a chain with
// exactly one out-arc per non-final state and no branching, every arc an
// identity arc (ILabel == OLabel) with no Epsilon label on either side.
// ok is false if m is not such a chain: ambiguous out-degree, unreachable
// final state, a cycle, an input/output mismatch, or an Epsilon label --
// any of these mean m has no single string to print.
func PrintLinearPath(m *graph.Mutable) (labels []types.Label, weight types.Weight, ok bool) {
	if m.Start() == types.NoState {
		return nil, 0, false
	}

	s := m.Start()
	limit := m.NumStates() + 1
	weight = types.One

	for steps := uint32(0); ; steps++ {
		if steps > limit {
			return nil, 0, false
		}
		if m.IsFinal(s) {
			arcs := m.Arcs(s)
			if len(arcs) == 0 {
				weight += m.FinalWeight(s)
				return labels, weight, true
			}
			if len(arcs) > 1 {
				return nil, 0, false
			}
		}
		arcs := m.Arcs(s)
		if len(arcs) != 1 {
			return nil, 0, false
		}
		a := arcs[0]
		if a.ILabel == types.Epsilon || a.OLabel == types.Epsilon || a.ILabel != a.OLabel {
			return nil, 0, false
		}
		labels = append(labels, a.ILabel)
		weight += a.Weight
		s = a.NextState
	}
}
