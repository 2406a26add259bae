package ops

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// Invert swaps the input and output label of every arc, in place.
func Invert(m *graph.Mutable) {
	n := m.NumStates()
	for s := uint32(0); s < n; s++ {
		arcs := m.Arcs(s)
		out := make([]types.Arc, len(arcs))
		for i, a := range arcs {
			out[i] = types.Arc{ILabel: a.OLabel, OLabel: a.ILabel, Weight: a.Weight, NextState: a.NextState}
		}
		m.SetArcs(s, out)
	}
}

// Project collapses the transducer to an acceptor over one label side, in
// place. Idempotent: projecting an already-projected side is a no-op since
// ilabel == olabel on every arc afterward.
func Project(m *graph.Mutable, side types.Side) {
	n := m.NumStates()
	for s := uint32(0); s < n; s++ {
		arcs := m.Arcs(s)
		out := make([]types.Arc, len(arcs))
		for i, a := range arcs {
			var lbl types.Label
			if side == types.SideInput {
				lbl = a.ILabel
			} else {
				lbl = a.OLabel
			}
			out[i] = types.Arc{ILabel: lbl, OLabel: lbl, Weight: a.Weight, NextState: a.NextState}
		}
		m.SetArcs(s, out)
	}
}

// Union mutates a in place into a ∪ b. A fresh start state is
// introduced with epsilon arcs of weight 0 to each operand's original start;
// an operand whose start is unset contributes the empty language and is
// simply skipped.
func Union(a, b *graph.Mutable) {
	oldAStart := a.Start()
	delta := appendStates(a, b)
	newStart := a.AddState()
	if oldAStart != types.NoState {
		a.AddArc(newStart, types.Epsilon, types.Epsilon, types.One, oldAStart)
	}
	if b.Start() != types.NoState {
		a.AddArc(newStart, types.Epsilon, types.Epsilon, types.One, b.Start()+delta)
	}
	a.SetStart(newStart)
}

// Concat mutates a in place into a · b. Every state that was
// final in a before the call is demoted to non-final and gains an
// epsilon arc (weighted by its old final weight) into b's renumbered start;
// b's final states (shifted) become the result's final states. An a-final
// state is simply demoted with no outgoing arc when b's start is unset
// (b's language is empty, so no continuation exists).
func Concat(a, b *graph.Mutable) {
	type finalState struct {
		s uint32
		w types.Weight
	}
	var finals []finalState
	n := a.NumStates()
	for s := uint32(0); s < n; s++ {
		if a.IsFinal(s) {
			finals = append(finals, finalState{s, a.FinalWeight(s)})
		}
	}

	bStart := b.Start()
	delta := appendStates(a, b)

	for _, f := range finals {
		a.SetFinal(f.s, types.Zero)
		if bStart != types.NoState {
			a.AddArc(f.s, types.Epsilon, types.Epsilon, f.w, bStart+delta)
		}
	}
}

// Closure mutates m in place into one of the three Kleene-closure variants.
func Closure(m *graph.Mutable, kind types.ClosureType) {
	oldStart := m.Start()

	if kind == types.ClosurePlus || kind == types.ClosureStar {
		n := m.NumStates()
		if oldStart != types.NoState {
			for s := uint32(0); s < n; s++ {
				if m.IsFinal(s) {
					m.AddArc(s, types.Epsilon, types.Epsilon, m.FinalWeight(s), oldStart)
				}
			}
		}
	}

	if kind == types.ClosureStar || kind == types.ClosureQuestion {
		newStart := m.AddState()
		m.SetFinal(newStart, types.One)
		if oldStart != types.NoState {
			m.AddArc(newStart, types.Epsilon, types.Epsilon, types.One, oldStart)
		}
		m.SetStart(newStart)
	}
}
