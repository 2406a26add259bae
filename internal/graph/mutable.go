// Package graph holds the two graph-store representations: Mutable, a
// growable arc-list-per-state transducer used as the input and output of
// every operation, and Frozen, a packed read-only variant used for
// reentrant query and canonical save/load. Neither type validates weights
// (NaN rejection is a boundary-API concern); both validate state-index
// bounds, since a dangling arc would corrupt every downstream traversal.
package graph

import (
	"sort"

	"github.com/wfstlib/wfst/pkg/types"
)

type mutableState struct {
	final types.Weight
	arcs  []types.Arc
}

// Mutable is the growable transducer representation operations build into.
// Each state is a record with accessor methods, generalized from a single
// mmap-backed cell to an in-memory arc list.
type Mutable struct {
	states []mutableState
	start  uint32
}

// NewMutable returns an empty transducer: no states, start unset.
func NewMutable() *Mutable {
	return &Mutable{start: types.NoState}
}

// AddState allocates a state with final weight +Inf (non-final) and an
// empty arc list, returning its index.
func (m *Mutable) AddState() uint32 {
	m.states = append(m.states, mutableState{final: types.Zero})
	return uint32(len(m.states) - 1)
}

// NumStates returns the number of states.
func (m *Mutable) NumStates() uint32 {
	return uint32(len(m.states))
}

// valid reports whether s indexes an existing state.
func (m *Mutable) valid(s uint32) bool {
	return s < uint32(len(m.states))
}

// SetStart records s as the start state. Returns false if s is out of range.
func (m *Mutable) SetStart(s uint32) bool {
	if !m.valid(s) {
		return false
	}
	m.start = s
	return true
}

// Start returns the start state, or types.NoState if unset.
func (m *Mutable) Start() uint32 {
	return m.start
}

// ClearStart unsets the start state.
func (m *Mutable) ClearStart() {
	m.start = types.NoState
}

// SetFinal records w as s's final weight (+Inf marks non-final). Returns
// false if s is out of range.
func (m *Mutable) SetFinal(s uint32, w types.Weight) bool {
	if !m.valid(s) {
		return false
	}
	m.states[s].final = w
	return true
}

// FinalWeight returns s's final weight, or +Inf if s is out of range.
func (m *Mutable) FinalWeight(s uint32) types.Weight {
	if !m.valid(s) {
		return types.Zero
	}
	return m.states[s].final
}

// IsFinal reports whether s has a finite final weight.
func (m *Mutable) IsFinal(s uint32) bool {
	return m.valid(s) && m.states[s].final != types.Zero
}

// AddArc appends an arc to src's out-arc list. Returns false if src or dst
// is out of range.
func (m *Mutable) AddArc(src uint32, ilabel, olabel types.Label, w types.Weight, dst uint32) bool {
	if !m.valid(src) || !m.valid(dst) {
		return false
	}
	m.states[src].arcs = append(m.states[src].arcs, types.Arc{
		ILabel: ilabel, OLabel: olabel, Weight: w, NextState: dst,
	})
	return true
}

// NumArcs returns the number of out-arcs of s, or 0 if s is out of range.
func (m *Mutable) NumArcs(s uint32) uint32 {
	if !m.valid(s) {
		return 0
	}
	return uint32(len(m.states[s].arcs))
}

// NumArcsTotal sums NumArcs over every state.
func (m *Mutable) NumArcsTotal() uint64 {
	var n uint64
	for i := range m.states {
		n += uint64(len(m.states[i].arcs))
	}
	return n
}

// Arcs returns s's out-arc list directly (read-only by convention; callers
// that mutate it must go through SetArcs). Returns nil if s is out of range.
func (m *Mutable) Arcs(s uint32) []types.Arc {
	if !m.valid(s) {
		return nil
	}
	return m.states[s].arcs
}

// SetArcs replaces s's out-arc list wholesale. Used by operations that
// rewrite a state's arcs in place (invert, project, replace) and by code
// that fills a state's arcs in one step (the binary loader, Thaw).
func (m *Mutable) SetArcs(s uint32, arcs []types.Arc) bool {
	if !m.valid(s) {
		return false
	}
	m.states[s].arcs = arcs
	return true
}

// GetArcs copies min(NumArcs(s), len(buf)) arcs into buf and returns the
// true arc count, matching the boundary API's get_arcs(s, buf, cap)
// contract with len(buf) in the role of cap: the caller always learns the real count even when buf is
// smaller, so truncation is never silent.
func (m *Mutable) GetArcs(s uint32, buf []types.Arc) (copied int, total uint32) {
	if !m.valid(s) {
		return 0, 0
	}
	arcs := m.states[s].arcs
	n := copy(buf, arcs)
	return n, uint32(len(arcs))
}

// Clone returns a deep copy, used by operations that must not mutate their
// receiver in place (e.g. Difference completes a copy of its operand).
func (m *Mutable) Clone() *Mutable {
	out := &Mutable{start: m.start, states: make([]mutableState, len(m.states))}
	for i, st := range m.states {
		out.states[i].final = st.final
		if len(st.arcs) > 0 {
			out.states[i].arcs = append([]types.Arc(nil), st.arcs...)
		}
	}
	return out
}

// SortArcs reorders every state's out-arcs by (ilabel, olabel, nextstate,
// weight) ascending. Arc order is not semantically meaningful but must be
// stable across save/load, and several operations (minimize's signature
// comparison, the binary codec's canonical form) rely on a fixed order to
// compare or hash states.
func (m *Mutable) SortArcs() {
	for i := range m.states {
		arcs := m.states[i].arcs
		sort.Slice(arcs, func(a, b int) bool {
			return arcLess(arcs[a], arcs[b])
		})
	}
}

func arcLess(a, b types.Arc) bool {
	if a.ILabel != b.ILabel {
		return a.ILabel < b.ILabel
	}
	if a.OLabel != b.OLabel {
		return a.OLabel < b.OLabel
	}
	if a.NextState != b.NextState {
		return a.NextState < b.NextState
	}
	return a.Weight < b.Weight
}
