package graph

import (
	"sort"

	"github.com/wfstlib/wfst/pkg/types"
)

// Frozen is the packed, read-only transducer representation produced by
// Freeze. Arcs for all states live in one contiguous slice, addressed by
// per-state (offset, count), generalized from a packed-cell disk layout to
// in-memory slice offsets. A Frozen value has no exported mutators: every field is
// written once, in Freeze, and never again, which is what makes concurrent
// reads safe without a mutex (the boundary API still takes the registry
// mutex around every call, but the data itself does not need it).
type Frozen struct {
	final   []types.Weight
	offsets []uint32 // len(states)+1; state s's arcs are arcs[offsets[s]:offsets[s+1]]
	arcs    []types.Arc
	start   uint32
}

// Freeze converts a Mutable snapshot into a Frozen one. It imposes the
// canonical arc order required for bit-identical save/load: ascending by
// (ilabel, olabel, nextstate, weight).
func Freeze(m *Mutable) *Frozen {
	n := len(m.states)
	f := &Frozen{
		final:   make([]types.Weight, n),
		offsets: make([]uint32, n+1),
		start:   m.start,
	}
	var total uint32
	for i, st := range m.states {
		f.final[i] = st.final
		total += uint32(len(st.arcs))
	}
	f.arcs = make([]types.Arc, 0, total)
	for i, st := range m.states {
		f.offsets[i] = uint32(len(f.arcs))
		sorted := append([]types.Arc(nil), st.arcs...)
		sort.Slice(sorted, func(a, b int) bool { return arcLess(sorted[a], sorted[b]) })
		f.arcs = append(f.arcs, sorted...)
	}
	f.offsets[n] = uint32(len(f.arcs))
	return f
}

// NumStates returns the number of states.
func (f *Frozen) NumStates() uint32 {
	if len(f.offsets) == 0 {
		return 0
	}
	return uint32(len(f.offsets) - 1)
}

// Start returns the start state, or types.NoState if unset.
func (f *Frozen) Start() uint32 {
	return f.start
}

func (f *Frozen) valid(s uint32) bool {
	return s < f.NumStates()
}

// FinalWeight returns s's final weight, or +Inf if s is out of range.
func (f *Frozen) FinalWeight(s uint32) types.Weight {
	if !f.valid(s) {
		return types.Zero
	}
	return f.final[s]
}

// IsFinal reports whether s has a finite final weight.
func (f *Frozen) IsFinal(s uint32) bool {
	return f.valid(s) && f.final[s] != types.Zero
}

// NumArcs returns the number of out-arcs of s.
func (f *Frozen) NumArcs(s uint32) uint32 {
	if !f.valid(s) {
		return 0
	}
	return f.offsets[s+1] - f.offsets[s]
}

// Arcs returns s's packed out-arc slice directly (read-only).
func (f *Frozen) Arcs(s uint32) []types.Arc {
	if !f.valid(s) {
		return nil
	}
	return f.arcs[f.offsets[s]:f.offsets[s+1]]
}

// GetArcs copies min(NumArcs(s), len(buf)) arcs into buf and returns the
// true arc count (same contract as Mutable.GetArcs).
func (f *Frozen) GetArcs(s uint32, buf []types.Arc) (copied int, total uint32) {
	if !f.valid(s) {
		return 0, 0
	}
	arcs := f.Arcs(s)
	n := copy(buf, arcs)
	return n, uint32(len(arcs))
}

// Thaw returns a Mutable copy of f, for operations that only accept a
// Mutable receiver (e.g. in-place basic operations).
func (f *Frozen) Thaw() *Mutable {
	m := NewMutable()
	m.start = f.start
	n := f.NumStates()
	for s := uint32(0); s < n; s++ {
		m.AddState()
		m.SetFinal(s, f.final[s])
		m.SetArcs(s, append([]types.Arc(nil), f.Arcs(s)...))
	}
	return m
}
