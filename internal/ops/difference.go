package ops

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// Difference returns a \ b: the sub-transducer of a whose accepted input
// strings are rejected by b, treating b as an unweighted acceptor over
// a's input alphabet. b is first epsilon-removed and determinized, then
// completed (a dead state absorbs every label missing from a state's out-
// arcs) and complemented (final and non-final states swap), and the
// result is composed against a. ok is false if b has a negative epsilon
// cycle or is not determinizable.
func Difference(a, b *graph.Mutable, limits types.Limits) (out *graph.Mutable, ok bool, cause *types.Error) {
	bEpsFree, good := RmEpsilon(b)
	if !good {
		return nil, false, types.ErrNegativeCycle
	}

	bDet, detOK, detCause := Determinize(bEpsFree, limits)
	if !detOK {
		return nil, false, detCause
	}

	alphabet := inputAlphabet(a)
	complement := completeAndComplement(bDet, alphabet)

	return Compose(a, complement), true, nil
}

// inputAlphabet collects every distinct non-epsilon input label used by m.
func inputAlphabet(m *graph.Mutable) []types.Label {
	seen := make(map[types.Label]bool)
	n := m.NumStates()
	for s := uint32(0); s < n; s++ {
		for _, arc := range m.Arcs(s) {
			if arc.ILabel != types.Epsilon {
				seen[arc.ILabel] = true
			}
		}
	}
	out := make([]types.Label, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	return out
}

// completeAndComplement turns a deterministic acceptor m into the identity
// transducer for the complement language over alphabet, adding a dead
// state to absorb any label m has no out-arc for.
func completeAndComplement(m *graph.Mutable, alphabet []types.Label) *graph.Mutable {
	out := m.Clone()
	dead := out.AddState()
	for _, l := range alphabet {
		out.AddArc(dead, l, l, types.One, dead)
	}

	n := m.NumStates()
	for s := uint32(0); s < n; s++ {
		unweighted := append([]types.Arc(nil), out.Arcs(s)...)
		for i := range unweighted {
			unweighted[i].Weight = types.One
		}
		out.SetArcs(s, unweighted)

		have := make(map[types.Label]bool)
		for _, a := range m.Arcs(s) {
			have[a.ILabel] = true
		}
		for _, l := range alphabet {
			if !have[l] {
				out.AddArc(s, l, l, types.One, dead)
			}
		}
	}

	if out.Start() == types.NoState {
		out.SetStart(dead)
	}

	for s := uint32(0); s <= n; s++ {
		if out.IsFinal(s) {
			out.SetFinal(s, types.Zero)
		} else {
			out.SetFinal(s, types.One)
		}
	}

	return out
}
