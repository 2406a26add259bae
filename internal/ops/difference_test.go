package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// acceptorOver builds a single-label acceptor for lbl.
func acceptorOver(lbl types.Label) *graph.Mutable {
	m := graph.NewMutable()
	s0 := m.AddState()
	s1 := m.AddState()
	m.SetStart(s0)
	m.SetFinal(s1, types.One)
	m.AddArc(s0, lbl, lbl, types.One, s1)
	return m
}

func TestDifferenceRemovesExcludedString(t *testing.T) {
	a := acceptorOver('a') // accepts "a"
	b := acceptorOver('a') // b also accepts "a"; a \ b should accept nothing

	out, ok, cause := Difference(a, b, types.DefaultLimits())
	require.True(t, ok)
	require.Nil(t, cause)

	paths, pathOK := Paths(out, types.ShortestPathOptions{N: 1})
	require.True(t, pathOK)
	require.Empty(t, paths)
}

func TestDifferenceKeepsUnexcludedString(t *testing.T) {
	a := acceptorOver('a')
	b := acceptorOver('c') // b accepts "c", not "a"

	out, ok, cause := Difference(a, b, types.DefaultLimits())
	require.True(t, ok)
	require.Nil(t, cause)

	paths, pathOK := Paths(out, types.ShortestPathOptions{N: 1})
	require.True(t, pathOK)
	require.Len(t, paths, 1)
}

func TestDifferencePropagatesNegativeCycle(t *testing.T) {
	a := acceptorOver('a')
	b := graph.NewMutable()
	s0 := b.AddState()
	s1 := b.AddState()
	b.SetStart(s0)
	b.AddArc(s0, types.Epsilon, types.Epsilon, -1, s1)
	b.AddArc(s1, types.Epsilon, types.Epsilon, -1, s0)

	_, ok, cause := Difference(a, b, types.DefaultLimits())
	require.False(t, ok)
	require.Equal(t, types.ErrNegativeCycle, cause)
}
