package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

func TestRmEpsilonCollapsesChain(t *testing.T) {
	m := graph.NewMutable()
	s0 := m.AddState()
	s1 := m.AddState()
	s2 := m.AddState()
	m.SetStart(s0)
	m.SetFinal(s2, types.One)
	m.AddArc(s0, types.Epsilon, types.Epsilon, 1, s1)
	m.AddArc(s1, 'a', 'a', 2, s2)

	out, ok := RmEpsilon(m)
	require.True(t, ok)

	arcs := out.Arcs(s0)
	require.Len(t, arcs, 1)
	require.Equal(t, types.Weight(3), arcs[0].Weight)
	require.Equal(t, s2, arcs[0].NextState)
}

func TestRmEpsilonPullsFinalityThroughEpsilon(t *testing.T) {
	m := graph.NewMutable()
	s0 := m.AddState()
	s1 := m.AddState()
	m.SetStart(s0)
	m.SetFinal(s1, 5)
	m.AddArc(s0, types.Epsilon, types.Epsilon, 2, s1)

	out, ok := RmEpsilon(m)
	require.True(t, ok)
	require.True(t, out.IsFinal(s0))
	require.Equal(t, types.Weight(7), out.FinalWeight(s0))
}

func TestRmEpsilonDetectsNegativeCycle(t *testing.T) {
	m := graph.NewMutable()
	s0 := m.AddState()
	s1 := m.AddState()
	m.SetStart(s0)
	m.AddArc(s0, types.Epsilon, types.Epsilon, -1, s1)
	m.AddArc(s1, types.Epsilon, types.Epsilon, -1, s0)

	_, ok := RmEpsilon(m)
	require.False(t, ok)
}

func TestRmEpsilonLeavesEpsilonFreeInputUnchanged(t *testing.T) {
	m := twoStateChain('a', 'a', 1)
	out, ok := RmEpsilon(m)
	require.True(t, ok)
	require.Equal(t, m.NumStates(), out.NumStates())
	require.ElementsMatch(t, m.Arcs(0), out.Arcs(0))
}
