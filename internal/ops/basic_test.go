package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

func twoStateChain(il, ol types.Label, w types.Weight) *graph.Mutable {
	m := graph.NewMutable()
	s0 := m.AddState()
	s1 := m.AddState()
	m.SetStart(s0)
	m.SetFinal(s1, types.One)
	m.AddArc(s0, il, ol, w, s1)
	return m
}

func TestInvertSwapsLabels(t *testing.T) {
	m := twoStateChain('a', 'b', 1)
	Invert(m)
	arcs := m.Arcs(0)
	require.Len(t, arcs, 1)
	require.Equal(t, types.Label('b'), arcs[0].ILabel)
	require.Equal(t, types.Label('a'), arcs[0].OLabel)
}

func TestProjectCollapsesToOneSide(t *testing.T) {
	m := twoStateChain('a', 'b', 1)
	Project(m, types.SideOutput)
	arcs := m.Arcs(0)
	require.Equal(t, types.Label('b'), arcs[0].ILabel)
	require.Equal(t, types.Label('b'), arcs[0].OLabel)
}

func TestUnionAcceptsEitherOperand(t *testing.T) {
	a := twoStateChain('a', 'a', 1)
	b := twoStateChain('b', 'b', 2)
	Union(a, b)

	require.NotEqual(t, types.NoState, a.Start())
	require.Equal(t, uint32(2), a.NumArcs(a.Start()))
}

func TestUnionSkipsEmptyOperand(t *testing.T) {
	a := twoStateChain('a', 'a', 1)
	b := graph.NewMutable() // no start state: empty language
	Union(a, b)
	require.Equal(t, uint32(1), a.NumArcs(a.Start()))
}

func TestConcatChainsLanguages(t *testing.T) {
	a := twoStateChain('a', 'a', 1)
	b := twoStateChain('b', 'b', 2)
	Concat(a, b)

	// a's old final state (1) is demoted and now has an epsilon arc into b.
	require.False(t, a.IsFinal(1))
	found := false
	for _, arc := range a.Arcs(1) {
		if arc.IsEpsilon() {
			found = true
		}
	}
	require.True(t, found)
}

func TestClosureStarAcceptsEmptyString(t *testing.T) {
	m := twoStateChain('a', 'a', 1)
	Closure(m, types.ClosureStar)
	require.True(t, m.IsFinal(m.Start()))
	require.Equal(t, types.One, m.FinalWeight(m.Start()))
}

func TestClosurePlusRequiresAtLeastOne(t *testing.T) {
	m := twoStateChain('a', 'a', 1)
	oldStart := m.Start()
	Closure(m, types.ClosurePlus)
	require.Equal(t, oldStart, m.Start())
	found := false
	for _, arc := range m.Arcs(1) {
		if arc.IsEpsilon() && arc.NextState == oldStart {
			found = true
		}
	}
	require.True(t, found)
}

func TestClosureQuestionAllowsAtMostOne(t *testing.T) {
	m := twoStateChain('a', 'a', 1)
	Closure(m, types.ClosureQuestion)
	require.True(t, m.IsFinal(m.Start()))
	require.Equal(t, uint32(1), m.NumArcs(m.Start()))
}
