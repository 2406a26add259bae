package fstapi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/pkg/types"
)

func buildChain(e *Engine) uint32 {
	h := e.CreateMutable()
	s0, _ := e.AddState(h)
	s1, _ := e.AddState(h)
	e.SetStart(h, s0)
	e.SetFinal(h, s1, types.One)
	e.AddArc(h, s0, 'a', 'a', 1, s1)
	return h
}

func TestCreateFreeRoundTrip(t *testing.T) {
	e := NewEngine()
	h := e.CreateMutable()
	require.Nil(t, e.LastError())
	require.True(t, e.Free(h))

	require.False(t, e.Free(h))
	require.Equal(t, types.ErrBadHandle, e.LastError())
}

func TestAddStateSetStartSetFinal(t *testing.T) {
	e := NewEngine()
	h := buildChain(e)

	require.Equal(t, uint32(2), e.NumStates(h))
	require.Equal(t, uint32(0), e.Start(h))
	require.Equal(t, types.One, e.FinalWeight(h, 1))
}

func TestSetFinalRejectsNaN(t *testing.T) {
	e := NewEngine()
	h := e.CreateMutable()
	s0, _ := e.AddState(h)

	nan := types.Weight(0)
	nan = nan / nan
	require.False(t, e.SetFinal(h, s0, nan))
	require.Equal(t, types.ErrNaNWeight, e.LastError())
}

func TestBadHandleReportsError(t *testing.T) {
	e := NewEngine()
	require.Equal(t, uint32(0), e.NumStates(999))
	require.Equal(t, types.ErrBadHandle, e.LastError())
}

func TestAddArcAndGetArcs(t *testing.T) {
	e := NewEngine()
	h := buildChain(e)

	require.Equal(t, uint32(1), e.NumArcs(h, 0))

	buf := make([]types.Arc, 4)
	copied, total, ok := e.GetArcs(h, 0, buf)
	require.True(t, ok)
	require.Equal(t, 1, copied)
	require.Equal(t, uint32(1), total)
	require.Equal(t, types.Label('a'), buf[0].ILabel)
}

func TestFreezeThawPreservesShape(t *testing.T) {
	e := NewEngine()
	h := buildChain(e)

	fh, ok := e.Freeze(h)
	require.True(t, ok)
	require.Equal(t, e.NumStates(h), e.NumStates(fh))

	mh, ok := e.Thaw(fh)
	require.True(t, ok)
	require.True(t, e.AddArc(mh, 0, 'b', 'b', 1, 1))
}

func TestTeardownFreesAllHandles(t *testing.T) {
	e := NewEngine()
	h1 := buildChain(e)
	h2 := buildChain(e)

	e.Teardown()

	require.False(t, e.Free(h1))
	require.False(t, e.Free(h2))
}

func TestSaveLoadBinaryThroughEngine(t *testing.T) {
	e := NewEngine()
	h := buildChain(e)

	var buf bytes.Buffer
	require.True(t, e.SaveBinary(&buf, h))

	got, ok := e.LoadBinary(&buf)
	require.True(t, ok)
	require.Equal(t, e.NumStates(h), e.NumStates(got))
}

func TestCompileAndPrintStringThroughEngine(t *testing.T) {
	e := NewEngine()
	h := e.CompileString([]types.Label{'c', 'a', 't'}, []types.Label{'c', 'a', 't'})

	labels, _, ok := e.PrintString(h)
	require.True(t, ok)
	require.Equal(t, []types.Label{'c', 'a', 't'}, labels)
}

func TestPrintStringRejectsNonIdentityTransducer(t *testing.T) {
	e := NewEngine()
	h := e.CompileString([]types.Label{'c', 'a', 't'}, []types.Label{'d', 'o', 'g'})

	_, _, ok := e.PrintString(h)
	require.False(t, ok)
}
