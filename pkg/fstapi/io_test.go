package fstapi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/internal/symtab"
	"github.com/wfstlib/wfst/pkg/types"
)

func TestWriteTextReadTextThroughEngine(t *testing.T) {
	e := NewEngine()
	h := e.CreateMutable()
	s0, _ := e.AddState(h)
	s1, _ := e.AddState(h)
	e.SetStart(h, s0)
	e.SetFinal(h, s1, types.One)
	e.AddArc(h, s0, 'a', 'a', types.One, s1)

	var buf bytes.Buffer
	require.True(t, e.WriteText(&buf, h, nil))

	got, ok := e.ReadText(&buf, nil)
	require.True(t, ok)
	require.Equal(t, e.NumStates(h), e.NumStates(got))
}

func TestWriteTextReadTextWithSymbolsThroughEngine(t *testing.T) {
	e := NewEngine()
	syms := symtab.New()
	cat := syms.AddSymbol("cat")
	dog := syms.AddSymbol("dog")

	h := e.CreateMutable()
	s0, _ := e.AddState(h)
	s1, _ := e.AddState(h)
	e.SetStart(h, s0)
	e.SetFinal(h, s1, types.One)
	e.AddArc(h, s0, cat, dog, types.One, s1)

	var buf bytes.Buffer
	require.True(t, e.WriteText(&buf, h, syms))
	require.Contains(t, buf.String(), "cat\tdog")

	got, ok := e.ReadText(&buf, syms)
	require.True(t, ok)
	arcBuf := make([]types.Arc, 1)
	_, _, ok2 := e.GetArcs(got, 0, arcBuf)
	require.True(t, ok2)
	require.Equal(t, cat, arcBuf[0].ILabel)
	require.Equal(t, dog, arcBuf[0].OLabel)
}

func TestReadTextBadDataReportsError(t *testing.T) {
	e := NewEngine()
	_, ok := e.ReadText(bytes.NewBufferString("cat\tdog\n"), nil)
	require.False(t, ok)
	require.NotNil(t, e.LastError())
}

func TestLoadBinaryBadDataReportsError(t *testing.T) {
	e := NewEngine()
	_, ok := e.LoadBinary(bytes.NewBufferString("not a real binary"))
	require.False(t, ok)
	require.Equal(t, types.ErrBadMagic, e.LastError())
}
