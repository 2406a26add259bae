package symtab

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/pkg/types"
)

func TestNewSeedsEpsilon(t *testing.T) {
	tab := New()
	require.Equal(t, 1, tab.Len())

	sym, ok := tab.Symbol(types.Epsilon)
	require.True(t, ok)
	require.Equal(t, "<eps>", sym)

	lbl, ok := tab.Label("<eps>")
	require.True(t, ok)
	require.Equal(t, types.Epsilon, lbl)
}

func TestAddSymbolAssignsFreshLabels(t *testing.T) {
	tab := New()
	a := tab.AddSymbol("a")
	b := tab.AddSymbol("b")
	require.NotEqual(t, a, b)
	require.NotEqual(t, types.Epsilon, a)
	require.NotEqual(t, types.Epsilon, b)
	require.Equal(t, 3, tab.Len())
}

func TestAddSymbolIsIdempotent(t *testing.T) {
	tab := New()
	first := tab.AddSymbol("x")
	second := tab.AddSymbol("x")
	require.Equal(t, first, second)
	require.Equal(t, 2, tab.Len())
}

func TestSymbolAndLabelLookup(t *testing.T) {
	tab := New()
	lbl := tab.AddSymbol("cat")

	sym, ok := tab.Symbol(lbl)
	require.True(t, ok)
	require.Equal(t, "cat", sym)

	got, ok := tab.Label("cat")
	require.True(t, ok)
	require.Equal(t, lbl, got)

	_, ok = tab.Label("dog")
	require.False(t, ok)
}

func TestWriteReadRoundTrip(t *testing.T) {
	tab := New()
	tab.AddSymbol("cat")
	tab.AddSymbol("dog")

	var buf bytes.Buffer
	require.NoError(t, tab.Write(&buf))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, tab.Len(), got.Len())

	for _, sym := range []string{"<eps>", "cat", "dog"} {
		wantLbl, ok := tab.Label(sym)
		require.True(t, ok)
		gotLbl, ok := got.Label(sym)
		require.True(t, ok)
		require.Equal(t, wantLbl, gotLbl)
	}
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := Read(bytes.NewBufferString("no-tab-here\n"))
	require.Error(t, err)
}

func TestReadRejectsNonNumericLabel(t *testing.T) {
	_, err := Read(bytes.NewBufferString("cat\tabc\n"))
	require.Error(t, err)
}

func TestReadAdvancesNextPastLoadedLabels(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("cat\t500\n")

	tab, err := Read(&buf)
	require.NoError(t, err)

	next := tab.AddSymbol("dog")
	require.Greater(t, next, types.Label(500))
}
