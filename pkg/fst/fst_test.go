package fst

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/pkg/types"
)

func buildLinear(t *testing.T, il, ol types.Label, w types.Weight) *Transducer {
	tr := New()
	s0 := tr.AddState()
	s1 := tr.AddState()
	require.NoError(t, tr.SetStart(s0))
	require.NoError(t, tr.SetFinal(s1, types.One))
	require.NoError(t, tr.AddArc(s0, il, ol, w, s1))
	return tr
}

func TestNewTransducerBasics(t *testing.T) {
	tr := New()
	defer tr.Close()

	s0 := tr.AddState()
	s1 := tr.AddState()
	require.NoError(t, tr.SetStart(s0))
	require.NoError(t, tr.SetFinal(s1, types.One))
	require.NoError(t, tr.AddArc(s0, 'a', 'a', types.One, s1))

	require.Equal(t, uint32(2), tr.NumStates())
	require.Equal(t, s0, tr.Start())
	require.Equal(t, types.One, tr.FinalWeight(s1))

	arcs := tr.Arcs(s0)
	require.Len(t, arcs, 1)
	require.Equal(t, types.Label('a'), arcs[0].ILabel)
}

func TestCompileStringThenPrintString(t *testing.T) {
	tr := CompileString([]types.Label{'c', 'a', 't'}, []types.Label{'c', 'a', 't'})
	defer tr.Close()

	labels, _, err := tr.PrintString()
	require.NoError(t, err)
	require.Equal(t, []types.Label{'c', 'a', 't'}, labels)
}

func TestPrintStringRejectsNonIdentityTransducer(t *testing.T) {
	tr := CompileString([]types.Label{'c', 'a', 't'}, []types.Label{'c', 'a', 't', 's'})
	defer tr.Close()

	_, _, err := tr.PrintString()
	require.Error(t, err)
}

func TestUnionOfSingletonsAcceptsEither(t *testing.T) {
	a := buildLinear(t, 'x', 'x', types.One)
	defer a.Close()
	b := buildLinear(t, 'y', 'y', types.One)
	defer b.Close()

	require.NoError(t, a.Union(b))

	paths, err := a.NBestPaths(types.ShortestPathOptions{N: 2})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	var sawX, sawY bool
	for _, p := range paths {
		if len(p.ILabels) == 1 && p.ILabels[0] == 'x' {
			sawX = true
		}
		if len(p.ILabels) == 1 && p.ILabels[0] == 'y' {
			sawY = true
		}
	}
	require.True(t, sawX)
	require.True(t, sawY)
}

func TestConcatChainsLanguages(t *testing.T) {
	a := buildLinear(t, 'x', 'x', types.One)
	defer a.Close()
	b := buildLinear(t, 'y', 'y', types.One)
	defer b.Close()

	require.NoError(t, a.Concat(b))

	paths, err := a.NBestPaths(types.ShortestPathOptions{N: 1})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []types.Label{'x', 'y'}, paths[0].ILabels)
}

func TestClosureStarAcceptsEmptyString(t *testing.T) {
	tr := buildLinear(t, 'x', 'x', types.One)
	defer tr.Close()

	require.NoError(t, tr.Closure(types.ClosureStar))
	require.Equal(t, types.One, tr.FinalWeight(tr.Start()))
}

func TestDeterminizeWeightedFanOutTakesMin(t *testing.T) {
	tr := New()
	defer tr.Close()
	s0 := tr.AddState()
	s1 := tr.AddState()
	require.NoError(t, tr.SetStart(s0))
	require.NoError(t, tr.SetFinal(s1, types.One))
	require.NoError(t, tr.AddArc(s0, 'a', 'a', 3, s1))
	require.NoError(t, tr.AddArc(s0, 'a', 'a', 1, s1))

	det, err := tr.Determinize(types.DeterminizeOptions{Limits: types.DefaultLimits()})
	require.NoError(t, err)
	defer det.Close()

	paths, err := det.NBestPaths(types.ShortestPathOptions{N: 1})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, types.Weight(1), paths[0].Weight) // cheaper fan-out weight; final weight is One (0)
}

func TestShortestPathNBestDiamond(t *testing.T) {
	tr := New()
	defer tr.Close()
	s0 := tr.AddState()
	s1 := tr.AddState()
	s2 := tr.AddState()
	s3 := tr.AddState()
	require.NoError(t, tr.SetStart(s0))
	require.NoError(t, tr.SetFinal(s3, types.One))
	require.NoError(t, tr.AddArc(s0, 'a', 'a', 1, s1))
	require.NoError(t, tr.AddArc(s1, 'b', 'b', 1, s3))
	require.NoError(t, tr.AddArc(s0, 'c', 'c', 1, s2))
	require.NoError(t, tr.AddArc(s2, 'd', 'd', 5, s3))

	paths, err := tr.NBestPaths(types.ShortestPathOptions{N: 2})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.Equal(t, types.Weight(2), paths[0].Weight)
	require.Equal(t, types.Weight(6), paths[1].Weight)
}

func TestShortestPathReturnsUnionTransducer(t *testing.T) {
	tr := New()
	defer tr.Close()
	s0 := tr.AddState()
	s1 := tr.AddState()
	s2 := tr.AddState()
	s3 := tr.AddState()
	require.NoError(t, tr.SetStart(s0))
	require.NoError(t, tr.SetFinal(s3, types.One))
	require.NoError(t, tr.AddArc(s0, 'a', 'a', 2, s1))
	require.NoError(t, tr.AddArc(s1, 'a', 'a', 0, s3))
	require.NoError(t, tr.AddArc(s0, 'a', 'a', 5, s2))
	require.NoError(t, tr.AddArc(s2, 'a', 'a', 0, s3))

	out, err := tr.ShortestPath(types.ShortestPathOptions{N: 2})
	require.NoError(t, err)
	defer out.Close()

	// A fresh start state reachable by neither of the original paths, with
	// one ε:ε weight-One arc leading into each of the two extracted chains.
	branches := out.Arcs(out.Start())
	require.Len(t, branches, 2)
	for _, b := range branches {
		require.Equal(t, types.Epsilon, b.ILabel)
		require.Equal(t, types.Epsilon, b.OLabel)
		require.Equal(t, types.One, b.Weight)
	}

	paths, err := out.NBestPaths(types.ShortestPathOptions{N: 2})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.Equal(t, types.Weight(2), paths[0].Weight)
	require.Equal(t, types.Weight(5), paths[1].Weight)
}

func TestComposeThenShortestPath(t *testing.T) {
	a := buildLinear(t, 'x', 'y', types.One)
	defer a.Close()
	b := buildLinear(t, 'y', 'z', types.One)
	defer b.Close()

	out, err := a.Compose(b)
	require.NoError(t, err)
	defer out.Close()

	paths, err := out.NBestPaths(types.ShortestPathOptions{N: 1})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []types.Label{'x'}, paths[0].ILabels)
	require.Equal(t, []types.Label{'z'}, paths[0].OLabels)
}

func TestReplaceThroughFacade(t *testing.T) {
	const nt types.Label = 4242
	const root types.Label = 4243

	rootTr := New()
	defer rootTr.Close()
	r0 := rootTr.AddState()
	r1 := rootTr.AddState()
	require.NoError(t, rootTr.SetStart(r0))
	require.NoError(t, rootTr.SetFinal(r1, types.One))
	require.NoError(t, rootTr.AddArc(r0, nt, nt, types.One, r1))

	frag := New()
	defer frag.Close()
	f0 := frag.AddState()
	f1 := frag.AddState()
	require.NoError(t, frag.SetStart(f0))
	require.NoError(t, frag.SetFinal(f1, types.One))
	require.NoError(t, frag.AddArc(f0, 'q', 'q', types.One, f1))

	out, err := rootTr.Replace(root, []Rule{{Nonterminal: nt, Fragment: frag}}, 16)
	require.NoError(t, err)
	defer out.Close()

	paths, err := out.NBestPaths(types.ShortestPathOptions{N: 1})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []types.Label{'q'}, paths[0].ILabels)
}

func TestCDRewriteThroughFacade(t *testing.T) {
	tr := CDRewrite([]types.Label{'a', 'b'}, CDRule{From: 'a', To: 'b'}, types.CDRewriteObligatory)
	defer tr.Close()
	require.Greater(t, tr.NumStates(), uint32(0))
}

func TestSaveLoadBinaryThroughFacade(t *testing.T) {
	tr := buildLinear(t, 'a', 'a', types.One)
	defer tr.Close()

	var buf bytes.Buffer
	require.NoError(t, tr.Save(&buf))

	got, err := Load(&buf)
	require.NoError(t, err)
	defer got.Close()
	require.Equal(t, tr.NumStates(), got.NumStates())
}

func TestWriteTextReadTextThroughFacade(t *testing.T) {
	tr := buildLinear(t, 'a', 'a', types.One)
	defer tr.Close()

	syms := NewSymbolTable()
	var buf bytes.Buffer
	require.NoError(t, tr.WriteText(&buf, syms))

	got, err := ReadText(&buf, syms)
	require.NoError(t, err)
	defer got.Close()
	require.Equal(t, tr.NumStates(), got.NumStates())
}

func TestSaveAndLoadSymbolTable(t *testing.T) {
	syms := NewSymbolTable()
	syms.AddSymbol("cat")

	var buf bytes.Buffer
	require.NoError(t, SaveSymbolTable(&buf, syms))

	got, err := LoadSymbolTable(&buf)
	require.NoError(t, err)
	lbl, ok := got.Label("cat")
	require.True(t, ok)
	origLbl, _ := syms.Label("cat")
	require.Equal(t, origLbl, lbl)
}
