package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/internal/strfst"
	"github.com/wfstlib/wfst/pkg/types"
)

func decodePath(p Path) (il, ol []types.Label) {
	for _, a := range p.Arcs {
		if a.ILabel != types.Epsilon {
			il = append(il, a.ILabel)
		}
		if a.OLabel != types.Epsilon {
			ol = append(ol, a.OLabel)
		}
	}
	return il, ol
}

func TestCDRewriteObligatoryNoContext(t *testing.T) {
	rule := CDRule{From: 'a', To: 'b'}
	m := CDRewrite([]types.Label{'a', 'x'}, rule, types.CDRewriteObligatory)

	arcs := m.Arcs(m.Start())
	require.Len(t, arcs, 2) // one per alphabet symbol
	for _, a := range arcs {
		switch a.ILabel {
		case 'a':
			require.Equal(t, types.Label('b'), a.OLabel)
		case 'x':
			require.Equal(t, types.Label('x'), a.OLabel)
		}
	}
}

func TestCDRewriteOptionalKeepsBothBranches(t *testing.T) {
	rule := CDRule{From: 'a', To: 'b'}
	m := CDRewrite([]types.Label{'a', 'x'}, rule, types.CDRewriteOptional)

	var rewritten, passthrough bool
	for _, a := range m.Arcs(m.Start()) {
		if a.ILabel != 'a' {
			continue
		}
		if a.OLabel == 'b' {
			rewritten = true
		}
		if a.OLabel == 'a' {
			passthrough = true
		}
	}
	require.True(t, rewritten)
	require.True(t, passthrough)
}

func TestCDRewriteRightContextSatisfied(t *testing.T) {
	rule := CDRule{From: 'a', To: 'b', RightContext: []types.Label{'y'}}
	m := CDRewrite([]types.Label{'a', 'b', 'x', 'y'}, rule, types.CDRewriteObligatory)

	input := strfst.CompileAcceptor([]types.Label{'a', 'y'})
	composed := Compose(input, m)

	paths, ok := Paths(composed, types.ShortestPathOptions{N: 1})
	require.True(t, ok)
	require.Len(t, paths, 1)

	il, ol := decodePath(paths[0])
	require.Equal(t, []types.Label{'a', 'y'}, il)
	require.Equal(t, []types.Label{'b', 'y'}, ol)
}

func TestCDRewriteRightContextUnsatisfied(t *testing.T) {
	rule := CDRule{From: 'a', To: 'b', RightContext: []types.Label{'y'}}
	m := CDRewrite([]types.Label{'a', 'b', 'x', 'y'}, rule, types.CDRewriteObligatory)

	input := strfst.CompileAcceptor([]types.Label{'a', 'x'})
	composed := Compose(input, m)

	paths, ok := Paths(composed, types.ShortestPathOptions{N: 1})
	require.True(t, ok)
	require.Len(t, paths, 1)

	il, ol := decodePath(paths[0])
	require.Equal(t, []types.Label{'a', 'x'}, il)
	require.Equal(t, []types.Label{'a', 'x'}, ol) // right context failed, no rewrite
}

func TestCDRewriteRightContextAtEndOfString(t *testing.T) {
	rule := CDRule{From: 'a', To: 'b', RightContext: []types.Label{'y'}}
	m := CDRewrite([]types.Label{'a', 'b', 'y'}, rule, types.CDRewriteObligatory)

	input := strfst.CompileAcceptor([]types.Label{'a'})
	composed := Compose(input, m)

	paths, ok := Paths(composed, types.ShortestPathOptions{N: 1})
	require.True(t, ok)
	require.Len(t, paths, 1)

	il, ol := decodePath(paths[0])
	require.Equal(t, []types.Label{'a'}, il)
	require.Equal(t, []types.Label{'a'}, ol) // no lookahead symbol, falls back
}
