package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/internal/buf"
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

func sampleChain() *graph.Mutable {
	m := graph.NewMutable()
	s0 := m.AddState()
	s1 := m.AddState()
	s2 := m.AddState()
	m.SetStart(s0)
	m.SetFinal(s2, 1.5)
	m.AddArc(s0, 'a', 'b', 2, s1)
	m.AddArc(s1, 'c', 'd', types.One, s2)
	return m
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := sampleChain()

	var out bytes.Buffer
	require.NoError(t, Save(&out, m))

	got, err := Load(&out)
	require.NoError(t, err)

	require.Equal(t, m.Start(), got.Start())
	require.Equal(t, m.NumStates(), got.NumStates())
	require.Equal(t, types.Weight(1.5), got.FinalWeight(2))
	require.Equal(t, m.Arcs(0), got.Arcs(0))
	require.Equal(t, m.Arcs(1), got.Arcs(1))
}

func TestLoadRejectsBadMagic(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, buf.WriteU32(&out, 0xDEADBEEF))
	require.NoError(t, buf.WriteU32(&out, formatVersion))

	_, err := Load(&out)
	require.Equal(t, types.ErrBadMagic, err)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, buf.WriteU32(&out, magic))
	require.NoError(t, buf.WriteU32(&out, formatVersion+1))

	_, err := Load(&out)
	require.Error(t, err)
}

func TestLoadRejectsTruncatedArcTable(t *testing.T) {
	m := sampleChain()

	var out bytes.Buffer
	require.NoError(t, Save(&out, m))

	truncated := bytes.NewBuffer(out.Bytes()[:out.Len()-4])
	_, err := Load(truncated)
	require.Error(t, err)
}

func TestLoadRejectsShortHeader(t *testing.T) {
	_, err := Load(bytes.NewBufferString("x"))
	require.Error(t, err)
}

func TestSaveFrozenMatchesSave(t *testing.T) {
	m := sampleChain()
	f := graph.Freeze(m)

	var viaMutable, viaFrozen bytes.Buffer
	require.NoError(t, Save(&viaMutable, m))
	require.NoError(t, SaveFrozen(&viaFrozen, f))

	require.Equal(t, viaMutable.Bytes(), viaFrozen.Bytes())
}
