package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/pkg/fst"
	"github.com/wfstlib/wfst/pkg/types"
)

func writeSampleTextFST(t *testing.T, path string) {
	t.Helper()
	tr := fst.New()
	defer tr.Close()
	s0 := tr.AddState()
	s1 := tr.AddState()
	require.NoError(t, tr.SetStart(s0))
	require.NoError(t, tr.SetFinal(s1, types.One))
	require.NoError(t, tr.AddArc(s0, 'a', 'a', types.One, s1))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, tr.WriteText(f, nil))
}

func TestRunConvertTextToBinaryRoundTrip(t *testing.T) {
	defer resetGlobalFlags()
	dir := t.TempDir()
	src := filepath.Join(dir, "in.fst")
	dst := filepath.Join(dir, "out.bin")
	writeSampleTextFST(t, src)

	require.NoError(t, runConvert([]string{src, dst}))

	got, err := loadTransducer(dst, nil)
	require.NoError(t, err)
	defer got.Close()
	require.Equal(t, uint32(2), got.NumStates())
}

func TestRunConvertMissingInputFails(t *testing.T) {
	defer resetGlobalFlags()
	dir := t.TempDir()
	err := runConvert([]string{filepath.Join(dir, "missing.fst"), filepath.Join(dir, "out.bin")})
	require.Error(t, err)
}

func TestRunInfoReportsCounts(t *testing.T) {
	defer resetGlobalFlags()
	dir := t.TempDir()
	src := filepath.Join(dir, "in.fst")
	writeSampleTextFST(t, src)

	out, err := captureOutput(t, func() error { return runInfo([]string{src}) })
	require.NoError(t, err)
	require.Contains(t, out, "States: 2")
	require.Contains(t, out, "Arcs: 1")
	require.Contains(t, out, "Final states: 1")
}

func TestRunInfoJSONOutput(t *testing.T) {
	defer resetGlobalFlags()
	jsonOut = true
	dir := t.TempDir()
	src := filepath.Join(dir, "in.fst")
	writeSampleTextFST(t, src)

	out, err := captureOutput(t, func() error { return runInfo([]string{src}) })
	require.NoError(t, err)
	require.Contains(t, out, `"num_states": 2`)
}

func TestRunCompileAndRunPrintStringRoundTrip(t *testing.T) {
	defer resetGlobalFlags()
	dir := t.TempDir()
	out := filepath.Join(dir, "compiled.fst")

	require.NoError(t, runCompile([]string{"c a t", "c a t", out}))

	printed, err := captureOutput(t, func() error { return runPrintString([]string{out}) })
	require.NoError(t, err)
	require.Contains(t, printed, "string: c a t")
}
