package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

func TestPutAndResolve(t *testing.T) {
	r := New()
	r.Lock()
	h := r.PutMutableLocked(graph.NewMutable())
	r.Unlock()

	r.Lock()
	m, ok := r.ResolveMutableLocked(h)
	r.Unlock()
	require.True(t, ok)
	require.NotNil(t, m)
}

func TestTypeConfusionRejected(t *testing.T) {
	r := New()
	r.Lock()
	h := r.PutFrozenLocked(graph.Freeze(graph.NewMutable()))
	r.Unlock()

	r.Lock()
	_, ok := r.ResolveMutableLocked(h)
	r.Unlock()
	require.False(t, ok, "a frozen handle must not resolve as mutable")
}

func TestInvalidHandleRejected(t *testing.T) {
	r := New()
	r.Lock()
	_, ok := r.ResolveMutableLocked(types.InvalidHandle)
	r.Unlock()
	require.False(t, ok)
}

func TestFreeIsNotRecycled(t *testing.T) {
	r := New()
	r.Lock()
	h := r.PutMutableLocked(graph.NewMutable())
	require.True(t, r.FreeLocked(h))
	require.False(t, r.FreeLocked(h), "double free must fail")
	_, ok := r.ResolveMutableLocked(h)
	r.Unlock()
	require.False(t, ok)

	// A subsequent allocation never reuses h.
	r.Lock()
	h2 := r.PutMutableLocked(graph.NewMutable())
	r.Unlock()
	require.NotEqual(t, h, h2)
}

func TestTeardownEmptiesRegistry(t *testing.T) {
	r := New()
	r.Lock()
	r.PutMutableLocked(graph.NewMutable())
	r.PutMutableLocked(graph.NewMutable())
	r.Unlock()
	require.Equal(t, 2, r.Len())

	r.Teardown()
	require.Equal(t, 0, r.Len())
}
