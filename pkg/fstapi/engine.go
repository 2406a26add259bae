package fstapi

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/internal/registry"
	"github.com/wfstlib/wfst/pkg/types"
)

// Engine owns the handle table and the last error from the most recent
// call. Every exported method locks the same mutex the registry uses, so
// there is never more than one call's error to attribute LastError to.
type Engine struct {
	reg     *registry.Registry
	lastErr *types.Error
}

// NewEngine returns a ready-to-use, empty Engine.
func NewEngine() *Engine {
	return &Engine{reg: registry.New()}
}

// LastError returns the error from the most recent call that failed, or
// nil if the most recent call succeeded.
func (e *Engine) LastError() *types.Error {
	e.reg.Lock()
	defer e.reg.Unlock()
	return e.lastErr
}

func (e *Engine) fail(err *types.Error) {
	e.lastErr = err
}

func (e *Engine) ok() {
	e.lastErr = nil
}

// CreateMutable allocates a new, empty mutable transducer and returns its
// handle.
func (e *Engine) CreateMutable() uint32 {
	e.reg.Lock()
	defer e.reg.Unlock()
	h := e.reg.PutMutableLocked(graph.NewMutable())
	e.ok()
	return h
}

// Free releases the transducer behind h. Returns false if h did not
// resolve to a live handle.
func (e *Engine) Free(h uint32) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	if !e.reg.FreeLocked(h) {
		e.fail(types.ErrBadHandle)
		return false
	}
	e.ok()
	return true
}

// Teardown releases every live handle. For process shutdown and tests.
func (e *Engine) Teardown() {
	e.reg.Teardown()
}

// AddState allocates a new state on the mutable transducer behind h.
func (e *Engine) AddState(h uint32) (state uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.reg.ResolveMutableLocked(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return 0, false
	}
	e.ok()
	return m.AddState(), true
}

// NumStates returns the number of states of the transducer (mutable or
// frozen) behind h, or 0 if h does not resolve.
func (e *Engine) NumStates(h uint32) uint32 {
	e.reg.Lock()
	defer e.reg.Unlock()
	if m, found := e.reg.ResolveMutableLocked(h); found {
		e.ok()
		return m.NumStates()
	}
	if f, found := e.reg.ResolveFrozenLocked(h); found {
		e.ok()
		return f.NumStates()
	}
	e.fail(types.ErrBadHandle)
	return 0
}

// SetStart records s as the start state of the mutable transducer behind
// h.
func (e *Engine) SetStart(h, s uint32) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.reg.ResolveMutableLocked(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return false
	}
	if !m.SetStart(s) {
		e.fail(types.ErrBadState)
		return false
	}
	e.ok()
	return true
}

// Start returns the start state of the transducer behind h, or
// types.NoState if h does not resolve or no start is set.
func (e *Engine) Start(h uint32) uint32 {
	e.reg.Lock()
	defer e.reg.Unlock()
	if m, found := e.reg.ResolveMutableLocked(h); found {
		e.ok()
		return m.Start()
	}
	if f, found := e.reg.ResolveFrozenLocked(h); found {
		e.ok()
		return f.Start()
	}
	e.fail(types.ErrBadHandle)
	return types.NoState
}

// SetFinal records w as state s's final weight on the mutable transducer
// behind h. w must not be NaN.
func (e *Engine) SetFinal(h, s uint32, w types.Weight) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	if w != w { // NaN
		e.fail(types.ErrNaNWeight)
		return false
	}
	m, found := e.reg.ResolveMutableLocked(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return false
	}
	if !m.SetFinal(s, w) {
		e.fail(types.ErrBadState)
		return false
	}
	e.ok()
	return true
}

// FinalWeight returns state s's final weight on the transducer behind h.
func (e *Engine) FinalWeight(h, s uint32) types.Weight {
	e.reg.Lock()
	defer e.reg.Unlock()
	if m, found := e.reg.ResolveMutableLocked(h); found {
		e.ok()
		return m.FinalWeight(s)
	}
	if f, found := e.reg.ResolveFrozenLocked(h); found {
		e.ok()
		return f.FinalWeight(s)
	}
	e.fail(types.ErrBadHandle)
	return types.Zero
}

// AddArc appends an arc from src to dst on the mutable transducer behind
// h. w must not be NaN.
func (e *Engine) AddArc(h, src uint32, il, ol types.Label, w types.Weight, dst uint32) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	if w != w { // NaN
		e.fail(types.ErrNaNWeight)
		return false
	}
	m, found := e.reg.ResolveMutableLocked(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return false
	}
	if !m.AddArc(src, il, ol, w, dst) {
		e.fail(types.ErrBadState)
		return false
	}
	e.ok()
	return true
}

// NumArcs returns the out-degree of state s on the transducer behind h.
func (e *Engine) NumArcs(h, s uint32) uint32 {
	e.reg.Lock()
	defer e.reg.Unlock()
	if m, found := e.reg.ResolveMutableLocked(h); found {
		e.ok()
		return m.NumArcs(s)
	}
	if f, found := e.reg.ResolveFrozenLocked(h); found {
		e.ok()
		return f.NumArcs(s)
	}
	e.fail(types.ErrBadHandle)
	return 0
}

// GetArcs copies up to len(buf) of state s's out-arcs into buf and
// reports the true arc count; the caller learns the real count even when
// buf is smaller, so truncation is never silent.
func (e *Engine) GetArcs(h, s uint32, buf []types.Arc) (copied int, total uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	if m, found := e.reg.ResolveMutableLocked(h); found {
		c, t := m.GetArcs(s, buf)
		e.ok()
		return c, t, true
	}
	if f, found := e.reg.ResolveFrozenLocked(h); found {
		c, t := f.GetArcs(s, buf)
		e.ok()
		return c, t, true
	}
	e.fail(types.ErrBadHandle)
	return 0, 0, false
}

// Freeze produces a read-only snapshot of the mutable transducer behind h
// and returns its handle. The original mutable handle remains valid and
// independent.
func (e *Engine) Freeze(h uint32) (frozenHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.reg.ResolveMutableLocked(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	fh := e.reg.PutFrozenLocked(graph.Freeze(m))
	e.ok()
	return fh, true
}

// Thaw produces a mutable copy of the frozen transducer behind h and
// returns its handle.
func (e *Engine) Thaw(h uint32) (mutableHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	f, found := e.reg.ResolveFrozenLocked(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	mh := e.reg.PutMutableLocked(f.Thaw())
	e.ok()
	return mh, true
}

// resolveMutable is a helper for the ops.go/io.go methods in this package.
func (e *Engine) resolveMutable(h uint32) (*graph.Mutable, bool) {
	return e.reg.ResolveMutableLocked(h)
}
