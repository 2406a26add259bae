// Package registry implements the process-wide handle table: a single
// mutex-guarded map from opaque uint32 handles to owned graph objects of
// two kinds, mutable and frozen. It never recycles a handle value, which
// sidesteps generation-tag complexity entirely -- simpler, and sufficient
// given uint32 handle space is never exhausted by any realistic caller.
//
// Follows a handle-wrapping discipline where every accessor takes an opaque
// handle and resolves it before touching the underlying object, generalized
// from a single C-library handle kind to the registry's two first-class Go
// kinds.
package registry

import (
	"sync"

	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// Kind distinguishes the two handle families the registry manages.
type Kind int

const (
	KindMutable Kind = iota
	KindFrozen
)

type entry struct {
	kind    Kind
	mutable *graph.Mutable
	frozen  *graph.Frozen
}

// Registry is the process-wide handle table. The zero value is not usable;
// construct with New.
type Registry struct {
	mu      sync.Mutex
	entries map[uint32]entry
	next    uint32
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[uint32]entry)}
}

// Lock acquires the registry's single mutex. Every boundary API call must
// bracket its work between Lock and Unlock.
func (r *Registry) Lock() { r.mu.Lock() }

// Unlock releases the mutex acquired by Lock.
func (r *Registry) Unlock() { r.mu.Unlock() }

// allocLocked reserves the next handle value. Caller must hold the lock.
func (r *Registry) allocLocked() uint32 {
	h := r.next
	r.next++
	return h
}

// PutMutableLocked stores m under a freshly allocated handle. Caller must
// hold the lock.
func (r *Registry) PutMutableLocked(m *graph.Mutable) uint32 {
	h := r.allocLocked()
	r.entries[h] = entry{kind: KindMutable, mutable: m}
	return h
}

// PutFrozenLocked stores f under a freshly allocated handle. Caller must
// hold the lock.
func (r *Registry) PutFrozenLocked(f *graph.Frozen) uint32 {
	h := r.allocLocked()
	r.entries[h] = entry{kind: KindFrozen, frozen: f}
	return h
}

// ResolveMutableLocked returns the Mutable behind handle h, or
// (nil, false) if h is invalid, freed, or names a Frozen handle (type
// confusion is rejected). Caller must hold the lock.
func (r *Registry) ResolveMutableLocked(h uint32) (*graph.Mutable, bool) {
	if h == types.InvalidHandle {
		return nil, false
	}
	e, ok := r.entries[h]
	if !ok || e.kind != KindMutable {
		return nil, false
	}
	return e.mutable, true
}

// ResolveFrozenLocked returns the Frozen behind handle h, or (nil, false)
// on any mismatch. Caller must hold the lock.
func (r *Registry) ResolveFrozenLocked(h uint32) (*graph.Frozen, bool) {
	if h == types.InvalidHandle {
		return nil, false
	}
	e, ok := r.entries[h]
	if !ok || e.kind != KindFrozen {
		return nil, false
	}
	return e.frozen, true
}

// KindOfLocked reports h's kind and whether it resolves at all.
func (r *Registry) KindOfLocked(h uint32) (Kind, bool) {
	e, ok := r.entries[h]
	return e.kind, ok
}

// FreeLocked removes h from the table. Returns false if h did not resolve.
// The slot is never reused (see package doc), so a subsequent call with the
// same h always fails, just as a stale handle from before Teardown does.
func (r *Registry) FreeLocked(h uint32) bool {
	if _, ok := r.entries[h]; !ok {
		return false
	}
	delete(r.entries, h)
	return true
}

// Teardown acquires the mutex, releases every live transducer, and empties
// the registry. The caller must ensure no other call is in flight;
// Teardown does not itself prevent a call that runs right after it from
// finding every handle gone.
func (r *Registry) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[uint32]entry)
}

// Len reports the number of live handles. Test/diagnostic use only.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
