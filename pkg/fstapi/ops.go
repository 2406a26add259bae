package fstapi

import (
	"github.com/wfstlib/wfst/internal/ops"
	"github.com/wfstlib/wfst/pkg/types"
)

// Invert swaps input and output labels on the transducer behind h, in
// place.
func (e *Engine) Invert(h uint32) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return false
	}
	ops.Invert(m)
	e.ok()
	return true
}

// Project collapses the transducer behind h to an acceptor over side, in
// place.
func (e *Engine) Project(h uint32, side types.Side) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return false
	}
	ops.Project(m, side)
	e.ok()
	return true
}

// Union mutates the transducer behind a into a ∪ b, in place. b is left
// untouched and remains independently valid.
func (e *Engine) Union(a, b uint32) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	ma, foundA := e.resolveMutable(a)
	mb, foundB := e.resolveMutable(b)
	if !foundA || !foundB {
		e.fail(types.ErrBadHandle)
		return false
	}
	ops.Union(ma, mb)
	e.ok()
	return true
}

// Concat mutates the transducer behind a into a · b, in place.
func (e *Engine) Concat(a, b uint32) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	ma, foundA := e.resolveMutable(a)
	mb, foundB := e.resolveMutable(b)
	if !foundA || !foundB {
		e.fail(types.ErrBadHandle)
		return false
	}
	ops.Concat(ma, mb)
	e.ok()
	return true
}

// Closure mutates the transducer behind h into one of the Kleene-closure
// variants, in place.
func (e *Engine) Closure(h uint32, kind types.ClosureType) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return false
	}
	ops.Closure(m, kind)
	e.ok()
	return true
}

// RmEpsilon builds and returns the handle of an epsilon-free equivalent
// of the transducer behind h.
func (e *Engine) RmEpsilon(h uint32) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	out, good := ops.RmEpsilon(m)
	if !good {
		e.fail(types.ErrNegativeCycle)
		return types.InvalidHandle, false
	}
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh, true
}

// Compose builds and returns the handle of a ∘ b.
func (e *Engine) Compose(a, b uint32) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	ma, foundA := e.resolveMutable(a)
	mb, foundB := e.resolveMutable(b)
	if !foundA || !foundB {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	out := ops.Compose(ma, mb)
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh, true
}

// Determinize builds and returns the handle of a deterministic equivalent
// of the transducer behind h.
func (e *Engine) Determinize(h uint32, opts types.DeterminizeOptions) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	out, good, cause := ops.Determinize(m, opts.Limits)
	if !good {
		e.fail(cause)
		return types.InvalidHandle, false
	}
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh, true
}

// Minimize builds and returns the handle of a minimal equivalent of the
// deterministic, epsilon-free transducer behind h.
func (e *Engine) Minimize(h uint32) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	out, good := ops.Minimize(m)
	if !good {
		e.fail(types.ErrNotDeterministic)
		return types.InvalidHandle, false
	}
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh, true
}

// ShortestPath builds and returns the handle of the transducer whose
// language is the opts.N lowest-weight accepting paths of the transducer
// behind h, ordered by total weight.
func (e *Engine) ShortestPath(h uint32, opts types.ShortestPathOptions) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	out, good := ops.ShortestPath(m, opts)
	if !good {
		e.fail(types.ErrNegativeWeight)
		return types.InvalidHandle, false
	}
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh, true
}

// ShortestPathPaths is a convenience that extracts the same opts.N
// lowest-weight accepting paths as ShortestPath, as a decoded path list
// rather than a transducer handle. It does not replace ShortestPath's
// transducer result; it exists for callers (the CLI, tests) that want the
// paths directly instead of re-decoding the returned transducer.
func (e *Engine) ShortestPathPaths(h uint32, opts types.ShortestPathOptions) (paths []ops.Path, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return nil, false
	}
	paths, good := ops.Paths(m, opts)
	if !good {
		e.fail(types.ErrNegativeWeight)
		return nil, false
	}
	e.ok()
	return paths, true
}

// Difference builds and returns the handle of a \ b.
func (e *Engine) Difference(a, b uint32, limits types.Limits) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	ma, foundA := e.resolveMutable(a)
	mb, foundB := e.resolveMutable(b)
	if !foundA || !foundB {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	out, good, cause := ops.Difference(ma, mb, limits)
	if !good {
		e.fail(cause)
		return types.InvalidHandle, false
	}
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh, true
}

// ReplaceRule is one nonterminal-expansion rule, naming the fragment's
// handle rather than embedding the transducer itself.
type ReplaceRule struct {
	Nonterminal types.Label
	Fragment    uint32
}

// Replace expands every occurrence of a nonterminal in the transducer
// behind rootHandle (and transitively in each rule's own fragment) by the
// matching rule's fragment.
func (e *Engine) Replace(rootHandle uint32, rootNonterminal types.Label, rules []ReplaceRule, maxDepth int) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	root, found := e.resolveMutable(rootHandle)
	if !found {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	resolved := make([]ops.Rule, 0, len(rules))
	for _, r := range rules {
		frag, found := e.resolveMutable(r.Fragment)
		if !found {
			e.fail(types.ErrBadHandle)
			return types.InvalidHandle, false
		}
		resolved = append(resolved, ops.Rule{Nonterminal: r.Nonterminal, Fragment: frag})
	}
	out, good, cause := ops.Replace(root, rootNonterminal, resolved, maxDepth)
	if !good {
		e.fail(cause)
		return types.InvalidHandle, false
	}
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh, true
}

// CDRewrite builds and returns the handle of the context-dependent
// rewrite transducer for rule over alphabet.
func (e *Engine) CDRewrite(alphabet []types.Label, rule ops.CDRule, mode types.CDRewriteMode) uint32 {
	e.reg.Lock()
	defer e.reg.Unlock()
	out := ops.CDRewrite(alphabet, rule, mode)
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh
}

// Optimize runs rm-epsilon -> determinize -> minimize on the transducer
// behind h and returns the result's handle. When determinize fails, the
// handle is that of the epsilon-free intermediate; only an rm-epsilon
// failure makes the call fail.
func (e *Engine) Optimize(h uint32, limits types.Limits) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return types.InvalidHandle, false
	}
	out, cause := ops.Optimize(m, limits)
	if out == nil {
		e.fail(cause)
		return types.InvalidHandle, false
	}
	oh := e.reg.PutMutableLocked(out)
	e.ok()
	return oh, true
}
