package fst

import (
	"github.com/wfstlib/wfst/internal/ops"
	"github.com/wfstlib/wfst/pkg/fstapi"
	"github.com/wfstlib/wfst/pkg/types"
)

// Invert swaps input and output labels, in place.
func (t *Transducer) Invert() error {
	if !engine.Invert(t.h) {
		return lastErr()
	}
	return nil
}

// Project collapses the transducer to an acceptor over side, in place.
func (t *Transducer) Project(side types.Side) error {
	if !engine.Project(t.h, side) {
		return lastErr()
	}
	return nil
}

// Union mutates t in place into t ∪ other.
func (t *Transducer) Union(other *Transducer) error {
	if !engine.Union(t.h, other.h) {
		return lastErr()
	}
	return nil
}

// Concat mutates t in place into t · other.
func (t *Transducer) Concat(other *Transducer) error {
	if !engine.Concat(t.h, other.h) {
		return lastErr()
	}
	return nil
}

// Closure mutates t in place into one of the Kleene-closure variants.
func (t *Transducer) Closure(kind types.ClosureType) error {
	if !engine.Closure(t.h, kind) {
		return lastErr()
	}
	return nil
}

// RmEpsilon returns a new, epsilon-free equivalent of t.
func (t *Transducer) RmEpsilon() (*Transducer, error) {
	return wrap(engine.RmEpsilon(t.h))
}

// Compose returns t ∘ other.
func (t *Transducer) Compose(other *Transducer) (*Transducer, error) {
	return wrap(engine.Compose(t.h, other.h))
}

// Determinize returns a deterministic equivalent of t.
func (t *Transducer) Determinize(opts types.DeterminizeOptions) (*Transducer, error) {
	return wrap(engine.Determinize(t.h, opts))
}

// Minimize returns a minimal equivalent of the deterministic, epsilon-free
// transducer t.
func (t *Transducer) Minimize() (*Transducer, error) {
	return wrap(engine.Minimize(t.h))
}

// Path is one extracted shortest path: aligned input/output label
// sequences and the path's total weight.
type Path struct {
	ILabels []types.Label
	OLabels []types.Label
	Weight  types.Weight
}

// ShortestPath returns the transducer whose language is the opts.N
// lowest-weight accepting paths of t, ordered by total weight: a fresh
// start with an ε:ε arc into each path's own linear chain.
func (t *Transducer) ShortestPath(opts types.ShortestPathOptions) (*Transducer, error) {
	return wrap(engine.ShortestPath(t.h, opts))
}

// NBestPaths is a convenience that extracts the same opts.N lowest-weight
// accepting paths as ShortestPath, as decoded label sequences rather than
// a transducer. It does not replace ShortestPath's transducer result.
func (t *Transducer) NBestPaths(opts types.ShortestPathOptions) ([]Path, error) {
	raw, ok := engine.ShortestPathPaths(t.h, opts)
	if !ok {
		return nil, lastErr()
	}
	out := make([]Path, len(raw))
	for i, p := range raw {
		var il, ol []types.Label
		for _, a := range p.Arcs {
			if a.ILabel != types.Epsilon {
				il = append(il, a.ILabel)
			}
			if a.OLabel != types.Epsilon {
				ol = append(ol, a.OLabel)
			}
		}
		out[i] = Path{ILabels: il, OLabels: ol, Weight: p.Weight}
	}
	return out, nil
}

// Difference returns t \ other, treating other as an unweighted acceptor
// over t's input alphabet.
func (t *Transducer) Difference(other *Transducer, limits types.Limits) (*Transducer, error) {
	return wrap(engine.Difference(t.h, other.h, limits))
}

// Rule is one nonterminal-expansion rule for Replace.
type Rule struct {
	Nonterminal types.Label
	Fragment    *Transducer
}

// Replace expands every occurrence of a nonterminal in t (and
// transitively in each rule's own fragment) by the matching rule's
// fragment, non-recursively.
func (t *Transducer) Replace(rootNonterminal types.Label, rules []Rule, maxDepth int) (*Transducer, error) {
	resolved := make([]fstapi.ReplaceRule, len(rules))
	for i, r := range rules {
		resolved[i] = fstapi.ReplaceRule{Nonterminal: r.Nonterminal, Fragment: r.Fragment.h}
	}
	return wrap(engine.Replace(t.h, rootNonterminal, resolved, maxDepth))
}

// CDRule is a single context-dependent rewrite rule.
type CDRule struct {
	From, To     types.Label
	LeftContext  []types.Label
	RightContext []types.Label
}

// CDRewrite builds the transducer implementing rule over alphabet.
func CDRewrite(alphabet []types.Label, rule CDRule, mode types.CDRewriteMode) *Transducer {
	h := engine.CDRewrite(alphabet, ops.CDRule{
		From: rule.From, To: rule.To,
		LeftContext: rule.LeftContext, RightContext: rule.RightContext,
	}, mode)
	return &Transducer{h: h}
}

// Optimize runs rm-epsilon -> determinize -> minimize on t.
func (t *Transducer) Optimize(limits types.Limits) (*Transducer, error) {
	return wrap(engine.Optimize(t.h, limits))
}
