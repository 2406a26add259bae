package ops

import (
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// CDRule is a single context-dependent rewrite rule: replace From with To
// wherever the preceding input symbol is in LeftContext (nil means
// unconstrained) and the following input symbol is in RightContext (nil
// means unconstrained, including end-of-string).
type CDRule struct {
	From, To     types.Label
	LeftContext  []types.Label
	RightContext []types.Label
}

// CDRewrite builds a transducer over alphabet implementing rule: the
// identity on every symbol except at positions where From occurs with its
// context satisfied, where it is replaced by To. In CDRewriteObligatory
// mode a satisfied context always rewrites; in CDRewriteOptional mode both
// the rewritten and pass-through outputs survive as alternative paths.
//
// Grounded on the marker-insertion/deletion two-pass shape of classical
// context-dependent rewrite: a left-context class tracks the preceding
// symbol, and (when RightContext is constrained) a pending state defers
// the output decision by one symbol until the right context is resolved.
func CDRewrite(alphabet []types.Label, rule CDRule, mode types.CDRewriteMode) *graph.Mutable {
	m := graph.NewMutable()

	inLeft := toSet(rule.LeftContext)
	inRight := toSet(rule.RightContext)
	leftConstrained := rule.LeftContext != nil
	rightConstrained := rule.RightContext != nil

	numClasses := 1
	if leftConstrained {
		numClasses = 2
	}
	classState := make([]uint32, numClasses)
	for i := range classState {
		classState[i] = m.AddState()
		m.SetFinal(classState[i], types.One)
	}
	classOf := func(lbl types.Label) int {
		if !leftConstrained {
			return 0
		}
		if inLeft[lbl] {
			return 1
		}
		return 0
	}

	var pending, fallback, gated uint32
	if rightConstrained {
		pending = m.AddState()
		fallback = m.AddState()
		gated = m.AddState()
		m.SetFinal(fallback, types.One) // resolves "no right context" / end-of-string
		// gated is deliberately left non-final: reaching it then running out
		// of input means the assumed right context never materialized.
	}

	// Start-of-string has no preceding symbol; Epsilon (never a real
	// alphabet label) stands in for "not in left context" here.
	m.SetStart(classState[classOf(types.Epsilon)])

	for ci, st := range classState {
		for _, y := range alphabet {
			isRewriteSite := y == rule.From && (!leftConstrained || ci == 1)

			if isRewriteSite && !rightConstrained {
				m.AddArc(st, y, rule.To, types.One, classState[classOf(y)])
				if mode == types.CDRewriteOptional {
					m.AddArc(st, y, y, types.One, classState[classOf(y)])
				}
				continue
			}

			if isRewriteSite && rightConstrained {
				// Output is deferred until the lookahead symbol resolves
				// pending into gated (rewrite) or fallback (pass through):
				// emitting y here as well as rule.To/rule.From there would
				// double the output symbol for this input position.
				m.AddArc(st, y, types.Epsilon, types.One, pending)
				if mode == types.CDRewriteOptional {
					m.AddArc(st, y, y, types.One, classState[classOf(y)])
				}
				continue
			}

			m.AddArc(st, y, y, types.One, classState[classOf(y)])
		}
	}

	if rightConstrained {
		m.AddArc(pending, types.Epsilon, rule.To, types.One, gated)
		m.AddArc(pending, types.Epsilon, rule.From, types.One, fallback)

		// The symbol consumed here follows rule.From, so it is itself a
		// rewrite site when it is rule.From and rule.From is a left context.
		nextIsSite := !leftConstrained || inLeft[rule.From]
		for _, y := range alphabet {
			src := fallback
			if inRight[y] {
				src = gated
			}
			if y == rule.From && nextIsSite {
				m.AddArc(src, y, types.Epsilon, types.One, pending)
				if mode == types.CDRewriteOptional {
					m.AddArc(src, y, y, types.One, classState[classOf(y)])
				}
				continue
			}
			m.AddArc(src, y, y, types.One, classState[classOf(y)])
		}
	}

	return m
}

func toSet(labels []types.Label) map[types.Label]bool {
	s := make(map[types.Label]bool, len(labels))
	for _, l := range labels {
		s[l] = true
	}
	return s
}
