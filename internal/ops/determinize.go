package ops

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/internal/semiring"
	"github.com/wfstlib/wfst/pkg/types"
)

// subsetElem pairs a source-transducer state with its residual weight
// within one subset of the determinized construction.
type subsetElem struct {
	state uint32
	res   types.Weight
}

// canonicalizeSubset merges duplicate states (keeping the tropical min of
// their residuals) and sorts by state id, giving a stable hash-consing key.
func canonicalizeSubset(elems []subsetElem) []subsetElem {
	merged := make(map[uint32]types.Weight, len(elems))
	for _, e := range elems {
		if cur, ok := merged[e.state]; !ok || e.res < cur {
			merged[e.state] = e.res
		}
	}
	out := make([]subsetElem, 0, len(merged))
	for s, w := range merged {
		out = append(out, subsetElem{s, w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].state < out[j].state })
	return out
}

// subsetKey returns a hash-consing key over both state membership and
// residual weight, so two subsets with the same shape but different
// residuals are tracked separately.
func subsetKey(elems []subsetElem) string {
	var b strings.Builder
	for _, e := range elems {
		b.WriteString(strconv.FormatUint(uint64(e.state), 36))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(e.res, 'b', -1, 64))
		b.WriteByte(',')
	}
	return b.String()
}

// shapeKey ignores residuals, identifying the set of source states alone.
// Used to bound residual divergence: the same shape recurring with many
// distinct residual signatures signals a non-functional (hence
// non-determinizable) input.
func shapeKey(elems []subsetElem) string {
	var b strings.Builder
	for _, e := range elems {
		b.WriteString(strconv.FormatUint(uint64(e.state), 36))
		b.WriteByte(',')
	}
	return b.String()
}

// Determinize builds an equivalent deterministic transducer via weighted
// subset construction. ok is false if m is not determinizable within
// limits: either a genuine functionality violation (two arcs from the same
// subset, same input label, differing output labels), residual
// divergence beyond limits.MaxSubsetRevisits for some subset shape, or an
// output grown past limits.MaxStates.
func Determinize(m *graph.Mutable, limits types.Limits) (out *graph.Mutable, ok bool, cause *types.Error) {
	out = graph.NewMutable()

	if m.Start() == types.NoState {
		return out, true, nil
	}

	startSubset := canonicalizeSubset([]subsetElem{{m.Start(), types.One}})
	ids := make(map[string]uint32)
	var worklist [][]subsetElem
	revisits := make(map[string]map[string]bool)

	startID := out.AddState()
	ids[subsetKey(startSubset)] = startID
	out.SetStart(startID)
	worklist = append(worklist, startSubset)

	for len(worklist) > 0 {
		if int(out.NumStates()) > limits.MaxStates {
			return nil, false, types.ErrLimitExceeded
		}

		cur := worklist[0]
		worklist = worklist[1:]
		curID := ids[subsetKey(cur)]

		var final types.Weight = types.Zero
		for _, e := range cur {
			if m.IsFinal(e.state) {
				final = semiring.Plus(final, semiring.Times(e.res, m.FinalWeight(e.state)))
			}
		}
		out.SetFinal(curID, final)

		byLabel := make(map[types.Label][]struct {
			dst types.Label
			w   types.Weight
			o   types.Label
		})
		for _, e := range cur {
			for _, a := range m.Arcs(e.state) {
				key := a.ILabel
				byLabel[key] = append(byLabel[key], struct {
					dst types.Label
					w   types.Weight
					o   types.Label
				}{a.NextState, a.Weight + e.res, a.OLabel})
			}
		}

		labels := make([]types.Label, 0, len(byLabel))
		for l := range byLabel {
			labels = append(labels, l)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

		for _, lbl := range labels {
			cands := byLabel[lbl]
			oLabel := cands[0].o
			for _, c := range cands[1:] {
				if c.o != oLabel {
					return nil, false, types.ErrNonFunctional
				}
			}

			nextElems := make([]subsetElem, len(cands))
			for i, c := range cands {
				nextElems[i] = subsetElem{c.dst, c.w}
			}
			nextSubset := canonicalizeSubset(nextElems)

			var divisor types.Weight = types.Zero
			for _, e := range nextSubset {
				divisor = semiring.Plus(divisor, e.res)
			}
			normalized := make([]subsetElem, len(nextSubset))
			for i, e := range nextSubset {
				normalized[i] = subsetElem{e.state, semiring.Minus(e.res, divisor)}
			}

			sk := shapeKey(normalized)
			vk := subsetKey(normalized)
			if revisits[sk] == nil {
				revisits[sk] = make(map[string]bool)
			}
			revisits[sk][vk] = true
			if len(revisits[sk]) > limits.MaxSubsetRevisits {
				return nil, false, types.ErrUnboundedResidual
			}

			id, seen := ids[vk]
			if !seen {
				id = out.AddState()
				ids[vk] = id
				worklist = append(worklist, normalized)
			}
			out.AddArc(curID, lbl, oLabel, divisor, id)
		}
	}

	return out, true, nil
}
