package fst

import (
	"github.com/wfstlib/wfst/pkg/fstapi"
	"github.com/wfstlib/wfst/pkg/types"
)

// engine is the process-wide handle table every Transducer's handle lives
// in. One shared Engine, not one per Transducer, matches the boundary
// API's single mutex serializing every call.
var engine = fstapi.NewEngine()

// Transducer is a weighted finite-state transducer. The zero value is not
// usable; construct with New or one of the package-level builders.
type Transducer struct {
	h uint32
}

// New returns a new, empty mutable transducer.
func New() *Transducer {
	return &Transducer{h: engine.CreateMutable()}
}

// Close releases the transducer's underlying handle. Using a Transducer
// after Close is undefined.
func (t *Transducer) Close() {
	engine.Free(t.h)
}

func lastErr() error {
	if e := engine.LastError(); e != nil {
		return e
	}
	return nil
}

// AddState allocates a new state and returns its index.
func (t *Transducer) AddState() uint32 {
	s, _ := engine.AddState(t.h)
	return s
}

// NumStates returns the number of states.
func (t *Transducer) NumStates() uint32 {
	return engine.NumStates(t.h)
}

// SetStart records s as the start state.
func (t *Transducer) SetStart(s uint32) error {
	if !engine.SetStart(t.h, s) {
		return lastErr()
	}
	return nil
}

// Start returns the start state, or types.NoState if unset.
func (t *Transducer) Start() uint32 {
	return engine.Start(t.h)
}

// SetFinal records w as state s's final weight.
func (t *Transducer) SetFinal(s uint32, w types.Weight) error {
	if !engine.SetFinal(t.h, s, w) {
		return lastErr()
	}
	return nil
}

// FinalWeight returns state s's final weight.
func (t *Transducer) FinalWeight(s uint32) types.Weight {
	return engine.FinalWeight(t.h, s)
}

// AddArc appends an arc from src to dst.
func (t *Transducer) AddArc(src uint32, il, ol types.Label, w types.Weight, dst uint32) error {
	if !engine.AddArc(t.h, src, il, ol, w, dst) {
		return lastErr()
	}
	return nil
}

// NumArcs returns the out-degree of state s.
func (t *Transducer) NumArcs(s uint32) uint32 {
	return engine.NumArcs(t.h, s)
}

// Arcs returns every out-arc of state s.
func (t *Transducer) Arcs(s uint32) []types.Arc {
	n := engine.NumArcs(t.h, s)
	if n == 0 {
		return nil
	}
	buf := make([]types.Arc, n)
	copied, _, ok := engine.GetArcs(t.h, s, buf)
	if !ok {
		return nil
	}
	return buf[:copied]
}

func wrap(h uint32, ok bool) (*Transducer, error) {
	if !ok {
		return nil, lastErr()
	}
	return &Transducer{h: h}, nil
}
