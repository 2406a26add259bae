package codec

import (
	"io"

	"github.com/wfstlib/wfst/internal/buf"
	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/pkg/types"
)

// magic identifies the binary format, and formatVersion its layout
// revision; both are checked on Load so a future incompatible layout
// change fails loudly instead of silently misreading.
const (
	magic         uint32 = 0x57465354 // "WFST"
	formatVersion uint32 = 1
)

// Save writes m to w in the engine's binary format: a fixed header, then
// one (final weight, arc count) record per state, then the packed arc
// table in state order -- the same canonical (ilabel, olabel, nextstate, weight)
// ordering Freeze imposes, so Save(Freeze(m)) is bit-identical across runs
// for the same logical transducer.
func Save(w io.Writer, m *graph.Mutable) error {
	f := graph.Freeze(m)
	return SaveFrozen(w, f)
}

// SaveFrozen writes a Frozen transducer directly, skipping the Freeze
// step when the caller already has one.
func SaveFrozen(w io.Writer, f *graph.Frozen) error {
	n := f.NumStates()

	if err := buf.WriteU32(w, magic); err != nil {
		return err
	}
	if err := buf.WriteU32(w, formatVersion); err != nil {
		return err
	}
	if err := buf.WriteU32(w, n); err != nil {
		return err
	}
	if err := buf.WriteU32(w, f.Start()); err != nil {
		return err
	}

	var totalArcs uint64
	for s := uint32(0); s < n; s++ {
		totalArcs += uint64(f.NumArcs(s))
	}
	if err := buf.WriteU64(w, totalArcs); err != nil {
		return err
	}

	for s := uint32(0); s < n; s++ {
		if err := buf.WriteF64(w, f.FinalWeight(s)); err != nil {
			return err
		}
		if err := buf.WriteU32(w, f.NumArcs(s)); err != nil {
			return err
		}
	}

	for s := uint32(0); s < n; s++ {
		for _, a := range f.Arcs(s) {
			if err := buf.WriteU32(w, a.ILabel); err != nil {
				return err
			}
			if err := buf.WriteU32(w, a.OLabel); err != nil {
				return err
			}
			if err := buf.WriteU32(w, a.NextState); err != nil {
				return err
			}
			if err := buf.WriteF64(w, a.Weight); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load reads a transducer written by Save/SaveFrozen, returning it as a
// Mutable ready for further operations.
func Load(r io.Reader) (*graph.Mutable, error) {
	gotMagic, err := buf.ReadU32From(r)
	if err != nil {
		return nil, types.Wrap(types.IOError, "codec: short read on magic", err)
	}
	if gotMagic != magic {
		return nil, types.ErrBadMagic
	}

	version, err := buf.ReadU32From(r)
	if err != nil {
		return nil, types.Wrap(types.IOError, "codec: short read on version", err)
	}
	if version != formatVersion {
		return nil, types.Wrap(types.IOError, "codec: unsupported format version", nil)
	}

	n, err := buf.ReadU32From(r)
	if err != nil {
		return nil, types.Wrap(types.IOError, "codec: short read on state count", err)
	}
	start, err := buf.ReadU32From(r)
	if err != nil {
		return nil, types.Wrap(types.IOError, "codec: short read on start state", err)
	}
	totalArcs, err := buf.ReadU64From(r)
	if err != nil {
		return nil, types.Wrap(types.IOError, "codec: short read on arc count", err)
	}

	m := graph.NewMutable()
	for s := uint32(0); s < n; s++ {
		m.AddState()
	}
	if start != types.NoState {
		m.SetStart(start)
	}

	arcCounts := make([]uint32, n)
	for s := uint32(0); s < n; s++ {
		w, err := buf.ReadF64From(r)
		if err != nil {
			return nil, types.Wrap(types.IOError, "codec: short read on final weight", err)
		}
		m.SetFinal(s, w)
		c, err := buf.ReadU32From(r)
		if err != nil {
			return nil, types.Wrap(types.IOError, "codec: short read on arc count", err)
		}
		arcCounts[s] = c
	}

	var seen uint64
	for s := uint32(0); s < n; s++ {
		arcs := make([]types.Arc, arcCounts[s])
		for i := range arcs {
			il, err := buf.ReadU32From(r)
			if err != nil {
				return nil, types.Wrap(types.IOError, "codec: short read on arc ilabel", err)
			}
			ol, err := buf.ReadU32From(r)
			if err != nil {
				return nil, types.Wrap(types.IOError, "codec: short read on arc olabel", err)
			}
			dst, err := buf.ReadU32From(r)
			if err != nil {
				return nil, types.Wrap(types.IOError, "codec: short read on arc dest", err)
			}
			w, err := buf.ReadF64From(r)
			if err != nil {
				return nil, types.Wrap(types.IOError, "codec: short read on arc weight", err)
			}
			arcs[i] = types.Arc{ILabel: il, OLabel: ol, Weight: w, NextState: dst}
			seen++
		}
		m.SetArcs(s, arcs)
	}
	if seen != totalArcs {
		return nil, types.ErrTruncated
	}

	return m, nil
}
