package fstapi

import (
	"io"

	"github.com/wfstlib/wfst/internal/codec"
	"github.com/wfstlib/wfst/internal/strfst"
	"github.com/wfstlib/wfst/internal/symtab"
	"github.com/wfstlib/wfst/pkg/types"
)

// CompileString builds and returns the handle of the linear-chain
// transducer mapping ilabels to olabels.
func (e *Engine) CompileString(ilabels, olabels []types.Label) uint32 {
	e.reg.Lock()
	defer e.reg.Unlock()
	m := strfst.CompileTransducer(ilabels, olabels)
	h := e.reg.PutMutableLocked(m)
	e.ok()
	return h
}

// PrintString extracts the single string encoded by the linear-chain,
// identity transducer behind h. ok is false if h is not linear, its input
// and output labels differ, or any arc carries an Epsilon label.
func (e *Engine) PrintString(h uint32) (labels []types.Label, weight types.Weight, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return nil, 0, false
	}
	lbls, w, good := strfst.PrintLinearPath(m)
	if !good {
		e.fail(types.ErrNotLinear)
		return nil, 0, false
	}
	e.ok()
	return lbls, w, true
}

// SaveBinary writes the transducer behind h to w in the engine's binary
// format.
func (e *Engine) SaveBinary(w io.Writer, h uint32) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return false
	}
	if err := codec.Save(w, m); err != nil {
		e.fail(asError(err))
		return false
	}
	e.ok()
	return true
}

// LoadBinary reads a transducer written by SaveBinary from r and returns
// its handle.
func (e *Engine) LoadBinary(r io.Reader) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, err := codec.Load(r)
	if err != nil {
		e.fail(asError(err))
		return types.InvalidHandle, false
	}
	h := e.reg.PutMutableLocked(m)
	e.ok()
	return h, true
}

// WriteText writes the transducer behind h to w in the engine's
// human-readable text format. syms may be nil to print raw numeric
// labels.
func (e *Engine) WriteText(w io.Writer, h uint32, syms *symtab.Table) bool {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, found := e.resolveMutable(h)
	if !found {
		e.fail(types.ErrBadHandle)
		return false
	}
	if err := codec.WriteText(w, m, syms); err != nil {
		e.fail(asError(err))
		return false
	}
	e.ok()
	return true
}

// ReadText parses the text format produced by WriteText from r and
// returns the resulting transducer's handle. syms may be nil to parse raw
// numeric labels only.
func (e *Engine) ReadText(r io.Reader, syms *symtab.Table) (outHandle uint32, ok bool) {
	e.reg.Lock()
	defer e.reg.Unlock()
	m, err := codec.ReadText(r, syms)
	if err != nil {
		e.fail(asError(err))
		return types.InvalidHandle, false
	}
	h := e.reg.PutMutableLocked(m)
	e.ok()
	return h, true
}

func asError(err error) *types.Error {
	if e, ok := err.(*types.Error); ok {
		return e
	}
	return types.Wrap(types.IOError, "codec error", err)
}
