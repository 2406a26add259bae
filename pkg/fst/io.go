package fst

import (
	"io"

	"github.com/wfstlib/wfst/internal/symtab"
	"github.com/wfstlib/wfst/pkg/types"
)

// CompileString builds the linear-chain transducer mapping ilabels to
// olabels.
func CompileString(ilabels, olabels []types.Label) *Transducer {
	return &Transducer{h: engine.CompileString(ilabels, olabels)}
}

// PrintString extracts the single string encoded by a linear-chain,
// identity transducer like the one CompileString builds with matching
// ilabels and olabels. It fails if t is non-linear, its input and output
// differ, or any arc carries an Epsilon label.
func (t *Transducer) PrintString() (labels []types.Label, weight types.Weight, err error) {
	lbls, w, ok := engine.PrintString(t.h)
	if !ok {
		return nil, 0, lastErr()
	}
	return lbls, w, nil
}

// SymbolTable is a label<->symbol-name interning table, for compiling and
// printing transducers using human-readable names.
type SymbolTable = symtab.Table

// NewSymbolTable returns an empty symbol table, pre-seeded with Epsilon.
func NewSymbolTable() *SymbolTable {
	return symtab.New()
}

// SaveSymbolTable writes syms to w as "symbol\tlabel" lines.
func SaveSymbolTable(w io.Writer, syms *SymbolTable) error {
	return syms.Write(w)
}

// LoadSymbolTable parses a symbol table written by SaveSymbolTable from r.
func LoadSymbolTable(r io.Reader) (*SymbolTable, error) {
	return symtab.Read(r)
}

// Save writes t to w in the engine's binary format.
func (t *Transducer) Save(w io.Writer) error {
	if !engine.SaveBinary(w, t.h) {
		return lastErr()
	}
	return nil
}

// Load reads a transducer written by Save from r.
func Load(r io.Reader) (*Transducer, error) {
	return wrap(engine.LoadBinary(r))
}

// WriteText writes t to w in the engine's human-readable text format.
// syms may be nil to print raw numeric labels.
func (t *Transducer) WriteText(w io.Writer, syms *SymbolTable) error {
	if !engine.WriteText(w, t.h, syms) {
		return lastErr()
	}
	return nil
}

// ReadText parses the text format produced by WriteText from r. syms may
// be nil to parse raw numeric labels only.
func ReadText(r io.Reader, syms *SymbolTable) (*Transducer, error) {
	return wrap(engine.ReadText(r, syms))
}
