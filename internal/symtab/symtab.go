// Package symtab provides optional label<->symbol-name interning, for
// hosts that want to compile and print transducers using human-readable
// symbol names rather than raw numeric labels.
//
// Grounded on internal/regtext's line-oriented name<->value table shape,
// generalized from registry value names to arbitrary arc-label symbols.
package symtab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wfstlib/wfst/pkg/types"
)

// Table is a bidirectional label<->symbol map. Construct one with New (or
// Read), which seeds the entry Epsilon -> "<eps>"; the zero value has nil
// maps and is not usable.
type Table struct {
	byLabel  map[types.Label]string
	bySymbol map[string]types.Label
	next     types.Label
}

// New returns a Table pre-seeded with the reserved Epsilon symbol.
func New() *Table {
	t := &Table{
		byLabel:  make(map[types.Label]string),
		bySymbol: make(map[string]types.Label),
		next:     1,
	}
	t.byLabel[types.Epsilon] = "<eps>"
	t.bySymbol["<eps>"] = types.Epsilon
	return t
}

// AddSymbol interns symbol, assigning it the next free label if it is not
// already known, and returns its label either way.
func (t *Table) AddSymbol(symbol string) types.Label {
	if l, ok := t.bySymbol[symbol]; ok {
		return l
	}
	l := t.next
	t.next++
	t.byLabel[l] = symbol
	t.bySymbol[symbol] = l
	return l
}

// Symbol returns the symbol name for label, and whether it is known.
func (t *Table) Symbol(label types.Label) (string, bool) {
	s, ok := t.byLabel[label]
	return s, ok
}

// Label returns the label for symbol, and whether it is known.
func (t *Table) Label(symbol string) (types.Label, bool) {
	l, ok := t.bySymbol[symbol]
	return l, ok
}

// Len reports the number of interned symbols, including Epsilon.
func (t *Table) Len() int {
	return len(t.byLabel)
}

// Write serializes the table as one "symbol\tlabel" line per entry.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for label, symbol := range t.byLabel {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", symbol, label); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read returns a new Table, seeded as by New, filled by parsing
// "symbol\tlabel" lines from r.
func Read(r io.Reader) (*Table, error) {
	t := New()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		tab := strings.LastIndexByte(line, '\t')
		if tab < 0 {
			return nil, types.Wrap(types.IOError, "symtab: malformed line", fmt.Errorf("no tab in %q", line))
		}
		symbol := line[:tab]
		label, err := strconv.ParseUint(line[tab+1:], 10, 32)
		if err != nil {
			return nil, types.Wrap(types.IOError, "symtab: malformed label", err)
		}
		l := types.Label(label)
		t.byLabel[l] = symbol
		t.bySymbol[symbol] = l
		if l >= t.next {
			t.next = l + 1
		}
	}
	if err := sc.Err(); err != nil {
		return nil, types.Wrap(types.IOError, "symtab: read failed", err)
	}
	return t, nil
}
