// Package codec implements the engine's two serialization formats: a
// human-readable text form (read_text/write_text) and a compact binary
// form (save/load).
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/wfstlib/wfst/internal/graph"
	"github.com/wfstlib/wfst/internal/symtab"
	"github.com/wfstlib/wfst/pkg/types"
)

// WriteText writes m in the OpenFst-style line format: one
// "src dst ilabel olabel weight" line per arc (weight omitted when One),
// followed by one "state weight" line per final state. syms may be nil,
// in which case labels are printed as raw decimal integers; when non-nil,
// symbol names are NFC-normalized so visually identical names compare
// byte-equal across platforms and input methods.
func WriteText(w io.Writer, m *graph.Mutable, syms *symtab.Table) error {
	bw := bufio.NewWriter(w)

	label := func(l types.Label) string {
		if syms == nil {
			return strconv.FormatUint(uint64(l), 10)
		}
		if s, ok := syms.Symbol(l); ok {
			return norm.NFC.String(s)
		}
		return strconv.FormatUint(uint64(l), 10)
	}

	n := m.NumStates()
	order := make([]uint32, 0, n)
	if m.Start() != types.NoState {
		order = append(order, m.Start())
	}
	for s := uint32(0); s < n; s++ {
		if s != m.Start() {
			order = append(order, s)
		}
	}

	for _, s := range order {
		for _, a := range m.Arcs(s) {
			if a.Weight == types.One {
				if _, err := fmt.Fprintf(bw, "%d\t%d\t%s\t%s\n", s, a.NextState, label(a.ILabel), label(a.OLabel)); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(bw, "%d\t%d\t%s\t%s\t%s\n", s, a.NextState, label(a.ILabel), label(a.OLabel), formatWeight(a.Weight)); err != nil {
					return err
				}
			}
		}
	}
	for _, s := range order {
		if m.IsFinal(s) {
			w := m.FinalWeight(s)
			if w == types.One {
				if _, err := fmt.Fprintf(bw, "%d\n", s); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(bw, "%d\t%s\n", s, formatWeight(w)); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

func formatWeight(w types.Weight) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// ReadText parses the WriteText line format back into a Mutable. The
// first line's source state becomes the start state, matching the
// convention WriteText follows when emitting. syms may be nil to parse
// labels as raw integers, or non-nil to additionally accept (and intern)
// symbol names, NFC-normalized before lookup so differently-composed
// Unicode input for the same symbol resolves to the same label.
func ReadText(r io.Reader, syms *symtab.Table) (*graph.Mutable, error) {
	m := graph.NewMutable()
	sc := bufio.NewScanner(r)
	haveStart := false

	resolve := func(tok string) (types.Label, error) {
		if n, err := strconv.ParseUint(tok, 10, 32); err == nil {
			return types.Label(n), nil
		}
		if syms == nil {
			return 0, types.Wrap(types.IOError, "codec: unknown symbol with no symbol table", fmt.Errorf("%q", tok))
		}
		normalized := norm.NFC.String(tok)
		if l, ok := syms.Label(normalized); ok {
			return l, nil
		}
		return syms.AddSymbol(normalized), nil
	}

	ensureState := func(s uint32) {
		for m.NumStates() <= s {
			m.AddState()
		}
	}

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")

		src, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, types.Wrap(types.IOError, "codec: malformed state id", err)
		}
		ensureState(uint32(src))
		if !haveStart {
			m.SetStart(uint32(src))
			haveStart = true
		}

		switch len(fields) {
		case 1:
			m.SetFinal(uint32(src), types.One)
		case 2:
			w, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, types.Wrap(types.IOError, "codec: malformed final weight", err)
			}
			m.SetFinal(uint32(src), w)
		case 4, 5:
			dst, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, types.Wrap(types.IOError, "codec: malformed dest state id", err)
			}
			ensureState(uint32(dst))
			il, err := resolve(fields[2])
			if err != nil {
				return nil, err
			}
			ol, err := resolve(fields[3])
			if err != nil {
				return nil, err
			}
			w := types.One
			if len(fields) == 5 {
				w, err = strconv.ParseFloat(fields[4], 64)
				if err != nil {
					return nil, types.Wrap(types.IOError, "codec: malformed arc weight", err)
				}
			}
			m.AddArc(uint32(src), il, ol, w, uint32(dst))
		default:
			return nil, types.ErrTruncated
		}
	}
	if err := sc.Err(); err != nil {
		return nil, types.Wrap(types.IOError, "codec: read failed", err)
	}
	return m, nil
}
