package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wfstlib/wfst/pkg/fst"
	"github.com/wfstlib/wfst/pkg/types"
)

// Pane identifies which table currently has keyboard focus.
type Pane int

const (
	PaneStates Pane = iota
	PaneArcs
)

const (
	minPaneWidth  = 20
	statusBarRows = 1
	headerRows    = 2
)

type stateRow struct {
	id      uint32
	final   types.Weight
	numArcs uint32
}

// Model is the fstinspect root bubbletea model.
type Model struct {
	path string
	t    *fst.Transducer
	syms *fst.SymbolTable

	rows []stateRow

	states table.Model
	arcs   table.Model

	keys KeyMap

	focusedPane Pane
	width       int
	height      int

	searching bool
	search    textinput.Model
	filter    string

	showHelp bool
	status   string
	err      error
}

// NewModel loads path and builds the initial model.
func NewModel(path string) (Model, error) {
	syms := fst.NewSymbolTable()

	f, err := os.Open(path)
	if err != nil {
		return Model{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var t *fst.Transducer
	if strings.HasSuffix(path, ".bin") {
		t, err = fst.Load(f)
	} else {
		t, err = fst.ReadText(f, syms)
	}
	if err != nil {
		return Model{}, fmt.Errorf("load %s: %w", path, err)
	}

	search := textinput.New()
	search.Placeholder = "filter by state id or final weight"
	search.CharLimit = 64

	m := Model{
		path:        path,
		t:           t,
		syms:        syms,
		keys:        DefaultKeyMap(),
		focusedPane: PaneStates,
		search:      search,
	}
	m.rebuildRows()
	m.states = newStatesTable()
	m.arcs = newArcsTable()
	m.refreshStatesTable()
	m.refreshArcsTable()
	return m, nil
}

// Close releases the transducer's underlying handle.
func (m Model) Close() {
	if m.t != nil {
		m.t.Close()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newStatesTable() table.Model {
	columns := []table.Column{
		{Title: "State", Width: 8},
		{Title: "Final", Width: 10},
		{Title: "Arcs", Width: 6},
	}
	return table.New(table.WithColumns(columns), table.WithFocused(true))
}

func newArcsTable() table.Model {
	columns := []table.Column{
		{Title: "ILabel", Width: 10},
		{Title: "OLabel", Width: 10},
		{Title: "Weight", Width: 10},
		{Title: "Dst", Width: 8},
	}
	return table.New(table.WithColumns(columns))
}

func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	n := m.t.NumStates()
	for s := uint32(0); s < n; s++ {
		if m.filter != "" && !matchesFilter(s, m.t.FinalWeight(s), m.filter) {
			continue
		}
		m.rows = append(m.rows, stateRow{id: s, final: m.t.FinalWeight(s), numArcs: m.t.NumArcs(s)})
	}
}

func matchesFilter(id uint32, final types.Weight, filter string) bool {
	if strconv.FormatUint(uint64(id), 10) == filter {
		return true
	}
	return strings.Contains(formatWeight(final), filter)
}

func formatWeight(w types.Weight) string {
	if w == types.Zero {
		return "-"
	}
	return strconv.FormatFloat(w, 'g', -1, 64)
}

func (m *Model) refreshStatesTable() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{
			strconv.FormatUint(uint64(r.id), 10),
			formatWeight(r.final),
			strconv.FormatUint(uint64(r.numArcs), 10),
		}
	}
	m.states.SetRows(rows)
}

func (m *Model) selectedState() (uint32, bool) {
	idx := m.states.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return 0, false
	}
	return m.rows[idx].id, true
}

func (m *Model) refreshArcsTable() {
	s, ok := m.selectedState()
	if !ok {
		m.arcs.SetRows(nil)
		return
	}
	arcList := m.t.Arcs(s)
	rows := make([]table.Row, len(arcList))
	for i, a := range arcList {
		rows[i] = table.Row{
			m.labelString(a.ILabel),
			m.labelString(a.OLabel),
			strconv.FormatFloat(a.Weight, 'g', -1, 64),
			strconv.FormatUint(uint64(a.NextState), 10),
		}
	}
	m.arcs.SetRows(rows)
}

func (m *Model) labelString(l types.Label) string {
	if l == types.Epsilon {
		return "<eps>"
	}
	if sym, ok := m.syms.Symbol(l); ok {
		return sym
	}
	return strconv.FormatUint(uint64(l), 10)
}
