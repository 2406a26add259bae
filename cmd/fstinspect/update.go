package main

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wfstlib/wfst/internal/fstlog"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutTables()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focusedPane == PaneStates {
			m.focusedPane = PaneArcs
			m.states.Blur()
			m.arcs.Focus()
		} else {
			m.focusedPane = PaneStates
			m.arcs.Blur()
			m.states.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copySelection()
		return m, nil
	}

	if m.focusedPane == PaneStates {
		var cmd tea.Cmd
		before := m.states.Cursor()
		m.states, cmd = m.states.Update(msg)
		if m.states.Cursor() != before {
			m.refreshArcsTable()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.arcs, cmd = m.arcs.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.filter = ""
		m.rebuildRows()
		m.refreshStatesTable()
		m.refreshArcsTable()
		return m, nil

	case msg.String() == "enter":
		m.searching = false
		m.search.Blur()
		m.filter = m.search.Value()
		m.rebuildRows()
		m.refreshStatesTable()
		m.refreshArcsTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) copySelection() {
	var text string
	if m.focusedPane == PaneStates {
		if row := m.states.SelectedRow(); row != nil {
			text = row[0]
		}
	} else {
		if row := m.arcs.SelectedRow(); row != nil {
			text = row[0] + "/" + row[1] + "\t" + row[2] + "\t-> " + row[3]
		}
	}
	if text == "" {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.err = err
		fstlog.Warn("clipboard copy failed", "error", err)
		return
	}
	m.status = "copied: " + text
}

func (m *Model) layoutTables() {
	paneHeight := m.height - headerRows - statusBarRows - 2
	if paneHeight < 3 {
		paneHeight = 3
	}
	statesWidth := m.width/3 - 2
	if statesWidth < minPaneWidth {
		statesWidth = minPaneWidth
	}
	arcsWidth := m.width - statesWidth - 6
	if arcsWidth < minPaneWidth {
		arcsWidth = minPaneWidth
	}
	m.states.SetHeight(paneHeight)
	m.arcs.SetHeight(paneHeight)
	m.states.SetWidth(statesWidth)
	m.arcs.SetWidth(arcsWidth)
}
