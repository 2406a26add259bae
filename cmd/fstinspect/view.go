package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("fstinspect  %s", pathStyle.Render(m.path)))

	statesPane := paneStyle
	arcsPane := paneStyle
	if m.focusedPane == PaneStates {
		statesPane = activePaneStyle
	} else {
		arcsPane = activePaneStyle
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		statesPane.Render(m.states.View()),
		arcsPane.Render(m.arcs.View()),
	)

	status := m.statusLine()

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, status)

	if m.showHelp {
		bg := staticModel{view}
		fg := staticModel{helpOverlayStyle.Render(helpText())}
		return overlay.New(fg, bg, overlay.Center, overlay.Center, 0, 0).View()
	}
	return view
}

func (m Model) statusLine() string {
	if m.searching {
		return statusStyle.Render("filter: ") + m.search.View()
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return statusStyle.Render("tab: switch pane   /: filter   y: copy   ?: help   q: quit")
}

func helpText() string {
	return "fstinspect\n\n" +
		"↑/k ↓/j     move selection\n" +
		"tab         switch between state list and arc table\n" +
		"/           filter states by id or final weight\n" +
		"y           copy the selected row to the clipboard\n" +
		"esc         cancel filter / close this help\n" +
		"q           quit\n"
}

// staticModel renders a fixed string and ignores all messages; used to give
// a plain string a tea.Model identity for the help overlay.
type staticModel struct {
	s string
}

func (m staticModel) Init() tea.Cmd { return nil }

func (m staticModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m staticModel) View() string { return m.s }
