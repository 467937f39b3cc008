// Package tui provides the interactive terminal UI for browsing keybindings.
package tui

import (
	"fmt"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/keyglass/keyglass/internal/bindings"
)

// Model is the root TUI model. The binding set is loaded before the
// program starts and never changes; all interaction happens on the
// single table view.
type Model struct {
	table    tableModel
	bar      statusBar
	width    int
	height   int
	quitting bool
}

// New creates the root model over a fully loaded binding set.
func New(rows []bindings.Binding) Model {
	return Model{
		table: newTableModel(rows),
		bar:   newStatusBar(fmt.Sprintf("keyglass · %d bindings", len(rows))),
	}
}

// Init implements bubbletea.Model. The rows are preloaded, so there is
// no startup command.
func (m Model) Init() bubbletea.Cmd {
	return nil
}

// Update processes messages.
func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	switch msg := msg.(type) {
	case bubbletea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, bubbletea.Quit
		}

	case bubbletea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.width = msg.Width
		m.table.setSize(msg.Width, msg.Height-1) // -1 for statusbar
		return m, nil
	}

	var cmd bubbletea.Cmd
	m.table, cmd = m.table.update(msg)
	return m, cmd
}

// View renders the table over the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := m.table.view()
	hints := "j/k: navigate  /: filter  1-4: sort  esc: clear  q: quit"
	if m.table.filterMode {
		hints = "enter: apply  esc: cancel filter"
	}

	contentHeight := m.height - 1 // 1 for statusbar
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(content)

	return content + "\n" + m.bar.render(hints)
}
