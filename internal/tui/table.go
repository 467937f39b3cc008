package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/keyglass/keyglass/internal/bindings"
)

// Column indexes, matching bindings.Binding.Columns order.
const (
	colLabel = iota
	colBinding
	colSchema
	colKey
	columnCount
)

var columnTitles = [columnCount]string{"LABEL", "BINDING", "SCHEMA", "KEY"}

// tableModel renders the binding rows as a sortable, filterable table.
//
// The row slice is never mutated after construction; filtering and
// sorting only rearrange the visible index set. sortCol -1 means load
// order. Sorting is stable, so equal cells keep their load order and
// toggling a column back to ascending restores the same sequence.
type tableModel struct {
	rows    []bindings.Binding
	visible []int // indices into rows: filtered, then sorted

	cursor   int
	sortCol  int // -1 = load order
	sortDesc bool

	filterMode bool
	filter     textinput.Model

	width  int
	height int
}

func newTableModel(rows []bindings.Binding) tableModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.CharLimit = 64
	m := tableModel{
		rows:    rows,
		sortCol: -1,
		filter:  ti,
	}
	m.apply()
	return m
}

func (m *tableModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// apply recomputes the visible index set: substring filter first, then
// the active sort over whatever survived.
func (m *tableModel) apply() {
	needle := m.filter.Value()
	vis := make([]int, 0, len(m.rows))
	for i, row := range m.rows {
		if row.Matches(needle) {
			vis = append(vis, i)
		}
	}

	if m.sortCol >= 0 && m.sortCol < columnCount {
		col := m.sortCol
		desc := m.sortDesc
		sort.SliceStable(vis, func(a, b int) bool {
			va := m.rows[vis[a]].Columns()[col]
			vb := m.rows[vis[b]].Columns()[col]
			if desc {
				return va > vb
			}
			return va < vb
		})
	}

	m.visible = vis
	if m.cursor >= len(vis) {
		m.cursor = max(0, len(vis)-1)
	}
}

// toggleSort selects col as the sort column, or flips direction when it
// is already active.
func (m *tableModel) toggleSort(col int) {
	if m.sortCol == col {
		m.sortDesc = !m.sortDesc
	} else {
		m.sortCol = col
		m.sortDesc = false
	}
	m.apply()
}

func (m tableModel) update(msg bubbletea.Msg) (tableModel, bubbletea.Cmd) {
	if m.filterMode {
		return m.updateFilter(msg)
	}

	if msg, ok := msg.(bubbletea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			return m, bubbletea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Top):
			m.cursor = 0

		case key.Matches(msg, keys.Bottom):
			m.cursor = max(0, len(m.visible)-1)

		case key.Matches(msg, keys.PageUp):
			m.cursor = max(0, m.cursor-m.pageSize())

		case key.Matches(msg, keys.PageDown):
			m.cursor = min(max(0, len(m.visible)-1), m.cursor+m.pageSize())

		case key.Matches(msg, keys.Filter):
			m.filterMode = true
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, keys.ClearFilter):
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.cursor = 0
				m.apply()
			}

		case key.Matches(msg, keys.SortLabel):
			m.toggleSort(colLabel)
		case key.Matches(msg, keys.SortBinding):
			m.toggleSort(colBinding)
		case key.Matches(msg, keys.SortSchema):
			m.toggleSort(colSchema)
		case key.Matches(msg, keys.SortKey):
			m.toggleSort(colKey)
		}
	}

	return m, nil
}

// updateFilter handles keystrokes while the filter input is focused.
// The filter is live: every edit reapplies it immediately.
func (m tableModel) updateFilter(msg bubbletea.Msg) (tableModel, bubbletea.Cmd) {
	if msg, ok := msg.(bubbletea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			m.filterMode = false
			m.filter.Blur()
			return m, nil
		case "esc":
			m.filterMode = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.cursor = 0
			m.apply()
			return m, nil
		}
	}

	before := m.filter.Value()
	var cmd bubbletea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.cursor = 0
		m.apply()
	}
	return m, cmd
}

func (m tableModel) pageSize() int {
	if h := m.listHeight(); h > 1 {
		return h
	}
	return 10
}

func (m tableModel) listHeight() int {
	headerLines := 6 // title + filter bar + col header + separator + count + slack
	if m.filterMode {
		headerLines++
	}
	return m.height - headerLines
}

func (m tableModel) view() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Keybindings"))
	b.WriteByte('\n')

	// Filter/sort bar — always visible so the active state is obvious.
	b.WriteString(styleFilterBar.Render("  " + m.describeState()))
	b.WriteByte('\n')

	if m.filterMode {
		b.WriteString("  Filter: ")
		b.WriteString(m.filter.View())
		b.WriteByte('\n')
	}

	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	colHeaderWidth := 4 + 30 + 2 + 26 + 2 + 40 + 2 + 24
	sep := strings.Repeat("─", min(max(m.width, 1), colHeaderWidth))
	b.WriteString(styleDim.Render(sep))
	b.WriteByte('\n')

	if len(m.visible) == 0 {
		if len(m.rows) == 0 {
			b.WriteString(styleDim.Render("  No keybindings found."))
		} else {
			b.WriteString(styleDim.Render(
				fmt.Sprintf("  No matches for %q.", m.filter.Value())))
		}
		return b.String()
	}

	b.WriteString(styleDim.Render(
		fmt.Sprintf("  %d of %d bindings", len(m.visible), len(m.rows))))
	b.WriteByte('\n')

	listHeight := m.listHeight()
	if listHeight < 1 {
		listHeight = 10
	}
	startIdx := 0
	if m.cursor >= listHeight {
		startIdx = m.cursor - listHeight + 1
	}
	endIdx := min(startIdx+listHeight, len(m.visible))

	for i := startIdx; i < endIdx; i++ {
		row := m.rows[m.visible[i]]
		line := fmt.Sprintf("  %-30s  %-26s  %-40s  %-24s",
			trunc(row.Label, 30), trunc(row.Accelerator, 26),
			trunc(row.Schema, 40), trunc(row.Key, 24))
		if i == m.cursor {
			line = styleSelected.Width(max(m.width, lipgloss.Width(line))).Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// renderHeader renders column titles with sort keys and direction marker.
func (m tableModel) renderHeader() string {
	widths := [columnCount]int{30, 26, 40, 24}
	var parts []string
	for i := 0; i < columnCount; i++ {
		title := fmt.Sprintf("[%d] %s", i+1, columnTitles[i])
		if i == m.sortCol {
			if m.sortDesc {
				title += " ▼"
			} else {
				title += " ▲"
			}
			parts = append(parts, styleSortCol.Render(fmt.Sprintf("%-*s", widths[i], trunc(title, widths[i]))))
			continue
		}
		parts = append(parts, styleDim.Render(fmt.Sprintf("%-*s", widths[i], trunc(title, widths[i]))))
	}
	return "  " + strings.Join(parts, "  ")
}

// describeState summarizes the active filter and sort for the state bar.
func (m tableModel) describeState() string {
	sortLabel := "load order"
	if m.sortCol >= 0 {
		dir := "asc"
		if m.sortDesc {
			dir = "desc"
		}
		sortLabel = fmt.Sprintf("%s %s", strings.ToLower(columnTitles[m.sortCol]), dir)
	}
	state := fmt.Sprintf("[/] Filter: %-20s  [1-4] Sort: %s", filterDisplay(m.filter.Value()), sortLabel)
	return state
}

func filterDisplay(v string) string {
	if v == "" {
		return "(none)"
	}
	return fmt.Sprintf("%q", v)
}

func trunc(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
