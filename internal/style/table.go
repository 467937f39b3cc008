package style

import (
	"regexp"
	"strings"
)

// Align controls horizontal alignment of a table cell.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes one table column.
type Column struct {
	Name  string
	Width int
	Align Align
}

// Table renders fixed-width plain-text tables for command output.
// Styled (ANSI-colored) cell values are padded by their visible width.
type Table struct {
	cols      []Column
	rows      [][]string
	indent    string
	separator bool
}

// NewTable creates a table with the given columns.
func NewTable(cols ...Column) *Table {
	return &Table{
		cols:      cols,
		indent:    "  ",
		separator: true,
	}
}

// SetIndent sets the prefix printed before every line.
func (t *Table) SetIndent(indent string) {
	t.indent = indent
}

// SetHeaderSeparator toggles the rule line under the header.
func (t *Table) SetHeaderSeparator(on bool) {
	t.separator = on
}

// AddRow appends a data row. Missing cells render empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.cols))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the formatted table, one trailing newline per line.
// A table with no columns renders as the empty string.
func (t *Table) Render() string {
	if len(t.cols) == 0 {
		return ""
	}

	var b strings.Builder

	// Header.
	b.WriteString(t.indent)
	for i, c := range t.cols {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(Bold.Render(t.pad(c.Name, c.Name, c.Width, c.Align)))
	}
	b.WriteByte('\n')

	if t.separator {
		total := 0
		for i, c := range t.cols {
			if i > 0 {
				total += 2
			}
			total += c.Width
		}
		b.WriteString(t.indent)
		b.WriteString(Dim.Render(strings.Repeat("─", total)))
		b.WriteByte('\n')
	}

	for _, row := range t.rows {
		b.WriteString(t.indent)
		for i := range t.cols {
			if i > 0 {
				b.WriteString("  ")
			}
			cell := row[i]
			b.WriteString(t.pad(cell, stripAnsi(cell), t.cols[i].Width, t.cols[i].Align))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// pad fits display into width columns, measuring by the plain (ANSI-stripped)
// text. Over-wide values are truncated with "...".
func (t *Table) pad(display, plain string, width int, align Align) string {
	n := len([]rune(plain))
	if n > width {
		r := []rune(plain)
		if width > 3 {
			return string(r[:width-3]) + "..."
		}
		return string(r[:width])
	}
	gap := width - n
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + display
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + display + strings.Repeat(" ", gap-left)
	default:
		return display + strings.Repeat(" ", gap)
	}
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripAnsi removes ANSI SGR escape sequences.
func stripAnsi(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
