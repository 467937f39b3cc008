package tui

import (
	"strings"
	"testing"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/keyglass/keyglass/internal/bindings"
)

func keyMsg(s string) bubbletea.Msg {
	return bubbletea.KeyMsg{Type: bubbletea.KeyRunes, Runes: []rune(s)}
}

func escMsg() bubbletea.Msg {
	return bubbletea.KeyMsg{Type: bubbletea.KeyEsc}
}

func enterMsg() bubbletea.Msg {
	return bubbletea.KeyMsg{Type: bubbletea.KeyEnter}
}

func testRows() []bindings.Binding {
	return []bindings.Binding{
		{Schema: "org.a.keybindings", Key: "k1", Label: "Copy", Accelerator: "<Control>c"},
		{Schema: "org.c.keybindings", Key: "k2", Label: "Paste Special", Accelerator: ""},
		{Schema: "org.b.keybindings", Key: "k3", Label: "Close window", Accelerator: "<Alt>F4"},
		// Same accelerator as row 0, later in load order.
		{Schema: "org.d.keybindings", Key: "k4", Label: "Copy again", Accelerator: "<Control>c"},
	}
}

func visibleKeys(m tableModel) []string {
	out := make([]string, 0, len(m.visible))
	for _, i := range m.visible {
		out = append(out, m.rows[i].Key)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTable_EmptyFilterShowsAllRows(t *testing.T) {
	m := newTableModel(testRows())
	if len(m.visible) != 4 {
		t.Fatalf("visible = %d, want 4", len(m.visible))
	}
	if got := visibleKeys(m); !equalStrings(got, []string{"k1", "k2", "k3", "k4"}) {
		t.Errorf("initial order = %v, want load order", got)
	}
}

func TestTable_SortTogglesDirection(t *testing.T) {
	m := newTableModel(testRows())

	// "2" sorts by binding ascending: unbound row first.
	m, _ = m.update(keyMsg("2"))
	if m.sortCol != colBinding || m.sortDesc {
		t.Fatalf("after '2': sortCol=%d desc=%v, want binding asc", m.sortCol, m.sortDesc)
	}
	got := visibleKeys(m)
	if got[0] != "k2" {
		t.Errorf("ascending binding sort should place unbound row first, got %v", got)
	}
	// Stable: the two <Control>c rows keep load order (k1 before k4).
	if !equalStrings(got, []string{"k2", "k1", "k4", "k3"}) {
		t.Errorf("ascending binding sort = %v, want [k2 k1 k4 k3]", got)
	}

	// Second press flips to descending.
	m, _ = m.update(keyMsg("2"))
	if !m.sortDesc {
		t.Fatal("after second '2': want descending")
	}
	got = visibleKeys(m)
	if got[len(got)-1] != "k2" {
		t.Errorf("descending binding sort should place unbound row last, got %v", got)
	}

	// Third press returns to ascending, identical to the first result.
	m, _ = m.update(keyMsg("2"))
	if got := visibleKeys(m); !equalStrings(got, []string{"k2", "k1", "k4", "k3"}) {
		t.Errorf("double toggle should restore ascending order, got %v", got)
	}
}

func TestTable_SortSwitchesColumnAscending(t *testing.T) {
	m := newTableModel(testRows())
	m, _ = m.update(keyMsg("2"))
	m, _ = m.update(keyMsg("2")) // binding desc
	m, _ = m.update(keyMsg("3")) // switch to schema: resets to ascending
	if m.sortCol != colSchema || m.sortDesc {
		t.Fatalf("after '3': sortCol=%d desc=%v, want schema asc", m.sortCol, m.sortDesc)
	}
	if got := visibleKeys(m); !equalStrings(got, []string{"k1", "k3", "k2", "k4"}) {
		t.Errorf("schema sort = %v, want [k1 k3 k2 k4]", got)
	}
}

func TestTable_FilterIsLiveAndCaseInsensitive(t *testing.T) {
	m := newTableModel(testRows())

	m, _ = m.update(keyMsg("/"))
	if !m.filterMode || !m.filter.Focused() {
		t.Fatal("after '/': filter input should be focused")
	}

	// Each keystroke narrows immediately, no enter required.
	for _, r := range "copy" {
		m, _ = m.update(keyMsg(string(r)))
	}
	if got := visibleKeys(m); !equalStrings(got, []string{"k1", "k4"}) {
		t.Errorf("filter 'copy' = %v, want [k1 k4]", got)
	}

	// Narrow further to a substring unique to one row's label.
	for _, r := range " again" {
		m, _ = m.update(keyMsg(string(r)))
	}
	if got := visibleKeys(m); !equalStrings(got, []string{"k4"}) {
		t.Errorf("filter 'copy again' = %v, want [k4]", got)
	}
}

func TestTable_FilterMatchesAnyColumn(t *testing.T) {
	m := newTableModel(testRows())
	m, _ = m.update(keyMsg("/"))

	// Substring of a schema id.
	for _, r := range "org.b" {
		m, _ = m.update(keyMsg(string(r)))
	}
	if got := visibleKeys(m); !equalStrings(got, []string{"k3"}) {
		t.Errorf("filter 'org.b' = %v, want [k3]", got)
	}

	// Replace with an accelerator substring.
	m, _ = m.update(escMsg())
	m, _ = m.update(keyMsg("/"))
	for _, r := range "alt>f4" {
		m, _ = m.update(keyMsg(string(r)))
	}
	if got := visibleKeys(m); !equalStrings(got, []string{"k3"}) {
		t.Errorf("filter 'alt>f4' = %v, want [k3]", got)
	}
}

func TestTable_FilterUniqueRowUnderAnySort(t *testing.T) {
	for _, sortKey := range []string{"1", "2", "3", "4"} {
		m := newTableModel(testRows())
		m, _ = m.update(keyMsg(sortKey))
		m, _ = m.update(keyMsg("/"))
		for _, r := range "paste" {
			m, _ = m.update(keyMsg(string(r)))
		}
		if got := visibleKeys(m); !equalStrings(got, []string{"k2"}) {
			t.Errorf("sort %s + filter 'paste' = %v, want [k2]", sortKey, got)
		}
	}
}

func TestTable_ClearFilterRestoresRowsWithSortApplied(t *testing.T) {
	m := newTableModel(testRows())
	m, _ = m.update(keyMsg("2")) // binding asc
	sorted := visibleKeys(m)

	m, _ = m.update(keyMsg("/"))
	for _, r := range "copy" {
		m, _ = m.update(keyMsg(string(r)))
	}
	if len(m.visible) != 2 {
		t.Fatalf("filtered visible = %d, want 2", len(m.visible))
	}

	// Esc clears the filter entirely.
	m, _ = m.update(escMsg())
	if m.filterMode {
		t.Error("esc should leave filter mode")
	}
	if m.filter.Value() != "" {
		t.Errorf("esc should clear filter text, got %q", m.filter.Value())
	}
	if got := visibleKeys(m); !equalStrings(got, sorted) {
		t.Errorf("after clearing filter: %v, want prior sorted order %v", got, sorted)
	}
}

func TestTable_EnterKeepsFilter(t *testing.T) {
	m := newTableModel(testRows())
	m, _ = m.update(keyMsg("/"))
	for _, r := range "copy" {
		m, _ = m.update(keyMsg(string(r)))
	}
	m, _ = m.update(enterMsg())

	if m.filterMode {
		t.Error("enter should leave filter mode")
	}
	if m.filter.Value() != "copy" {
		t.Errorf("enter should keep filter text, got %q", m.filter.Value())
	}
	if len(m.visible) != 2 {
		t.Errorf("visible = %d, want 2", len(m.visible))
	}

	// Esc from the table view clears the retained filter.
	m, _ = m.update(escMsg())
	if len(m.visible) != 4 {
		t.Errorf("after esc: visible = %d, want 4", len(m.visible))
	}
}

func TestTable_RowsNeverMutate(t *testing.T) {
	rows := testRows()
	m := newTableModel(rows)
	m, _ = m.update(keyMsg("2"))
	m, _ = m.update(keyMsg("/"))
	m, _ = m.update(keyMsg("c"))

	want := testRows()
	for i := range want {
		if m.rows[i] != want[i] {
			t.Fatalf("row %d mutated: %+v", i, m.rows[i])
		}
	}
}

func TestTable_CursorNavigation(t *testing.T) {
	m := newTableModel(testRows())
	m.setSize(120, 24)

	m, _ = m.update(keyMsg("j"))
	m, _ = m.update(keyMsg("j"))
	if m.cursor != 2 {
		t.Errorf("after jj: cursor = %d, want 2", m.cursor)
	}
	m, _ = m.update(keyMsg("G"))
	if m.cursor != 3 {
		t.Errorf("after G: cursor = %d, want 3", m.cursor)
	}
	m, _ = m.update(keyMsg("j"))
	if m.cursor != 3 {
		t.Errorf("cursor should clamp at bottom, got %d", m.cursor)
	}
	m, _ = m.update(keyMsg("g"))
	if m.cursor != 0 {
		t.Errorf("after g: cursor = %d, want 0", m.cursor)
	}
	m, _ = m.update(keyMsg("k"))
	if m.cursor != 0 {
		t.Errorf("cursor should clamp at top, got %d", m.cursor)
	}
}

func TestTable_View(t *testing.T) {
	m := newTableModel(testRows())
	m.setSize(120, 24)

	v := m.view()
	if !strings.Contains(v, "Keybindings") {
		t.Errorf("view missing title:\n%s", v)
	}
	if !strings.Contains(v, "4 of 4 bindings") {
		t.Errorf("view missing row count:\n%s", v)
	}
	if !strings.Contains(v, "<Control>c") {
		t.Errorf("view missing accelerator text:\n%s", v)
	}
	if !strings.Contains(v, "load order") {
		t.Errorf("view should describe the default sort state:\n%s", v)
	}
}

func TestTable_ViewEmpty(t *testing.T) {
	m := newTableModel(nil)
	m.setSize(120, 24)

	v := m.view()
	if !strings.Contains(v, "No keybindings found.") {
		t.Errorf("empty view should show notice:\n%s", v)
	}
}

func TestTable_ViewNoMatches(t *testing.T) {
	m := newTableModel(testRows())
	m.setSize(120, 24)
	m, _ = m.update(keyMsg("/"))
	for _, r := range "zzzz" {
		m, _ = m.update(keyMsg(string(r)))
	}

	v := m.view()
	if !strings.Contains(v, `No matches for "zzzz"`) {
		t.Errorf("view should report no matches:\n%s", v)
	}
}

func TestTrunc(t *testing.T) {
	if got := trunc("abcdefgh", 5); got != "ab..." {
		t.Errorf("trunc = %q, want %q", got, "ab...")
	}
	if got := trunc("abc", 5); got != "abc" {
		t.Errorf("trunc = %q, want %q", got, "abc")
	}
}
