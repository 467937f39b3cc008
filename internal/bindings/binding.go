// Package bindings flattens settings-store entries into keyboard-shortcut rows.
package bindings

import (
	"strings"
	"unicode"
)

// Binding is one configured keyboard shortcut.
//
// Schema includes the instance path for relocatable schemas, so
// (Schema, Key) is unique within a loaded set. Accelerator is the
// combination exactly as stored ("" = unbound); when a key holds several
// combinations they are joined with ", " into one row.
type Binding struct {
	Schema      string `json:"schema"`
	Key         string `json:"key"`
	Label       string `json:"label"`
	Accelerator string `json:"accelerator"`
}

// Columns returns the display strings in table-column order:
// label, accelerator, schema, key.
func (b Binding) Columns() [4]string {
	return [4]string{b.Label, b.Accelerator, b.Schema, b.Key}
}

// Humanise turns a key name like "switch-to-workspace-1" into
// "Switch To Workspace 1". Used as the label fallback when no schema
// summary is installed.
func Humanise(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = asciiTitle(w)
	}
	return strings.Join(words, " ")
}

func asciiTitle(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
