package bindings

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/keyglass/keyglass/internal/gsettings"
)

// Loader produces the full Binding set from the settings store in one
// pass. The result is immutable; there is no watch or reload.
type Loader struct {
	Source    gsettings.Source
	Summaries gsettings.Summaries

	// ExtraSchemas are scanned in addition to schemas whose id contains
	// "keybinding". ExcludeSchemas are skipped even when they match.
	ExtraSchemas   []string
	ExcludeSchemas []string

	Logger *slog.Logger
}

// customSpec accumulates the binding/name/command triplet of one
// relocatable custom-keybinding instance.
type customSpec struct {
	id         string
	binding    string
	name       string
	command    string
	hasBinding bool
}

// Load reads the store and returns one row per keybinding key, in store
// order with custom shortcuts appended. Unreadable or unexpected entries
// are logged and skipped; only total store inaccessibility is an error.
func (l *Loader) Load(ctx context.Context) ([]Binding, error) {
	entries, err := l.Source.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading settings store: %w", err)
	}

	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	extra := make(map[string]bool, len(l.ExtraSchemas))
	for _, s := range l.ExtraSchemas {
		extra[s] = true
	}
	exclude := make(map[string]bool, len(l.ExcludeSchemas))
	for _, s := range l.ExcludeSchemas {
		exclude[s] = true
	}

	var rows []Binding
	seen := map[string]bool{}
	customs := map[string]*customSpec{}
	var customOrder []string

	for _, e := range entries {
		if exclude[e.Schema] || exclude[e.ID()] {
			continue
		}

		// Relocatable custom shortcuts carry their accelerator, name, and
		// command in three separate string keys; fold them into one row.
		if e.Path != "" && strings.Contains(e.Schema, "custom-keybinding") {
			c := customs[e.ID()]
			if c == nil {
				c = &customSpec{id: e.ID()}
				customs[e.ID()] = c
				customOrder = append(customOrder, e.ID())
			}
			if e.Value.Kind != gsettings.KindString {
				logger.Warn("skipping custom shortcut key with unexpected type",
					"schema", e.ID(), "key", e.Key)
				continue
			}
			switch e.Key {
			case "binding":
				c.binding = e.Value.Str
				c.hasBinding = true
			case "name":
				c.name = e.Value.Str
			case "command":
				c.command = e.Value.Str
			}
			continue
		}

		if !strings.Contains(e.Schema, "keybinding") && !extra[e.Schema] {
			continue
		}
		// The path-list key that enumerates custom instances; its
		// children are emitted as their own rows above.
		if e.Key == "custom-keybindings" {
			continue
		}
		// Keybinding keys are string arrays; anything else in these
		// schemas (booleans, enums) is not a shortcut.
		if e.Value.Kind != gsettings.KindStringList {
			continue
		}

		id := e.ID()
		dedupe := id + "\x00" + e.Key
		if seen[dedupe] {
			logger.Warn("skipping duplicate binding", "schema", id, "key", e.Key)
			continue
		}
		seen[dedupe] = true

		rows = append(rows, Binding{
			Schema:      id,
			Key:         e.Key,
			Label:       l.label(e.Schema, e.Key),
			Accelerator: joinCombinations(e.Value.List),
		})
	}

	for _, id := range customOrder {
		c := customs[id]
		if !c.hasBinding {
			logger.Warn("skipping custom shortcut without binding key", "schema", id)
			continue
		}
		rows = append(rows, Binding{
			Schema:      id,
			Key:         "binding",
			Label:       customLabel(c),
			Accelerator: c.binding,
		})
	}

	return rows, nil
}

// label resolves the display label: installed schema summary first, then
// the humanised key name.
func (l *Loader) label(schema, key string) string {
	if s := l.Summaries.Lookup(schema, key); s != "" {
		return s
	}
	return Humanise(key)
}

func customLabel(c *customSpec) string {
	if c.name != "" {
		return c.name
	}
	if c.command != "" {
		return Humanise(path.Base(c.command))
	}
	return "Custom Shortcut"
}

// joinCombinations collapses a key's combination list into one display
// string. Empty combinations are dropped; an empty result means unbound.
func joinCombinations(list []string) string {
	var kept []string
	for _, c := range list {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, ", ")
}
