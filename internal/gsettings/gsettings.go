// Package gsettings provides read-only access to the GNOME settings store.
//
// Access goes through the gsettings command-line tool rather than a GLib
// binding: one `gsettings list-recursively` dump yields every schema, key,
// and current value, including relocatable schema instances.
package gsettings

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Entry is one (schema, key, value) triple from the store.
type Entry struct {
	Schema string // schema id, e.g. org.gnome.desktop.wm.keybindings
	Path   string // instance path for relocatable schemas, "" otherwise
	Key    string
	Value  Value
}

// ID returns the schema identifier including the instance path when present.
func (e Entry) ID() string {
	if e.Path == "" {
		return e.Schema
	}
	return e.Schema + ":" + e.Path
}

// Source enumerates the current settings-store entries.
type Source interface {
	Entries(ctx context.Context) ([]Entry, error)
}

// CLI reads entries by running `gsettings list-recursively`.
type CLI struct {
	Bin     string        // executable name, default "gsettings"
	Timeout time.Duration // subprocess deadline, 0 = caller's context only
	Logger  *slog.Logger
}

// Entries dumps and parses the full store. The error is non-nil only when
// the store is entirely unreachable (binary missing, subprocess failure);
// malformed lines are logged and skipped.
func (c *CLI) Entries(ctx context.Context) ([]Entry, error) {
	bin := c.Bin
	if bin == "" {
		bin = "gsettings"
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	out, err := exec.CommandContext(ctx, bin, "list-recursively").Output()
	if err != nil {
		return nil, fmt.Errorf("running %s list-recursively: %w", bin, err)
	}
	return parseDump(out, c.logger()), nil
}

func (c *CLI) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// parseDump parses list-recursively output, one entry per line:
//
//	SCHEMA[:PATH] KEY VALUE
func parseDump(out []byte, logger *slog.Logger) []Entry {
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 3 {
			logger.Warn("skipping malformed settings line", "line", line)
			continue
		}
		schema, path := splitSchemaID(parts[0])
		entries = append(entries, Entry{
			Schema: schema,
			Path:   path,
			Key:    parts[1],
			Value:  ParseValue(parts[2]),
		})
	}
	return entries
}

// splitSchemaID splits "schema:/path/" into schema id and instance path.
func splitSchemaID(id string) (schema, path string) {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		return id[:i], id[i+1:]
	}
	return id, ""
}
