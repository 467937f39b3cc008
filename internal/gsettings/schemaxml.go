package gsettings

import (
	"encoding/xml"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Summaries holds the human-readable per-key summary text declared in
// installed schema XML, keyed by schema id then key name.
type Summaries map[string]map[string]string

// Lookup returns the summary for a key, or "" when none is installed.
func (s Summaries) Lookup(schema, key string) string {
	return s[schema][key]
}

type schemaListXML struct {
	Schemas []struct {
		ID   string `xml:"id,attr"`
		Keys []struct {
			Name    string `xml:"name,attr"`
			Summary string `xml:"summary"`
		} `xml:"key"`
	} `xml:"schema"`
}

// LoadSummaries parses every *.gschema.xml under <dir>/glib-2.0/schemas
// for the given data dirs. Earlier dirs win, matching the XDG search
// order. Missing dirs and unparseable files contribute nothing; this
// never fails.
func LoadSummaries(dirs []string, logger *slog.Logger) Summaries {
	out := Summaries{}
	for _, dir := range dirs {
		pattern := filepath.Join(dir, "glib-2.0", "schemas", "*.gschema.xml")
		files, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, file := range files {
			addSummaries(out, file, logger)
		}
	}
	return out
}

func addSummaries(out Summaries, file string, logger *slog.Logger) {
	data, err := os.ReadFile(file)
	if err != nil {
		logger.Debug("skipping unreadable schema file", "file", file, "error", err)
		return
	}
	var list schemaListXML
	if err := xml.Unmarshal(data, &list); err != nil {
		logger.Debug("skipping unparseable schema file", "file", file, "error", err)
		return
	}
	for _, sch := range list.Schemas {
		if sch.ID == "" {
			continue
		}
		keys := out[sch.ID]
		for _, k := range sch.Keys {
			summary := strings.Join(strings.Fields(k.Summary), " ")
			if k.Name == "" || summary == "" {
				continue
			}
			if keys == nil {
				keys = map[string]string{}
				out[sch.ID] = keys
			}
			if _, dup := keys[k.Name]; !dup {
				keys[k.Name] = summary
			}
		}
	}
}
