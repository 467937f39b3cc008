package gsettings

import "strings"

// Kind discriminates the loosely typed values the settings store prints.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindStringList
)

// Value is the tagged variant produced at the store read boundary.
// Downstream code normalizes it into plain strings immediately and never
// deals with store typing again.
type Value struct {
	Kind Kind
	Str  string   // KindString: the string; KindUnknown: the raw text
	List []string // KindStringList
}

// ParseValue parses the textual GVariant encoding used by
// `gsettings list-recursively` output. Recognized forms:
//
//	'<Super>e'            single-quoted string
//	"<Super>e"            double-quoted string
//	['<Alt>F4', '<Super>w']  string array
//	[]                    empty array
//	@as []                type-annotated empty array
//
// Anything else (booleans, numbers, tuples, dictionaries) is KindUnknown
// with the raw text preserved.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)

	// Drop a leading type annotation such as "@as".
	if strings.HasPrefix(s, "@") {
		if i := strings.IndexByte(s, ' '); i > 0 {
			s = strings.TrimSpace(s[i+1:])
		}
	}

	switch {
	case strings.HasPrefix(s, "["):
		if list, ok := parseStringList(s); ok {
			return Value{Kind: KindStringList, List: list}
		}
	case strings.HasPrefix(s, "'"), strings.HasPrefix(s, `"`):
		if v, rest, ok := parseQuoted(s); ok && strings.TrimSpace(rest) == "" {
			return Value{Kind: KindString, Str: v}
		}
	}
	return Value{Kind: KindUnknown, Str: raw}
}

// parseStringList parses "[ 'a', 'b' ]". Returns ok=false when any
// element is not a quoted string.
func parseStringList(s string) ([]string, bool) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, false
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	list := []string{}
	for inner != "" {
		v, rest, ok := parseQuoted(inner)
		if !ok {
			return nil, false
		}
		list = append(list, v)
		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		if !strings.HasPrefix(rest, ",") {
			return nil, false
		}
		inner = strings.TrimSpace(rest[1:])
		if inner == "" {
			// trailing comma
			return nil, false
		}
	}
	return list, true
}

// parseQuoted consumes one quoted string from the front of s and returns
// the unescaped value and the remainder.
func parseQuoted(s string) (val, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	quote := s[0]
	if quote != '\'' && quote != '"' {
		return "", "", false
	}
	var b strings.Builder
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		if escaped {
			switch c {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(c)
			}
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case quote:
			return b.String(), s[i+1:], true
		default:
			b.WriteByte(c)
		}
	}
	return "", "", false // unterminated
}
