package domain

import "strings"

// Kind identifies the content kind a request targets.
type Kind string

const (
	KindMarkdown Kind = "markdown"
	KindJSON     Kind = "json"
	KindCode     Kind = "code"
	KindYAML     Kind = "yaml"
	KindTable    Kind = "table"
	KindRaw      Kind = "raw"

	// KindPlain is only produced by detection: text that matches no other kind
	// and is returned verbatim.
	KindPlain Kind = "plain"
)

// Kinds lists every kind a caller may request directly, in operation order.
var Kinds = []Kind{KindMarkdown, KindJSON, KindCode, KindYAML, KindTable, KindRaw}

// String makes Kind satisfy the fmt.Stringer interface.
func (k Kind) String() string {
	return string(k)
}

// ParseKind resolves a user-supplied kind name (case-insensitive).
// "auto" is accepted as an alias for KindRaw.
func ParseKind(s string) (Kind, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "auto" {
		return KindRaw, true
	}
	for _, k := range Kinds {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}
