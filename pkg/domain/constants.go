package domain

import "time"

// Operation names exposed to callers.
const (
	OpFormatMarkdown = "format_markdown"
	OpFormatJSON     = "format_json"
	OpFormatCode     = "format_code"
	OpFormatYAML     = "format_yaml"
	OpFormatTable    = "format_table"
	OpFormatRaw      = "format_raw"
)

// Known external renderer names. They double as the default binary names.
const (
	RendererGlow = "glow"
	RendererRich = "rich"
	RendererJQ   = "jq"
	RendererYQ   = "yq"
	RendererBat  = "bat"
)

// In-process renderer names. They appear in the capability map only when enabled.
const (
	RendererGlamour = "glamour"
	RendererChroma  = "chroma"
)

// SourceBuiltin is reported as the resolution source when the built-in fallback answered.
const SourceBuiltin = "builtin"

// ExternalRenderers lists every external renderer the service knows how to drive.
var ExternalRenderers = []string{RendererGlow, RendererRich, RendererJQ, RendererYQ, RendererBat}

// DefaultTimeout bounds a single external renderer invocation.
const DefaultTimeout = 10 * time.Second

// Option defaults.
const (
	DefaultMarkdownTheme = "auto"
	DefaultCodeTheme     = "monokai"
	DefaultLanguage      = "auto"
	DefaultIndent        = 2
	DefaultTableData     = "[]"
)

// OperationKind maps an operation name to the kind it formats.
func OperationKind(op string) (Kind, bool) {
	switch op {
	case OpFormatMarkdown:
		return KindMarkdown, true
	case OpFormatJSON:
		return KindJSON, true
	case OpFormatCode:
		return KindCode, true
	case OpFormatYAML:
		return KindYAML, true
	case OpFormatTable:
		return KindTable, true
	case OpFormatRaw:
		return KindRaw, true
	}
	return "", false
}

// KindOperation is the inverse of OperationKind.
func KindOperation(k Kind) string {
	return "format_" + string(k)
}
