package domain

// ParamType is the JSON schema type of an operation parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
	ParamBoolean ParamType = "boolean"
)

// Param describes one operation argument.
type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description"`
	Required    bool      `json:"required,omitempty"`
	Default     any       `json:"default,omitempty"`
}

// Operation describes a callable formatting operation.
type Operation struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Kind        Kind    `json:"kind"`
	Params      []Param `json:"params"`
}

// Operations returns the catalog of every operation, in a stable order.
func Operations() []Operation {
	return []Operation{
		{
			Name:        OpFormatMarkdown,
			Description: "Format markdown text for terminal output. Use this when outputting any markdown content to the user.",
			Kind:        KindMarkdown,
			Params: []Param{
				{Name: "text", Type: ParamString, Description: "The markdown text to format", Required: true},
				{Name: "theme", Type: ParamString, Description: "Theme: 'dark', 'light', 'notty', 'dracula', 'pink', 'ascii' (default: auto-detect)", Default: DefaultMarkdownTheme},
				{Name: "width", Type: ParamInteger, Description: "Maximum width for wrapping (0: renderer default)", Default: 0},
			},
		},
		{
			Name:        OpFormatJSON,
			Description: "Format and syntax-highlight JSON data. Use this when outputting any JSON to the user.",
			Kind:        KindJSON,
			Params: []Param{
				{Name: "text", Type: ParamString, Description: "The JSON text to format", Required: true},
				{Name: "indent", Type: ParamInteger, Description: "Indentation spaces", Default: DefaultIndent},
				{Name: "color", Type: ParamBoolean, Description: "Enable syntax highlighting", Default: true},
			},
		},
		{
			Name:        OpFormatCode,
			Description: "Format and syntax-highlight source code. Use this when outputting code snippets to the user.",
			Kind:        KindCode,
			Params: []Param{
				{Name: "text", Type: ParamString, Description: "The code to format", Required: true},
				{Name: "language", Type: ParamString, Description: "Programming language (e.g., 'python', 'javascript', 'go', 'rust')", Default: DefaultLanguage},
				{Name: "line_numbers", Type: ParamBoolean, Description: "Show line numbers", Default: false},
				{Name: "theme", Type: ParamString, Description: "Color theme (e.g., 'monokai', 'dracula', 'github-dark')", Default: DefaultCodeTheme},
			},
		},
		{
			Name:        OpFormatYAML,
			Description: "Format and syntax-highlight YAML data. Use this when outputting any YAML to the user.",
			Kind:        KindYAML,
			Params: []Param{
				{Name: "text", Type: ParamString, Description: "The YAML text to format", Required: true},
			},
		},
		{
			Name:        OpFormatTable,
			Description: "Format data as a terminal table. Use this for structured data display.",
			Kind:        KindTable,
			Params: []Param{
				{Name: "data", Type: ParamString, Description: "JSON array of objects or array of arrays to format as table", Required: true, Default: DefaultTableData},
				{Name: "title", Type: ParamString, Description: "Optional table title"},
			},
		},
		{
			Name:        OpFormatRaw,
			Description: "Auto-detect content type and format appropriately. Use this when content type is unknown.",
			Kind:        KindRaw,
			Params: []Param{
				{Name: "text", Type: ParamString, Description: "The text to auto-format", Required: true},
			},
		},
	}
}

// LookupOperation returns the catalog entry for name.
func LookupOperation(name string) (Operation, bool) {
	for _, op := range Operations() {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
