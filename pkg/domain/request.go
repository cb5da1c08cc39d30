package domain

// Options carries the kind-specific configuration of a request.
// Fields that do not apply to a kind are ignored by its chain.
type Options struct {
	Theme       string `json:"theme,omitempty" mapstructure:"theme"`
	Width       int    `json:"width,omitempty" mapstructure:"width"`
	Indent      int    `json:"indent,omitempty" mapstructure:"indent"`
	Color       bool   `json:"color,omitempty" mapstructure:"color"`
	Language    string `json:"language,omitempty" mapstructure:"language"`
	LineNumbers bool   `json:"line_numbers,omitempty" mapstructure:"line_numbers"`
	Title       string `json:"title,omitempty" mapstructure:"title"`
}

// DefaultOptions returns the documented defaults for a kind.
func DefaultOptions(k Kind) Options {
	switch k {
	case KindMarkdown:
		return Options{Theme: DefaultMarkdownTheme}
	case KindJSON:
		return Options{Indent: DefaultIndent, Color: true}
	case KindCode:
		return Options{Theme: DefaultCodeTheme, Language: DefaultLanguage}
	case KindTable:
		return Options{Color: true}
	}
	return Options{}
}

// Request is a single formatting request. It is constructed per call and never shared.
// For KindTable, Text holds the JSON-encoded table data.
type Request struct {
	Kind    Kind    `json:"kind"`
	Text    string  `json:"text"`
	Options Options `json:"options"`
}

// NewRequest builds a request with the kind's default options.
func NewRequest(k Kind, text string) Request {
	return Request{Kind: k, Text: text, Options: DefaultOptions(k)}
}

// Outcome is the result of one renderer attempt.
// Output is the rendered text on success, and a diagnostic on failure.
type Outcome struct {
	Succeeded bool
	Output    string
}

// Success builds a successful outcome.
func Success(output string) Outcome {
	return Outcome{Succeeded: true, Output: output}
}

// Failure builds a failed outcome carrying a diagnostic.
func Failure(diagnostic string) Outcome {
	return Outcome{Output: diagnostic}
}
