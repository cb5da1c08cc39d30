package runtime

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/prettifier/internal/fallback"
	"github.com/aretw0/prettifier/pkg/domain"
)

// markdownWindow is how many leading runes are scanned for markdown markers.
const markdownWindow = 500

var markdownMarkers = []string{"# ", "## ", "### ", "- ", "* ", "```", "[", "|"}

// Detect classifies text as JSON, YAML, Markdown or Plain. The first matching
// rule wins, so text that is valid JSON is never treated as markdown.
//
// Any text whose first line holds a colon and which parses as a YAML mapping
// is classified as YAML, so a single line of prose like "Note: see below"
// comes back as YAML.
func (e *Engine) Detect(ctx context.Context, text string) domain.Kind {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if fallback.ValidJSON(trimmed) {
			return domain.KindJSON
		}
	}

	firstLine, _, _ := strings.Cut(trimmed, "\n")
	if strings.HasPrefix(trimmed, "---") || strings.Contains(firstLine, ":") {
		if e.isYAML(ctx, text) {
			return domain.KindYAML
		}
	}

	head := trimmed
	if utf8.RuneCountInString(head) > markdownWindow {
		head = string([]rune(head)[:markdownWindow])
	}
	for _, marker := range markdownMarkers {
		if strings.Contains(head, marker) {
			return domain.KindMarkdown
		}
	}
	return domain.KindPlain
}

// isYAML asks yq when it is installed and the built-in parser otherwise.
func (e *Engine) isYAML(ctx context.Context, text string) bool {
	for _, step := range e.chains[domain.KindYAML] {
		if step.Name != domain.RendererYQ || !e.available(step) {
			continue
		}
		argv, timeout := e.command(step, domain.DefaultOptions(domain.KindYAML))
		return e.invoker.Invoke(ctx, argv, text, timeout).Succeeded
	}
	return fallback.IsStructuredYAML(text)
}
