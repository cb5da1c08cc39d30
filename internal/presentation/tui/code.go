package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/aretw0/prettifier/pkg/domain"
)

// CodeRenderer highlights source code in-process with chroma.
type CodeRenderer struct {
	formatter chroma.Formatter
}

// NewCodeRenderer creates a chroma-backed renderer using 256-color output.
func NewCodeRenderer() *CodeRenderer {
	r := &CodeRenderer{formatter: formatters.Get("terminal256")}
	if r.formatter == nil {
		r.formatter = formatters.Fallback
	}
	return r
}

// Name implements ports.Renderer.
func (r *CodeRenderer) Name() string {
	return domain.RendererChroma
}

// Render implements ports.Renderer. The lexer is looked up by language, or
// guessed from the text when the language is "auto" or unknown.
func (r *CodeRenderer) Render(ctx context.Context, req domain.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var lexer chroma.Lexer
	if lang := req.Options.Language; lang != "" && lang != domain.DefaultLanguage {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(req.Text)
	}
	if lexer == nil {
		return "", fmt.Errorf("no lexer for language %q", req.Options.Language)
	}
	lexer = chroma.Coalesce(lexer)

	theme := req.Options.Theme
	if theme == "" {
		theme = domain.DefaultCodeTheme
	}
	style := styles.Get(theme)

	iterator, err := lexer.Tokenise(nil, req.Text)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise: %w", err)
	}
	var buf strings.Builder
	if err := r.formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("failed to format: %w", err)
	}

	if req.Options.LineNumbers {
		return numberLines(buf.String()), nil
	}
	return buf.String(), nil
}

func numberLines(s string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	width := len(fmt.Sprint(len(lines)))
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%*d │ %s\n", width, i+1, line)
	}
	return b.String()
}
