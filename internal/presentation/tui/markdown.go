package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/prettifier/pkg/domain"
)

// MarkdownRenderer renders markdown in-process with glamour.
type MarkdownRenderer struct {
	profile termenv.Profile
	width   int
}

// MarkdownOption configures the MarkdownRenderer.
type MarkdownOption func(*MarkdownRenderer)

// WithProfile sets the color profile of the emitted escape codes.
func WithProfile(p termenv.Profile) MarkdownOption {
	return func(r *MarkdownRenderer) {
		r.profile = p
	}
}

// NewMarkdownRenderer creates a glamour-backed renderer.
// Output targets the caller's terminal, not ours, so the profile defaults to
// 256 colors instead of being detected.
func NewMarkdownRenderer(opts ...MarkdownOption) *MarkdownRenderer {
	r := &MarkdownRenderer{
		profile: termenv.ANSI256,
		width:   80,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements ports.Renderer.
func (r *MarkdownRenderer) Name() string {
	return domain.RendererGlamour
}

// Render implements ports.Renderer.
// Theme "auto" picks the dark style, or notty when the profile has no color.
// Any other theme is a glamour style name or a path to a JSON style file.
func (r *MarkdownRenderer) Render(ctx context.Context, req domain.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	options := []glamour.TermRendererOption{
		glamour.WithColorProfile(r.profile),
		glamour.WithEmoji(),
	}
	switch theme := req.Options.Theme; theme {
	case "", domain.DefaultMarkdownTheme:
		if r.profile == termenv.Ascii {
			options = append(options, glamour.WithStandardStyle("notty"))
		} else {
			options = append(options, glamour.WithStandardStyle("dark"))
		}
	default:
		options = append(options, glamour.WithStylePath(theme))
	}

	width := req.Options.Width
	if width <= 0 {
		width = r.width
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return tr.Render(req.Text)
}
