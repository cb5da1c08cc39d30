package ports

import (
	"context"

	"github.com/aretw0/prettifier/pkg/domain"
)

// Renderer is an in-process renderer. It takes part in a chain like an external
// tool does: an error or empty result advances the chain.
type Renderer interface {
	Name() string
	Render(ctx context.Context, req domain.Request) (string, error)
}

// Formatter is a built-in formatter. Formatters are total: they always produce
// text, reporting malformed input as a user-facing message.
type Formatter interface {
	Format(req domain.Request) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(req domain.Request) string

// Format calls f.
func (f FormatterFunc) Format(req domain.Request) string {
	return f(req)
}
