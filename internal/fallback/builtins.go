package fallback

import (
	"github.com/aretw0/prettifier/pkg/domain"
	"github.com/aretw0/prettifier/pkg/ports"
)

// Builtins hands out the terminating formatter for each kind.
type Builtins struct {
	tableStyle TableStyle
	tableColor bool
}

// Option configures Builtins.
type Option func(*Builtins)

// WithTableStyle selects the table renderer. Unknown styles fall back to TableRich.
func WithTableStyle(style TableStyle) Option {
	return func(b *Builtins) {
		if style.Valid() {
			b.tableStyle = style
		}
	}
}

// WithTableColor toggles header coloring for rich tables.
func WithTableColor(color bool) Option {
	return func(b *Builtins) {
		b.tableColor = color
	}
}

// New creates the built-in set with rich colored tables.
func New(opts ...Option) *Builtins {
	b := &Builtins{
		tableStyle: TableRich,
		tableColor: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// For returns the built-in formatter terminating kind's chain.
func (b *Builtins) For(kind domain.Kind) ports.Formatter {
	switch kind {
	case domain.KindJSON:
		return ports.FormatterFunc(JSON)
	case domain.KindYAML:
		return ports.FormatterFunc(YAML)
	case domain.KindTable:
		return ports.FormatterFunc(b.Table)
	default:
		return ports.FormatterFunc(Passthrough)
	}
}

// Table renders req.Text as table data titled by req.Options.Title.
func (b *Builtins) Table(req domain.Request) string {
	t, err := ParseTable(req.Text)
	if err != nil {
		return domain.MsgInvalidTableData
	}
	return RenderTable(t, req.Options.Title, b.tableStyle, b.tableColor)
}
