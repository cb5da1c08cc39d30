package prettifier

import (
	"log/slog"
	"time"

	"github.com/aretw0/prettifier/internal/config"
	"github.com/aretw0/prettifier/internal/fallback"
	"github.com/aretw0/prettifier/pkg/adapters/process"
	"github.com/aretw0/prettifier/pkg/domain"
	"github.com/aretw0/prettifier/pkg/observability"
	"github.com/aretw0/prettifier/pkg/ports"
)

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.Hooks) Option {
	return func(s *Service) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithMetrics feeds engine events into Prometheus collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCapabilities skips probing and uses caps as the set of installed renderers.
func WithCapabilities(caps domain.Capabilities) Option {
	return func(s *Service) {
		s.caps = caps
	}
}

// WithInvoker replaces the process invoker.
func WithInvoker(inv ports.Invoker) Option {
	return func(s *Service) {
		s.invoker = inv
	}
}

// WithTimeout sets the default per-invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRendererOverrides sets per-renderer commands, timeouts and disabled flags.
func WithRendererOverrides(overrides map[string]process.RendererConfig) Option {
	return func(s *Service) {
		s.overrides = overrides
	}
}

// WithRendererEnv appends KEY=VALUE pairs to the environment of every renderer.
// Ignored when WithInvoker is given.
func WithRendererEnv(env ...string) Option {
	return func(s *Service) {
		s.env = append(s.env, env...)
	}
}

// WithTableStyle selects the built-in table renderer and header coloring.
func WithTableStyle(style fallback.TableStyle, color bool) Option {
	return func(s *Service) {
		s.tableStyle = style
		s.tableColor = color
	}
}

// WithInProcessRenderers appends the glamour markdown renderer and the chroma
// code highlighter to their chains.
func WithInProcessRenderers(markdown, code bool) Option {
	return func(s *Service) {
		s.inProcessMarkdown = markdown
		s.inProcessCode = code
	}
}

// FromConfig applies a loaded configuration.
func FromConfig(cfg *config.Config) Option {
	return func(s *Service) {
		WithTimeout(cfg.Timeout)(s)
		WithRendererOverrides(cfg.Renderers)(s)
		WithRendererEnv(cfg.Env...)(s)
		WithTableStyle(fallback.TableStyle(cfg.Table.Style), cfg.Table.Color)(s)
		WithInProcessRenderers(cfg.InProcess.Markdown, cfg.InProcess.Code)(s)
	}
}
