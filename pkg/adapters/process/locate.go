package process

import (
	"os/exec"
	"time"

	"github.com/aretw0/prettifier/pkg/domain"
)

// LookPathFunc resolves a command to an executable path.
type LookPathFunc func(file string) (string, error)

// Locator determines which external renderers are installed on the host.
type Locator struct {
	lookPath       LookPathFunc
	overrides      map[string]RendererConfig
	defaultTimeout time.Duration
}

// LocatorOption configures the locator.
type LocatorOption func(*Locator)

// WithOverrides applies per-renderer configuration (command path, timeout, disabled).
func WithOverrides(overrides map[string]RendererConfig) LocatorOption {
	return func(l *Locator) {
		l.overrides = overrides
	}
}

// WithLookPath replaces exec.LookPath. Used by tests to simulate a host.
func WithLookPath(fn LookPathFunc) LocatorOption {
	return func(l *Locator) {
		l.lookPath = fn
	}
}

// WithDefaultTimeout sets the timeout recorded for renderers without an override.
func WithDefaultTimeout(d time.Duration) LocatorOption {
	return func(l *Locator) {
		l.defaultTimeout = d
	}
}

// NewLocator creates a new Locator backed by exec.LookPath.
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		lookPath:       exec.LookPath,
		defaultTimeout: domain.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate checks every name once and returns the resulting capability map.
// A lookup failure of any kind marks the renderer unavailable; Locate never fails.
func (l *Locator) Locate(names []string) domain.Capabilities {
	caps := make(domain.Capabilities, len(names))
	for _, name := range names {
		cfg := l.overrides[name]

		desc := domain.RendererDescriptor{
			Name:    name,
			Command: name,
			Timeout: l.defaultTimeout,
		}
		if cfg.Command != "" {
			desc.Command = cfg.Command
		}
		if cfg.Timeout > 0 {
			desc.Timeout = cfg.Timeout
		}

		if !cfg.Disabled {
			if path, err := l.lookPath(desc.Command); err == nil && path != "" {
				desc.Command = path
				desc.Available = true
			}
		}
		caps[name] = desc
	}
	return caps
}

// Locate is a convenience wrapper that resolves names with the default Locator.
func Locate(names []string, opts ...LocatorOption) domain.Capabilities {
	return NewLocator(opts...).Locate(names)
}
