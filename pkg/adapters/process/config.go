package process

import (
	"fmt"
	"time"

	"github.com/aretw0/prettifier/pkg/domain"
)

// RendererConfig overrides how a known renderer is located and run.
type RendererConfig struct {
	// Command is the binary name or path. Empty means the renderer name itself.
	Command string `yaml:"command" json:"command" koanf:"command"`
	// Timeout bounds each invocation. Zero means the service default.
	Timeout time.Duration `yaml:"timeout" json:"timeout" koanf:"timeout"`
	// Disabled removes the renderer from the capability map without probing it.
	Disabled bool `yaml:"disabled" json:"disabled" koanf:"disabled"`
}

// ValidateOverrides rejects overrides for renderers the service does not drive.
func ValidateOverrides(overrides map[string]RendererConfig) error {
	for name, cfg := range overrides {
		if !isKnownRenderer(name) {
			return fmt.Errorf("unknown renderer %q (known: %v)", name, domain.ExternalRenderers)
		}
		if cfg.Timeout < 0 {
			return fmt.Errorf("renderer %q: timeout must not be negative", name)
		}
	}
	return nil
}

func isKnownRenderer(name string) bool {
	for _, known := range domain.ExternalRenderers {
		if known == name {
			return true
		}
	}
	return false
}
