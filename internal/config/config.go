// Package config loads the service configuration from defaults, an optional
// YAML file and PRETTIFIER_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/aretw0/prettifier/internal/fallback"
	"github.com/aretw0/prettifier/internal/logging"
	"github.com/aretw0/prettifier/pkg/adapters/process"
)

const (
	// DefaultFile is read from the working directory when no file is given.
	DefaultFile = "prettifier.yaml"
	// EnvPrefix marks environment overrides: PRETTIFIER_LOG_LEVEL sets log.level.
	EnvPrefix = "PRETTIFIER_"
)

// Config is the complete service configuration.
type Config struct {
	Log       LogConfig                         `koanf:"log"`
	Timeout   time.Duration                     `koanf:"timeout"`
	Table     TableConfig                       `koanf:"table"`
	InProcess InProcessConfig                   `koanf:"inprocess"`
	Metrics   MetricsConfig                     `koanf:"metrics"`
	Renderers map[string]process.RendererConfig `koanf:"renderers"`
	// Env holds KEY=VALUE pairs added to every renderer's environment.
	Env       []string                          `koanf:"env"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TableConfig selects the built-in table renderer.
type TableConfig struct {
	Style string `koanf:"style"`
	Color bool   `koanf:"color"`
}

// InProcessConfig toggles the library-backed renderers appended to chains.
type InProcessConfig struct {
	Markdown bool `koanf:"markdown"`
	Code     bool `koanf:"code"`
}

// MetricsConfig toggles the Prometheus collectors and the /metrics route.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Defaults returns the built-in configuration as a nested map.
func Defaults() map[string]any {
	return map[string]any{
		"log": map[string]any{
			"level":  "info",
			"format": string(logging.FormatText),
		},
		"timeout": "10s",
		"table": map[string]any{
			"style": string(fallback.TableRich),
			"color": true,
		},
		"inprocess": map[string]any{
			"markdown": false,
			"code":     false,
		},
		"metrics": map[string]any{
			"enabled": true,
		},
	}
}

type loader struct {
	path     string
	required bool
}

// LoadOption configures Load.
type LoadOption func(*loader)

// WithFile reads path instead of DefaultFile. The file must exist.
func WithFile(path string) LoadOption {
	return func(l *loader) {
		if path != "" {
			l.path = path
			l.required = true
		}
	}
}

// Load builds and validates the configuration.
func Load(opts ...LoadOption) (*Config, error) {
	l := &loader{path: DefaultFile}
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if _, err := os.Stat(l.path); err == nil {
		if err := k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", l.path, err)
		}
	} else if l.required {
		return nil, fmt.Errorf("config file %s: %w", l.path, err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if !fallback.TableStyle(c.Table.Style).Valid() {
		errs = append(errs, fmt.Errorf("invalid table style %q (want %q or %q)", c.Table.Style, fallback.TableRich, fallback.TableASCII))
	}
	if err := process.ValidateOverrides(c.Renderers); err != nil {
		errs = append(errs, err)
	}
	for _, kv := range c.Env {
		if k, _, ok := strings.Cut(kv, "="); !ok || k == "" {
			errs = append(errs, fmt.Errorf("invalid env entry %q (want KEY=VALUE)", kv))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
