package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/prettifier"
	"github.com/aretw0/prettifier/internal/config"
	"github.com/aretw0/prettifier/internal/logging"
	"github.com/aretw0/prettifier/pkg/observability"
)

var rootCmd = &cobra.Command{
	Use:   "prettifier",
	Short: "Prettifier formats text for terminal display",
	Long: `Prettifier formats markdown, JSON, code, YAML and tables for the terminal.
It prefers renderers installed on the host (glow, rich, jq, yq, bat) and falls
back to built-in formatting when none of them is available.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// app bundles what every command builds from configuration.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	svc     *prettifier.Service
}

// newApp loads configuration, then builds the logger and the service.
func newApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.WithFile(path))
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level, format)
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}
	opts := []prettifier.Option{
		prettifier.FromConfig(cfg),
		prettifier.WithLogger(logger),
	}
	if cfg.Metrics.Enabled {
		a.metrics = observability.NewMetrics()
		opts = append(opts, prettifier.WithMetrics(a.metrics))
	}

	a.svc, err = prettifier.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing prettifier: %w", err)
	}
	return a, nil
}
