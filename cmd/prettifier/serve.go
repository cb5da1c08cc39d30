package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/prettifier/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes the format operations over HTTP: POST a JSON object of arguments to /v1/operations/{name}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		opts := []httpAdapter.Option{httpAdapter.WithLogger(a.logger)}
		if a.metrics != nil {
			opts = append(opts, httpAdapter.WithMetricsHandler(a.metrics.Handler()))
		}
		srv := httpAdapter.NewServer(a.svc, opts...)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Serve(ctx, port); err != nil {
			return err
		}
		a.logger.Info("HTTP server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
