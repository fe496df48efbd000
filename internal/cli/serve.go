package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"normativa/internal/pipeline"
	"normativa/internal/server"
	"normativa/internal/telemetry"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP document generation service",
	Long: `Serve exposes the pipeline over HTTP:

  POST /api/generate   generate and audit one document
  GET  /api/metrics    aggregate telemetry and run promotions
  GET  /healthz        liveness probe

Requests are rate limited per client IP. The server shuts down
gracefully on SIGINT/SIGTERM.

Example:
  normativa serve
  normativa serve --addr :9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := telemetry.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open telemetry store: %w", err)
	}
	defer func() { _ = store.Close() }()

	p := pipeline.NewPipeline(cfg, store, logger)
	agg := telemetry.NewAggregator(store, cfg.Promotion)
	srv := server.New(cfg.Server, p, agg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("server shut down cleanly")
	return nil
}
