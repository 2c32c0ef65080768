// Command placer serves the assignment engine over HTTP.
//
// Usage:
//
//	placer [-config placer.yaml] [-once horizontal]
//
// The listen address comes from the config file; the PORT environment
// variable overrides it with 0.0.0.0:$PORT. With -once the binary runs a
// single batch, prints the result as JSON and exits.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/placer"
	"github.com/arloliu/placer/internal/logging"
	"github.com/arloliu/placer/internal/metrics"
	"github.com/arloliu/placer/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file (optional)")
	once := flag.String("once", "", "Run a single batch for this choice, print JSON and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.NewText(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once != "" {
		if err := runOnce(ctx, cfg, *once, os.Stdout); err != nil {
			logger.Fatal("run failed", "error", err)
		}

		return
	}

	if err := serve(ctx, cfg, os.Getenv("PORT"), logger); err != nil {
		logger.Fatal("server failed", "error", err)
	}

	logger.Info("shutdown complete")
}

func loadConfig(path string) (*placer.Config, error) {
	if path == "" {
		cfg := placer.DefaultConfig()
		return &cfg, nil
	}

	return placer.LoadConfig(path)
}

// listenAddr returns 0.0.0.0:<port> when port is set, otherwise addr.
func listenAddr(addr, port string) string {
	if port != "" {
		return "0.0.0.0:" + port
	}

	return addr
}

func runOnce(ctx context.Context, cfg *placer.Config, choice string, w io.Writer) error {
	eng, err := placer.NewEngine(cfg)
	if err != nil {
		return err
	}

	result, err := eng.Run(ctx, choice)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

func serve(ctx context.Context, cfg *placer.Config, port string, logger placer.Logger) error {
	engineOpts := []placer.Option{placer.WithLogger(logger)}
	serverOpts := []server.Option{
		server.WithLogger(logger),
		server.WithAddr(listenAddr(cfg.Server.Addr, port)),
		server.WithAllowedOrigins(cfg.Server.AllowedOrigins...),
		server.WithReadHeaderTimeout(cfg.Server.ReadHeaderTimeout),
		server.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	}

	if cfg.Metrics.Enabled {
		collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, cfg.Metrics.Namespace)
		engineOpts = append(engineOpts, placer.WithMetrics(collector))
		serverOpts = append(serverOpts, server.WithGatherer(prometheus.DefaultGatherer))
	}

	eng, err := placer.NewEngine(cfg, engineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	srv, err := server.New(eng, serverOpts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("starting placer",
		"maxAttempts", cfg.MaxAttempts,
		"hashSeed", cfg.HashSeed,
		"metrics", cfg.Metrics.Enabled,
	)

	return srv.Start(ctx)
}
