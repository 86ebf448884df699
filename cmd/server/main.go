package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/stockflow/internal/observability"
	"github.com/iudanet/stockflow/internal/server"
	"github.com/iudanet/stockflow/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const jwtSecretEnv = "STOCKFLOW_JWT_SECRET"

var (
	cfg          = server.DefaultConfig()
	dbPath       = "stockflow.db"
	jwtSecret    string
	logLevel     = "info"
	otelEnabled  bool
	otelEndpoint string
)

var rootCmd = &cobra.Command{
	Use:           "stockflow-server",
	Short:         "StockFlow API server",
	Long:          "Serves movements, approvals and notifications; mutating requests are deduplicated by Idempotency-Key.",
	Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	flags.StringVar(&dbPath, "db", dbPath, "Path to SQLite database")
	flags.StringVar(&jwtSecret, "jwt-secret", "", "JWT signing secret (default $"+jwtSecretEnv+")")
	flags.DurationVar(&cfg.JWT.AccessTokenTTL, "access-ttl", cfg.JWT.AccessTokenTTL, "Access token lifetime")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	flags.IntVar(&cfg.AuthRate, "auth-rate", cfg.AuthRate, "Register/login requests per IP per rate window")
	flags.IntVar(&cfg.APIRate, "api-rate", cfg.APIRate, "API requests per user per rate window")
	flags.DurationVar(&cfg.RateWindow, "rate-window", cfg.RateWindow, "Rate limit window")
	flags.StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")
	flags.BoolVar(&otelEnabled, "otel-enabled", false, "Enable OpenTelemetry tracing")
	flags.StringVar(&otelEndpoint, "otel-endpoint", "", "OTLP HTTP endpoint (host:port) for traces; if empty uses stdout exporter")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func runServer(cmd *cobra.Command, _ []string) error {
	logger := setupLogging(logLevel)

	if jwtSecret == "" {
		jwtSecret = os.Getenv(jwtSecretEnv)
	}
	if jwtSecret == "" {
		return errors.New("jwt secret is required: set --jwt-secret or " + jwtSecretEnv)
	}
	cfg.JWT.Secret = []byte(jwtSecret)
	cfg.Version = Version

	if cfg.AuthRate < 1 || cfg.APIRate < 1 || cfg.RateWindow <= 0 {
		return errors.New("rate limits and rate window must be positive")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting stockflow server",
		slog.String("version", Version),
		slog.String("addr", cfg.Addr),
		slog.String("db", dbPath),
		slog.Duration("access_ttl", cfg.JWT.AccessTokenTTL),
		slog.Bool("otel_enabled", otelEnabled),
		slog.String("otel_endpoint", otelEndpoint),
	)

	otelShutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		Service:  "stockflow-server",
		Version:  Version,
		Endpoint: otelEndpoint,
		Enabled:  otelEnabled,
	}, logger)
	if err != nil {
		return fmt.Errorf("init otel: %w", err)
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Warn("otel shutdown error", slog.Any("error", err))
		}
	}()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close database", slog.Any("error", err))
		}
	}()

	start := time.Now()
	if err := server.New(cfg, store, logger).Run(ctx); err != nil {
		return err
	}

	logger.Info("stockflow server stopped", slog.Duration("uptime", time.Since(start)))
	return nil
}
