package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/client/auth"
	"github.com/iudanet/stockflow/internal/client/cache"
	"github.com/iudanet/stockflow/internal/client/connectivity"
	"github.com/iudanet/stockflow/internal/client/data"
	"github.com/iudanet/stockflow/internal/client/iocli"
	"github.com/iudanet/stockflow/internal/client/queue"
	"github.com/iudanet/stockflow/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/stockflow/internal/client/sync"
)

// Options are the global and daemon flags of the client
type Options struct {
	ServerURL string
	DBPath    string
	LogLevel  string
	LogFile   string
	Offline   bool

	Sync          clientsync.Config
	ProbeInterval time.Duration

	OtelEnabled  bool
	OtelEndpoint string
}

// DefaultOptions returns default client options
func DefaultOptions() Options {
	return Options{
		ServerURL:     "http://localhost:8080",
		DBPath:        "stockflow-client.db",
		LogLevel:      "warn",
		Sync:          clientsync.DefaultConfig(),
		ProbeInterval: connectivity.DefaultProberConfig().Interval,
	}
}

// Opener builds the command handlers for the parsed options.
// The returned close function releases everything opened.
type Opener func(ctx context.Context, opts *Options, logger *slog.Logger) (*Cli, func() error, error)

// Open wires the client: bbolt -> session -> API client -> cache -> queue -> data service -> orchestrator
func Open(ctx context.Context, opts *Options, logger *slog.Logger) (*Cli, func() error, error) {
	store, err := boltdb.New(ctx, opts.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	session := auth.NewSession(store)
	apiClient := api.NewClient(opts.ServerURL, session)
	queryCache := cache.New(store, logger)
	pending := queue.New(store, queue.NewAPIReplayer(apiClient), queryCache, logger)

	var (
		observer connectivity.Observer
		prober   Runner
	)
	if opts.Offline {
		observer = connectivity.NewManual(false)
	} else {
		p := connectivity.NewProber(apiClient, connectivity.ProberConfig{Interval: opts.ProbeInterval}, logger)
		// состояние связи нужно уже первой команде
		p.Probe(ctx)
		observer, prober = p, p
	}

	orchestrator := clientsync.New(pending, observer, store, opts.Sync, logger)
	authService := auth.NewAuthService(apiClient, store, opts.ServerURL, logger)
	dataService := data.NewService(apiClient, pending, queryCache, observer, logger)

	c := New(iocli.NewStdio(), authService, dataService, pending, orchestrator, prober, logger)
	return c, store.Close, nil
}

// newLogger builds the client logger; --log-file routes output through a rotating file
func newLogger(level, file string) (*slog.Logger, func() error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	var (
		out      io.Writer = os.Stderr
		closeLog func() error
	)
	if file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out, closeLog = lj, lj.Close
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), closeLog
}

// closeAll закрывает ресурсы и собирает ошибки
func closeAll(fns ...func() error) error {
	var err error
	for _, fn := range fns {
		if fn != nil {
			err = multierr.Append(err, fn())
		}
	}
	return err
}
