// Package sync schedules draining of the operation queue: on app foreground,
// when connectivity is restored and on a fixed interval, with bounded retries.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/stockflow/internal/client/connectivity"
	"github.com/iudanet/stockflow/internal/client/queue"
	"github.com/iudanet/stockflow/internal/client/storage"
)

//go:generate moq -out drainer_mock.go . Drainer

// Drainer replays the queued operations; implemented by *queue.Queue
type Drainer interface {
	Drain(ctx context.Context) (*queue.DrainResult, error)
}

// AppState is the lifecycle state of the hosting application
type AppState string

const (
	AppStateActive     AppState = "active"
	AppStateBackground AppState = "background"
	AppStateInactive   AppState = "inactive"
)

// Trigger names the reason a drain was requested
type Trigger string

const (
	TriggerStartup      Trigger = "startup"
	TriggerForeground   Trigger = "foreground"
	TriggerConnectivity Trigger = "connectivity"
	TriggerInterval     Trigger = "interval"
	TriggerManual       Trigger = "manual"
)

// Config holds orchestrator configuration.
type Config struct {
	Interval      time.Duration // период фонового drain при наличии сети (default: 30s)
	Debounce      time.Duration // окно схлопывания близких триггеров (default: 500ms)
	RetryBase     time.Duration // первая задержка перед повтором (default: 1s)
	RetryAttempts int           // всего попыток на один триггер (default: 3)
}

// DefaultConfig returns default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		Interval:      30 * time.Second,
		Debounce:      500 * time.Millisecond,
		RetryBase:     time.Second,
		RetryAttempts: 3,
	}
}

// Status is a snapshot of the orchestrator state
type Status struct {
	LastAttemptAt time.Time
	LastSuccessAt time.Time
	LastError     string
	LastTrigger   Trigger
	AppState      AppState
	Drains        int // завершенных циклов drain (с учетом повторов как одного цикла)
	Running       bool
}

// Orchestrator is the single consumer that owns draining.
// Запросы на drain складываются в канал емкостью 1: запрос, пришедший во время
// drain, превращается ровно в один последующий drain.
type Orchestrator struct {
	drainer  Drainer
	observer connectivity.Observer
	metadata storage.MetadataStorage
	logger   *slog.Logger
	tracer   trace.Tracer
	requests chan Trigger
	now      func() time.Time
	status   Status
	cfg      Config
	mu       sync.Mutex // status, appState
	drainMu  sync.Mutex // drain из цикла и DrainNow не пересекаются
}

// New creates an orchestrator. metadata may be nil; zero config fields take defaults.
func New(drainer Drainer, observer connectivity.Observer, metadata storage.MetadataStorage, cfg Config, logger *slog.Logger) *Orchestrator {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Debounce < 0 {
		cfg.Debounce = 0
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = def.RetryBase
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = def.RetryAttempts
	}

	return &Orchestrator{
		drainer:  drainer,
		observer: observer,
		metadata: metadata,
		cfg:      cfg,
		logger:   logger,
		tracer:   otel.Tracer("github.com/iudanet/stockflow/internal/client/sync"),
		requests: make(chan Trigger, 1),
		now:      time.Now,
		status:   Status{AppState: AppStateActive},
	}
}

// Run subscribes to connectivity changes and serves drain requests until ctx is done.
func (o *Orchestrator) Run(ctx context.Context) error {
	unsubscribe := o.observer.Subscribe(func(connected bool) {
		if connected {
			o.RequestDrain(TriggerConnectivity)
		}
	})
	defer unsubscribe()

	o.setRunning(true)
	defer o.setRunning(false)

	o.logger.InfoContext(ctx, "Sync orchestrator started",
		"interval", o.cfg.Interval,
		"debounce", o.cfg.Debounce,
		"retry_attempts", o.cfg.RetryAttempts,
	)

	if o.observer.IsConnected() {
		o.RequestDrain(TriggerStartup)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return o.intervalLoop(ctx) })
	g.Go(func() error { return o.consumeLoop(ctx) })
	err := g.Wait()

	o.logger.Info("Sync orchestrator stopped")
	return err
}

// SetAppState records a lifecycle transition; becoming active requests a drain
func (o *Orchestrator) SetAppState(state AppState) {
	o.mu.Lock()
	prev := o.status.AppState
	o.status.AppState = state
	o.mu.Unlock()

	if state == AppStateActive && prev != AppStateActive {
		o.RequestDrain(TriggerForeground)
	}
}

// RequestDrain asks the consumer loop for a drain without blocking.
// Если запрос уже ожидает, новый схлопывается с ним.
func (o *Orchestrator) RequestDrain(trigger Trigger) {
	select {
	case o.requests <- trigger:
		o.logger.Debug("Drain requested", "trigger", trigger)
	default:
		o.logger.Debug("Drain request coalesced", "trigger", trigger)
	}
}

// DrainNow performs one drain attempt synchronously, without retries
func (o *Orchestrator) DrainNow(ctx context.Context) (*queue.DrainResult, error) {
	o.drainMu.Lock()
	defer o.drainMu.Unlock()

	res, err := o.attempt(ctx, TriggerManual, 1)
	o.finish(ctx, TriggerManual, succeeded(res), err)
	return res, err
}

// Status returns a snapshot of the orchestrator state
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *Orchestrator) intervalLoop(ctx context.Context) error {
	ticker := time.NewTicker(o.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if o.observer.IsConnected() {
				o.RequestDrain(TriggerInterval)
			}
		}
	}
}

func (o *Orchestrator) consumeLoop(ctx context.Context) error {
	for {
		var trigger Trigger
		select {
		case <-ctx.Done():
			return nil
		case trigger = <-o.requests:
		}

		if !o.debounce(ctx) {
			return nil
		}

		if !o.observer.IsConnected() {
			o.logger.DebugContext(ctx, "Skipping drain while offline", "trigger", trigger)
			continue
		}

		o.drainWithRetry(ctx, trigger)
	}
}

// debounce поглощает запросы, пришедшие в течение окна Debounce.
// Returns false when ctx is done.
func (o *Orchestrator) debounce(ctx context.Context) bool {
	if o.cfg.Debounce == 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(o.cfg.Debounce)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-o.requests:
		case <-timer.C:
			return true
		}
	}
}

// drainWithRetry drains with exponential backoff, bounded to RetryAttempts attempts.
// После исчерпания попыток ждем следующего триггера.
func (o *Orchestrator) drainWithRetry(ctx context.Context, trigger Trigger) {
	o.drainMu.Lock()
	defer o.drainMu.Unlock()

	backoff := retry.WithMaxRetries(uint64(o.cfg.RetryAttempts-1), retry.NewExponential(o.cfg.RetryBase))

	var (
		// операции, принятые сервером за все попытки цикла
		synced  int
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		res, err := o.attempt(ctx, trigger, attempt)
		synced += succeeded(res)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		o.logger.WarnContext(ctx, "Drain attempt failed",
			"trigger", trigger,
			"attempt", attempt,
			"max_attempts", o.cfg.RetryAttempts,
			"error", err,
		)
		return retry.RetryableError(err)
	})

	if err != nil && ctx.Err() == nil {
		o.logger.ErrorContext(ctx, "Drain retries exhausted, waiting for next trigger",
			"trigger", trigger,
			"attempts", attempt,
			"error", err,
		)
	}
	o.finish(ctx, trigger, synced, err)
}

// attempt runs one drain. A drain fails when the queue reports an error or when
// at least one operation failed with a transient error.
func (o *Orchestrator) attempt(ctx context.Context, trigger Trigger, n int) (*queue.DrainResult, error) {
	ctx, span := o.tracer.Start(ctx, "sync.Drain", trace.WithAttributes(
		attribute.String("sync.trigger", string(trigger)),
		attribute.Int("sync.attempt", n),
	))
	defer span.End()

	o.mu.Lock()
	o.status.LastAttemptAt = o.now()
	o.mu.Unlock()

	res, err := o.drainer.Drain(ctx)
	if err == nil && res != nil && res.Retryable() {
		err = fmt.Errorf("%d of %d operations failed to replay: %w",
			len(res.Failed), len(res.Failed)+len(res.Succeeded)+len(res.Unknown), errors.Join(failureErrors(res)...))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "drain failed")
	}
	return res, err
}

// finish records the outcome of a drain cycle; synced counts operations replayed over all attempts
func (o *Orchestrator) finish(ctx context.Context, trigger Trigger, synced int, err error) {
	now := o.now()

	o.mu.Lock()
	o.status.Drains++
	o.status.LastTrigger = trigger
	if err != nil {
		o.status.LastError = err.Error()
	} else {
		o.status.LastError = ""
		o.status.LastSuccessAt = now
	}
	o.mu.Unlock()

	if synced == 0 || o.metadata == nil {
		return
	}
	if err := o.metadata.SaveLastSyncTime(context.WithoutCancel(ctx), now); err != nil {
		o.logger.WarnContext(ctx, "Failed to save last sync time", "error", err)
	}
}

func (o *Orchestrator) setRunning(running bool) {
	o.mu.Lock()
	o.status.Running = running
	o.mu.Unlock()
}

func succeeded(res *queue.DrainResult) int {
	if res == nil {
		return 0
	}
	return len(res.Succeeded)
}

func failureErrors(res *queue.DrainResult) []error {
	errs := make([]error, 0, len(res.Failed))
	for _, f := range res.Failed {
		if f.Transient {
			errs = append(errs, fmt.Errorf("%s %s: %w", f.Type, f.ID, f.Err))
		}
	}
	return errs
}
