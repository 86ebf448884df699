package connectivity

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/stockflow/pkg/api"
)

// HealthChecker is the part of the API client the prober needs
type HealthChecker interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// ProberConfig holds prober configuration.
type ProberConfig struct {
	Interval time.Duration // период опроса health endpoint (default: 10s)
	Timeout  time.Duration // таймаут одного запроса (default: 3s)
}

// DefaultProberConfig returns default prober configuration.
func DefaultProberConfig() ProberConfig {
	return ProberConfig{
		Interval: 10 * time.Second,
		Timeout:  3 * time.Second,
	}
}

// Prober polls the server health endpoint and reports reachability.
// Начальное состояние "отключено"; первый успешный опрос дает переход в connected.
type Prober struct {
	notifier
	checker HealthChecker
	logger  *slog.Logger
	cfg     ProberConfig
}

var _ Observer = (*Prober)(nil)

// NewProber creates a prober; zero config fields take defaults
func NewProber(checker HealthChecker, cfg ProberConfig, logger *slog.Logger) *Prober {
	def := DefaultProberConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	return &Prober{checker: checker, cfg: cfg, logger: logger}
}

// Probe performs one health check and updates the state
func (p *Prober) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	_, err := p.checker.Health(probeCtx)
	connected := err == nil

	if p.set(connected) {
		if connected {
			p.logger.InfoContext(ctx, "Server reachable")
		} else {
			p.logger.WarnContext(ctx, "Server unreachable", "error", err)
		}
	}
	return connected
}

// Run probes immediately and then every Interval until ctx is done
func (p *Prober) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}
