package cli

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	clientsync "github.com/iudanet/stockflow/internal/client/sync"
)

// runDaemon запускает оркестратор и проверку связи до отмены ctx.
// Сигналы из lifecycle переводят приложение в фон и обратно.
func (c *Cli) runDaemon(ctx context.Context, lifecycle <-chan os.Signal) error {
	c.logger.InfoContext(ctx, "Daemon started", "offline", c.prober == nil)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.syncer.Run(ctx) })
	if c.prober != nil {
		g.Go(func() error { return c.prober.Run(ctx) })
	}
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case sig := <-lifecycle:
				state, ok := appStateFor(sig)
				if !ok {
					continue
				}
				c.logger.InfoContext(ctx, "App state changed", "signal", sig, "state", state)
				c.syncer.SetAppState(state)
			}
		}
	})

	err := g.Wait()

	st := c.syncer.Status()
	c.logger.Info("Daemon stopped",
		"drains", st.Drains,
		"last_success", st.LastSuccessAt,
		"last_error", st.LastError,
	)
	return err
}

// appStateFor maps a lifecycle signal to an application state
func appStateFor(sig os.Signal) (clientsync.AppState, bool) {
	switch sig {
	case backgroundSignal:
		return clientsync.AppStateBackground, true
	case foregroundSignal:
		return clientsync.AppStateActive, true
	}
	return "", false
}
