package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/stockflow/internal/client/auth"
	"github.com/iudanet/stockflow/internal/client/data"
	"github.com/iudanet/stockflow/internal/client/iocli"
	"github.com/iudanet/stockflow/internal/client/queue"
	clientsync "github.com/iudanet/stockflow/internal/client/sync"
	"github.com/iudanet/stockflow/internal/models"
)

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "STOCKFLOW_PASSWORD"

//go:generate moq -out pending_mock.go . Pending
//go:generate moq -out syncer_mock.go . Syncer
//go:generate moq -out runner_mock.go . Runner

// Pending is the admin view of the operation queue
type Pending interface {
	List(ctx context.Context) ([]models.PendingOperation, error)
	Len(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// Syncer drives draining of the queue; implemented by *clientsync.Orchestrator
type Syncer interface {
	Run(ctx context.Context) error
	DrainNow(ctx context.Context) (*queue.DrainResult, error)
	SetAppState(state clientsync.AppState)
	Status() clientsync.Status
}

// Runner is a background loop stopped by ctx, e.g. the connectivity prober
type Runner interface {
	Run(ctx context.Context) error
}

// Cli содержит зависимости команд клиента
type Cli struct {
	io          iocli.IO
	authService auth.Service
	dataService data.Service
	pending     Pending
	syncer      Syncer
	prober      Runner // nil в режиме --offline
	logger      *slog.Logger
}

// New creates the command handler set. prober may be nil.
func New(io iocli.IO, authService auth.Service, dataService data.Service, pending Pending, syncer Syncer, prober Runner, logger *slog.Logger) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		pending:     pending,
		syncer:      syncer,
		prober:      prober,
		logger:      logger,
	}
}

// getPassword берет пароль из STOCKFLOW_PASSWORD, иначе спрашивает у пользователя
func (c *Cli) getPassword(prompt string) (string, error) {
	if passwordFromEnv() {
		return os.Getenv(PasswordEnv), nil
	}
	p, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return p, nil
}

func passwordFromEnv() bool {
	return os.Getenv(PasswordEnv) != ""
}

// requireAuth возвращает понятную ошибку, если пользователь не вошел.
// Истекшая сессия не блокирует работу офлайн: операции встанут в очередь.
func (c *Cli) requireAuth(ctx context.Context) error {
	st, err := c.authService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !st.Authenticated {
		return errors.New("not authenticated. Please run 'stockflow login' first")
	}
	if st.Expired {
		c.io.Println("⚠️  Session expired. Queued operations will be sent after 'stockflow login'.")
	}
	return nil
}

// printOutcome сообщает, ушла ли мутация на сервер или ждет в очереди
func (c *Cli) printOutcome(action string, out *data.Outcome) {
	if out.Queued {
		c.io.Printf("⏳ %s queued (operation %s). It will be sent when the server is reachable.\n", action, out.OperationID)
		return
	}
	c.io.Printf("✓ %s done", action)
	if out.ResourceID != "" {
		c.io.Printf(" (id %s)", out.ResourceID)
	}
	c.io.Println()
}

// printListing предупреждает, что данные взяты из кеша
func (c *Cli) printListing(l data.Listing) {
	if !l.FromCache {
		return
	}
	if l.Stale {
		c.io.Println("⚠️  Offline: showing cached data, it may be out of date (pending changes were synced since).")
	} else {
		c.io.Println("⚠️  Offline: showing cached data.")
	}
	c.io.Println()
}
