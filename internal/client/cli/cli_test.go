package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/client/auth"
	"github.com/iudanet/stockflow/internal/client/data"
	"github.com/iudanet/stockflow/internal/client/iocli"
	"github.com/iudanet/stockflow/internal/client/queue"
	"github.com/iudanet/stockflow/internal/models"
	pkgapi "github.com/iudanet/stockflow/pkg/api"
)

// testIO собирает весь вывод в буфер и отвечает на запросы ввода по очереди
type testIO struct {
	*iocli.IOMock
	out     *strings.Builder
	inputs  []string
	secrets []string
}

func newTestIO() *testIO {
	tio := &testIO{out: &strings.Builder{}}
	tio.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) { tio.out.WriteString(fmt.Sprintln(a...)) },
		PrintfFunc:  func(format string, a ...any) { fmt.Fprintf(tio.out, format, a...) },
		WriteFunc:   func(p []byte) (int, error) { return tio.out.Write(p) },
		ReadInputFunc: func(prompt string) (string, error) {
			if len(tio.inputs) == 0 {
				return "", io.EOF
			}
			v := tio.inputs[0]
			tio.inputs = tio.inputs[1:]
			return v, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			if len(tio.secrets) == 0 {
				return "", io.EOF
			}
			v := tio.secrets[0]
			tio.secrets = tio.secrets[1:]
			return v, nil
		},
	}
	return tio
}

func loggedIn() *auth.ServiceMock {
	return &auth.ServiceMock{
		StatusFunc: func(ctx context.Context) (*auth.Status, error) {
			return &auth.Status{Authenticated: true, Username: "alice", UserID: "user-1"}, nil
		},
	}
}

func newTestCli(tio *testIO, authService auth.Service, dataService data.Service, pending Pending, syncer Syncer) *Cli {
	return New(tio, authService, dataService, pending, syncer, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCli_runLogin_PasswordFromEnv(t *testing.T) {
	t.Setenv(PasswordEnv, "secret-from-env")

	expires := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	authService := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, username, password string) (*auth.LoginResult, error) {
			return &auth.LoginResult{Username: username, UserID: "user-1", ExpiresAt: expires}, nil
		},
	}
	tio := newTestIO()
	tio.inputs = []string{"alice"}

	c := newTestCli(tio, authService, nil, nil, nil)
	require.NoError(t, c.runLogin(context.Background()))

	calls := authService.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice", calls[0].Username)
	assert.Equal(t, "secret-from-env", calls[0].Password)
	assert.Empty(t, tio.ReadPasswordCalls(), "password must not be prompted when env is set")
	assert.Contains(t, tio.out.String(), "Login successful")
	assert.Contains(t, tio.out.String(), "2026-05-01T12:00:00Z")
}

func TestCli_runRegister(t *testing.T) {
	t.Run("passwords do not match", func(t *testing.T) {
		authService := &auth.ServiceMock{}
		tio := newTestIO()
		tio.inputs = []string{"alice"}
		tio.secrets = []string{"password-1", "password-2"}

		c := newTestCli(tio, authService, nil, nil, nil)
		err := c.runRegister(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "do not match")
		assert.Empty(t, authService.RegisterCalls())
	})

	t.Run("success", func(t *testing.T) {
		authService := &auth.ServiceMock{
			RegisterFunc: func(ctx context.Context, username, password string) (*auth.RegisterResult, error) {
				return &auth.RegisterResult{UserID: "user-42", Username: username}, nil
			},
		}
		tio := newTestIO()
		tio.inputs = []string{"alice"}
		tio.secrets = []string{"password-1", "password-1"}

		c := newTestCli(tio, authService, nil, nil, nil)
		require.NoError(t, c.runRegister(context.Background()))
		assert.Contains(t, tio.out.String(), "user-42")
	})
}

func TestCli_runLogout(t *testing.T) {
	t.Run("keeps queued operations", func(t *testing.T) {
		authService := &auth.ServiceMock{LogoutFunc: func(ctx context.Context) error { return nil }}
		pending := &PendingMock{LenFunc: func(ctx context.Context) (int, error) { return 2, nil }}
		tio := newTestIO()

		c := newTestCli(tio, authService, nil, pending, nil)
		require.NoError(t, c.runLogout(context.Background()))

		assert.Contains(t, tio.out.String(), "Logged out")
		assert.Contains(t, tio.out.String(), "2 queued operation(s) kept")
		assert.Empty(t, pending.ClearCalls())
	})

	t.Run("not logged in", func(t *testing.T) {
		authService := &auth.ServiceMock{LogoutFunc: func(ctx context.Context) error { return auth.ErrNotAuthenticated }}
		tio := newTestIO()

		c := newTestCli(tio, authService, nil, &PendingMock{}, nil)
		require.NoError(t, c.runLogout(context.Background()))
		assert.Contains(t, tio.out.String(), "Not logged in")
	})
}

func TestCli_runStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   *auth.Status
		pending  int
		contains []string
	}{
		{
			name:     "not authenticated, empty queue",
			status:   &auth.Status{},
			contains: []string{"not authenticated", "No pending operations"},
		},
		{
			name: "authenticated with pending operations",
			status: &auth.Status{
				Authenticated: true, Username: "alice", UserID: "user-1",
				ServerURL: "http://srv", ExpiresAt: time.Now().Add(time.Hour),
			},
			pending:  3,
			contains: []string{"alice (user-1)", "http://srv", "Pending: 3 operation(s)"},
		},
		{
			name:     "expired session",
			status:   &auth.Status{Authenticated: true, Username: "alice", Expired: true},
			contains: []string{"Session has expired"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := &auth.ServiceMock{
				StatusFunc: func(ctx context.Context) (*auth.Status, error) { return tt.status, nil },
			}
			pending := &PendingMock{LenFunc: func(ctx context.Context) (int, error) { return tt.pending, nil }}
			tio := newTestIO()

			c := newTestCli(tio, authService, nil, pending, nil)
			require.NoError(t, c.runStatus(context.Background()))
			for _, s := range tt.contains {
				assert.Contains(t, tio.out.String(), s)
			}
		})
	}
}

func TestCli_requireAuth(t *testing.T) {
	authService := &auth.ServiceMock{
		StatusFunc: func(ctx context.Context) (*auth.Status, error) { return &auth.Status{}, nil },
	}
	dataService := &data.ServiceMock{}
	tio := newTestIO()

	c := newTestCli(tio, authService, dataService, nil, nil)
	err := c.runMovementList(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
	assert.Empty(t, dataService.ListMovementsCalls())
}

func TestCli_runMovementCreate(t *testing.T) {
	tests := []struct {
		name     string
		outcome  *data.Outcome
		contains string
	}{
		{name: "sent", outcome: &data.Outcome{OperationID: "op-1", ResourceID: "mv-1"}, contains: "Movement done (id mv-1)"},
		{name: "queued", outcome: &data.Outcome{OperationID: "op-1", Queued: true}, contains: "Movement queued (operation op-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataService := &data.ServiceMock{
				CreateMovementFunc: func(ctx context.Context, in data.MovementInput) (*data.Outcome, error) {
					return tt.outcome, nil
				},
			}
			tio := newTestIO()
			in := data.MovementInput{SKU: "BOLT-M8", Quantity: 10, FromLocation: "WH1-A", ToLocation: "DOCK/2", Note: "urgent"}

			c := newTestCli(tio, loggedIn(), dataService, nil, nil)
			require.NoError(t, c.runMovementCreate(context.Background(), in))

			require.Len(t, dataService.CreateMovementCalls(), 1)
			assert.Equal(t, in, dataService.CreateMovementCalls()[0].In)
			out := tio.out.String()
			assert.Contains(t, out, "BOLT-M8")
			assert.Contains(t, out, "Note:     urgent")
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestCli_runMovementCreate_ValidationError(t *testing.T) {
	dataService := &data.ServiceMock{
		CreateMovementFunc: func(ctx context.Context, in data.MovementInput) (*data.Outcome, error) {
			return nil, errors.New("invalid movement: quantity must be positive")
		},
	}
	c := newTestCli(newTestIO(), loggedIn(), dataService, nil, nil)

	err := c.runMovementCreate(context.Background(), data.MovementInput{SKU: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity must be positive")
}

func TestCli_runMovementList_FromCache(t *testing.T) {
	dataService := &data.ServiceMock{
		ListMovementsFunc: func(ctx context.Context) (*data.MovementList, error) {
			return &data.MovementList{
				Movements: []pkgapi.Movement{{ID: "mv-1", SKU: "BOLT-M8", Quantity: 5, FromLocation: "A1", ToLocation: "B2"}},
				Listing:   data.Listing{FromCache: true, Stale: true},
			}, nil
		},
	}
	tio := newTestIO()

	c := newTestCli(tio, loggedIn(), dataService, nil, nil)
	require.NoError(t, c.runMovementList(context.Background()))

	out := tio.out.String()
	assert.Contains(t, out, "Offline: showing cached data")
	assert.Contains(t, out, "mv-1")
	assert.Contains(t, out, "BOLT-M8")
}

func TestCli_runApprovalAct(t *testing.T) {
	dataService := &data.ServiceMock{
		ApproveFunc: func(ctx context.Context, approvalID, comment string) (*data.Outcome, error) {
			return &data.Outcome{OperationID: "op-a", ResourceID: approvalID}, nil
		},
		RejectFunc: func(ctx context.Context, approvalID, comment string) (*data.Outcome, error) {
			return &data.Outcome{OperationID: "op-r", Queued: true}, nil
		},
	}
	tio := newTestIO()
	c := newTestCli(tio, loggedIn(), dataService, nil, nil)
	ctx := context.Background()

	require.NoError(t, c.runApprovalAct(ctx, pkgapi.ApprovalActionApprove, "ap-1", "ok"))
	require.NoError(t, c.runApprovalAct(ctx, pkgapi.ApprovalActionReject, "ap-2", "wrong sku"))
	assert.Error(t, c.runApprovalAct(ctx, "escalate", "ap-3", ""))

	require.Len(t, dataService.ApproveCalls(), 1)
	assert.Equal(t, "ap-1", dataService.ApproveCalls()[0].ApprovalID)
	require.Len(t, dataService.RejectCalls(), 1)
	assert.Equal(t, "wrong sku", dataService.RejectCalls()[0].Comment)
	assert.Contains(t, tio.out.String(), "queued (operation op-r)")
}

func TestCli_runNotificationList_Unread(t *testing.T) {
	readAt := time.Now()
	dataService := &data.ServiceMock{
		ListNotificationsFunc: func(ctx context.Context) (*data.NotificationList, error) {
			return &data.NotificationList{Notifications: []pkgapi.Notification{
				{ID: "n-1", Title: "Movement approved"},
				{ID: "n-2", Title: "Movement rejected", ReadAt: &readAt},
			}}, nil
		},
	}
	tio := newTestIO()

	c := newTestCli(tio, loggedIn(), dataService, nil, nil)
	require.NoError(t, c.runNotificationList(context.Background(), true))

	assert.Contains(t, tio.out.String(), "n-1")
	assert.NotContains(t, tio.out.String(), "n-2")
}

func TestCli_runNotificationRead(t *testing.T) {
	dataService := &data.ServiceMock{
		MarkNotificationReadFunc: func(ctx context.Context, notificationID string) (*data.Outcome, error) {
			return nil, &api.StatusError{StatusCode: 404, Message: "notification not found"}
		},
	}
	c := newTestCli(newTestIO(), loggedIn(), dataService, nil, nil)

	err := c.runNotificationRead(context.Background(), "n-404")
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, 404))
}

func TestCli_runQueueList(t *testing.T) {
	pending := &PendingMock{
		ListFunc: func(ctx context.Context) ([]models.PendingOperation, error) {
			return []models.PendingOperation{
				{ID: "op-1", Type: models.OperationCreateMovement},
				{ID: "op-2", Type: models.OperationMarkNotificationRead},
			}, nil
		},
	}
	tio := newTestIO()

	c := newTestCli(tio, nil, nil, pending, nil)
	require.NoError(t, c.runQueueList(context.Background()))

	out := tio.out.String()
	assert.Less(t, strings.Index(out, "op-1"), strings.Index(out, "op-2"), "operations listed in replay order")
	assert.Contains(t, out, "CREATE_MOVEMENT")
}

func TestCli_runQueueClear(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		force     bool
		wantClear bool
	}{
		{name: "confirmed", answer: "y", wantClear: true},
		{name: "declined", answer: "n", wantClear: false},
		{name: "forced", force: true, wantClear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending := &PendingMock{
				LenFunc:   func(ctx context.Context) (int, error) { return 4, nil },
				ClearFunc: func(ctx context.Context) error { return nil },
			}
			tio := newTestIO()
			tio.inputs = []string{tt.answer}

			c := newTestCli(tio, nil, nil, pending, nil)
			require.NoError(t, c.runQueueClear(context.Background(), tt.force))

			if tt.wantClear {
				assert.Len(t, pending.ClearCalls(), 1)
				assert.Contains(t, tio.out.String(), "Discarded 4 operation(s)")
			} else {
				assert.Empty(t, pending.ClearCalls())
			}
			if tt.force {
				assert.Empty(t, tio.ReadInputCalls())
			}
		})
	}
}

func TestCli_runSync(t *testing.T) {
	t.Run("partial failure is reported, not returned", func(t *testing.T) {
		syncer := &SyncerMock{
			DrainNowFunc: func(ctx context.Context) (*queue.DrainResult, error) {
				return &queue.DrainResult{
					Succeeded: []string{"op-1"},
					Failed: []queue.Failure{{
						ID: "op-2", Type: models.OperationApproveRequest,
						Err: errors.New("503 service unavailable"), Transient: true,
					}},
				}, errors.New("1 of 2 operations failed to replay")
			},
		}
		tio := newTestIO()

		c := newTestCli(tio, loggedIn(), nil, nil, syncer)
		require.NoError(t, c.runSync(context.Background()))

		out := tio.out.String()
		assert.Contains(t, out, "Sent:     1")
		assert.Contains(t, out, "op-2 (APPROVE_REQUEST): 503 service unavailable [will retry]")
		assert.Contains(t, out, "stay queued")
	})

	t.Run("persistence error", func(t *testing.T) {
		syncer := &SyncerMock{
			DrainNowFunc: func(ctx context.Context) (*queue.DrainResult, error) {
				return nil, &queue.PersistenceError{Op: "read", Err: errors.New("disk")}
			},
		}
		c := newTestCli(newTestIO(), loggedIn(), nil, nil, syncer)

		err := c.runSync(context.Background())
		require.Error(t, err)
		assert.True(t, queue.IsPersistenceError(err))
	})

	t.Run("nothing to send", func(t *testing.T) {
		syncer := &SyncerMock{
			DrainNowFunc: func(ctx context.Context) (*queue.DrainResult, error) { return &queue.DrainResult{}, nil },
		}
		tio := newTestIO()
		c := newTestCli(tio, loggedIn(), nil, nil, syncer)

		require.NoError(t, c.runSync(context.Background()))
		assert.Contains(t, tio.out.String(), "Nothing to send")
	})
}
