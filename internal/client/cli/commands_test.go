package cli

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/client/data"
)

// fakeOpener возвращает заранее собранный Cli и запоминает переданные опции
type fakeOpener struct {
	cli    *Cli
	err    error
	opts   Options
	opened int
	closed int
}

func (f *fakeOpener) open(ctx context.Context, opts *Options, logger *slog.Logger) (*Cli, func() error, error) {
	f.opened++
	f.opts = *opts
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.cli, func() error { f.closed++; return nil }, nil
}

func execute(t *testing.T, f *fakeOpener, args ...string) error {
	t.Helper()
	cmd := NewRootCommand("test", f.open)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestRootCommand_MovementCreate(t *testing.T) {
	dataService := &data.ServiceMock{
		CreateMovementFunc: func(ctx context.Context, in data.MovementInput) (*data.Outcome, error) {
			return &data.Outcome{OperationID: "op-1", Queued: true}, nil
		},
	}
	f := &fakeOpener{cli: newTestCli(newTestIO(), loggedIn(), dataService, nil, nil)}

	err := execute(t, f, "--offline", "--db", "test.db",
		"movement", "create", "--sku", "BOLT-M8", "--qty", "12", "--from", "A1", "--to", "B2", "--note", "rush")
	require.NoError(t, err)

	assert.True(t, f.opts.Offline)
	assert.Equal(t, "test.db", f.opts.DBPath)
	assert.Equal(t, 1, f.closed, "client must be closed after the command")

	calls := dataService.CreateMovementCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, data.MovementInput{SKU: "BOLT-M8", Quantity: 12, FromLocation: "A1", ToLocation: "B2", Note: "rush"}, calls[0].In)
}

func TestRootCommand_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "movement create without required flags", args: []string{"movement", "create", "--sku", "X"}},
		{name: "approve without id", args: []string{"approval", "approve"}},
		{name: "read with extra args", args: []string{"notification", "read", "n-1", "n-2"}},
		{name: "unknown command", args: []string{"teleport"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeOpener{}
			require.Error(t, execute(t, f, tt.args...))
			assert.Zero(t, f.opened, "client must not be opened for invalid arguments")
		})
	}
}

func TestRootCommand_ApprovalReject(t *testing.T) {
	dataService := &data.ServiceMock{
		RejectFunc: func(ctx context.Context, approvalID, comment string) (*data.Outcome, error) {
			return &data.Outcome{OperationID: "op-1", ResourceID: approvalID}, nil
		},
	}
	f := &fakeOpener{cli: newTestCli(newTestIO(), loggedIn(), dataService, nil, nil)}

	require.NoError(t, execute(t, f, "approval", "reject", "ap-7", "--comment", "wrong bin"))

	calls := dataService.RejectCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "ap-7", calls[0].ApprovalID)
	assert.Equal(t, "wrong bin", calls[0].Comment)
}

func TestRootCommand_DaemonFlags(t *testing.T) {
	f := &fakeOpener{err: errors.New("db locked")}

	err := execute(t, f, "daemon", "--interval", "1m", "--retry-attempts", "5", "--retry-base", "2s", "--debounce", "0", "--probe-interval", "15s",
		"--otel-enabled", "--otel-endpoint", "collector:4318")
	require.ErrorContains(t, err, "db locked")

	assert.Equal(t, time.Minute, f.opts.Sync.Interval)
	assert.Equal(t, 5, f.opts.Sync.RetryAttempts)
	assert.Equal(t, 2*time.Second, f.opts.Sync.RetryBase)
	assert.Zero(t, f.opts.Sync.Debounce)
	assert.Equal(t, 15*time.Second, f.opts.ProbeInterval)
	assert.True(t, f.opts.OtelEnabled)
	assert.Equal(t, "collector:4318", f.opts.OtelEndpoint)
}

func TestRootCommand_OpenErrorIsReturned(t *testing.T) {
	f := &fakeOpener{err: errors.New("failed to open database: timeout")}

	err := execute(t, f, "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}
