package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/client/storage"
	"github.com/iudanet/stockflow/internal/client/storage/boltdb"
	"github.com/iudanet/stockflow/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openStore(t *testing.T, path string) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(context.Background(), path)
	require.NoError(t, err)
	return store
}

func newTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()
	store := openStore(t, filepath.Join(t.TempDir(), "queue.db"))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func okInvalidator() *InvalidatorMock {
	return &InvalidatorMock{InvalidateAllFunc: func(ctx context.Context) error { return nil }}
}

func movement(sku string) models.CreateMovementPayload {
	return models.CreateMovementPayload{SKU: sku, FromLocation: "A1", ToLocation: "B2", Quantity: 1}
}

func TestQueue_DrainFIFO(t *testing.T) {
	ctx := context.Background()

	var replayed []string
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, op models.PendingOperation) error {
			var p models.CreateMovementPayload
			require.NoError(t, json.Unmarshal(op.Payload, &p))
			replayed = append(replayed, p.SKU)
			return nil
		},
	}
	inv := okInvalidator()
	q := New(newTestStore(t), replayer, inv, discardLogger())

	var ids []string
	for i := range 5 {
		id, err := q.Enqueue(ctx, models.OperationCreateMovement, movement(fmt.Sprintf("SKU-%d", i)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	res, err := q.Drain(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"SKU-0", "SKU-1", "SKU-2", "SKU-3", "SKU-4"}, replayed)
	assert.Equal(t, ids, res.Succeeded)
	assert.Empty(t, res.Failed)
	assert.Len(t, inv.InvalidateAllCalls(), 1)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueue_DrainEmptyIsNoop(t *testing.T) {
	replayer := &ReplayerMock{}
	inv := &InvalidatorMock{}
	q := New(newTestStore(t), replayer, inv, discardLogger())

	res, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Succeeded)
	assert.Empty(t, replayer.ReplayCalls())
	assert.Empty(t, inv.InvalidateAllCalls())
}

func TestQueue_FailedOperationStaysQueued(t *testing.T) {
	ctx := context.Background()

	// Первая операция получает 500, вторая 200
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"mv-2"}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, tokenFunc(func(ctx context.Context) (string, error) { return "t", nil }))
	inv := okInvalidator()
	q := New(newTestStore(t), NewAPIReplayer(client), inv, discardLogger())

	first, err := q.Enqueue(ctx, models.OperationCreateMovement, movement("FIRST"))
	require.NoError(t, err)
	second, err := q.Enqueue(ctx, models.OperationCreateMovement, movement("SECOND"))
	require.NoError(t, err)

	res, err := q.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{second}, res.Succeeded)
	assert.Equal(t, []string{first}, res.FailedIDs())
	assert.True(t, res.Retryable())
	assert.Len(t, inv.InvalidateAllCalls(), 1)

	ops, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, first, ops[0].ID)
}

func TestQueue_NonTransientFailureNotRetryable(t *testing.T) {
	ctx := context.Background()
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, op models.PendingOperation) error {
			return &api.StatusError{StatusCode: http.StatusConflict, Message: "approval already decided"}
		},
	}
	inv := &InvalidatorMock{}
	q := New(newTestStore(t), replayer, inv, discardLogger())

	_, err := q.Enqueue(ctx, models.OperationApproveRequest, models.ApprovalPayload{ApprovalID: "ap-1"})
	require.NoError(t, err)

	res, err := q.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, res.Failed, 1)
	assert.False(t, res.Retryable())
	assert.Empty(t, inv.InvalidateAllCalls(), "no invalidation without successes")

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQueue_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.db")

	store := openStore(t, path)
	q := New(store, &ReplayerMock{}, nil, discardLogger())
	id, err := q.Enqueue(ctx, models.OperationMarkNotificationRead, models.NotificationReadPayload{NotificationID: "n-1"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Процесс перезапущен: операция на месте и воспроизводится
	store = openStore(t, path)
	replayer := &ReplayerMock{ReplayFunc: func(ctx context.Context, op models.PendingOperation) error { return nil }}
	q = New(store, replayer, okInvalidator(), discardLogger())

	ops, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, id, ops[0].ID)
	assert.Equal(t, models.OperationMarkNotificationRead, ops[0].Type)
	assert.JSONEq(t, `{"notification_id":"n-1"}`, string(ops[0].Payload))

	res, err := q.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, res.Succeeded)
	require.NoError(t, store.Close())

	// После еще одного перезапуска операция не возвращается
	store = openStore(t, path)
	defer store.Close()
	n, err := New(store, replayer, nil, discardLogger()).Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueue_EnqueuePersistenceFailure(t *testing.T) {
	ctx := context.Background()
	diskErr := errors.New("disk full")

	tests := []struct {
		kv     *storage.KVStoreMock
		name   string
		wantOp string
	}{
		{
			name: "write fails",
			kv: &storage.KVStoreMock{
				GetFunc: func(ctx context.Context, key string) ([]byte, error) { return nil, storage.ErrKeyNotFound },
				SetFunc: func(ctx context.Context, key string, value []byte) error { return diskErr },
			},
			wantOp: "write",
		},
		{
			name: "read fails",
			kv: &storage.KVStoreMock{
				GetFunc: func(ctx context.Context, key string) ([]byte, error) { return nil, diskErr },
			},
			wantOp: "read",
		},
		{
			name: "corrupt log",
			kv: &storage.KVStoreMock{
				GetFunc: func(ctx context.Context, key string) ([]byte, error) { return []byte("{oops"), nil },
			},
			wantOp: "decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(tt.kv, &ReplayerMock{}, nil, discardLogger())

			id, err := q.Enqueue(ctx, models.OperationCreateMovement, movement("X1"))
			require.Error(t, err)
			assert.Empty(t, id)

			var pe *PersistenceError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantOp, pe.Op)
			assert.True(t, IsPersistenceError(err))

			_, err = q.Drain(ctx)
			if tt.wantOp != "write" {
				assert.True(t, IsPersistenceError(err))
			}
		})
	}
}

func TestQueue_DrainRemoveFailure(t *testing.T) {
	ctx := context.Background()
	log := []byte(`[{"id":"op-1","type":"CREATE_MOVEMENT","payload":{}}]`)
	kv := &storage.KVStoreMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) { return log, nil },
		SetFunc: func(ctx context.Context, key string, value []byte) error { return errors.New("read-only fs") },
	}
	replayer := &ReplayerMock{ReplayFunc: func(ctx context.Context, op models.PendingOperation) error { return nil }}
	inv := okInvalidator()

	res, err := New(kv, replayer, inv, discardLogger()).Drain(ctx)
	require.Error(t, err)
	assert.True(t, IsPersistenceError(err))
	assert.Empty(t, res.Succeeded)
	// сервер операцию уже применил, кэш устарел
	assert.Len(t, inv.InvalidateAllCalls(), 1)
}

func TestQueue_DrainRemoveFailureAfterSuccess(t *testing.T) {
	ctx := context.Background()
	log := []byte(`[
		{"id":"op-1","type":"CREATE_MOVEMENT","payload":{}},
		{"id":"op-2","type":"CREATE_MOVEMENT","payload":{}},
		{"id":"op-3","type":"CREATE_MOVEMENT","payload":{}}
	]`)
	var sets int
	kv := &storage.KVStoreMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) { return log, nil },
		SetFunc: func(ctx context.Context, key string, value []byte) error {
			sets++
			if sets > 1 {
				return errors.New("disk full")
			}
			return nil
		},
	}
	replayer := &ReplayerMock{ReplayFunc: func(ctx context.Context, op models.PendingOperation) error { return nil }}
	inv := okInvalidator()

	res, err := New(kv, replayer, inv, discardLogger()).Drain(ctx)
	require.Error(t, err)
	assert.True(t, IsPersistenceError(err))
	assert.Equal(t, []string{"op-1"}, res.Succeeded)
	// op-3 не отправляется после ошибки записи лога
	assert.Len(t, replayer.ReplayCalls(), 2)
	assert.Len(t, inv.InvalidateAllCalls(), 1)
}

func TestQueue_UnknownTypeFailsLoudly(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := New(store, &ReplayerMock{}, nil, discardLogger()).Enqueue(ctx, "UPLOAD_ATTACHMENT", nil)
	assert.ErrorIs(t, err, ErrUnknownOperationType)

	// Запись неизвестного типа из старой версии клиента
	require.NoError(t, store.Set(ctx, LogKey, []byte(`[
		{"id":"op-1","type":"UPLOAD_ATTACHMENT","payload":{}},
		{"id":"op-2","type":"MARK_NOTIFICATION_READ","payload":{"notification_id":"n-1"}}
	]`)))

	client := &api.ClientAPIMock{
		MarkNotificationReadFunc: func(ctx context.Context, notificationID, idempotencyKey string) error { return nil },
	}
	q := New(store, NewAPIReplayer(client), okInvalidator(), discardLogger())

	res, err := q.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"op-1"}, res.Unknown)
	assert.Equal(t, []string{"op-2"}, res.Succeeded)
	assert.Empty(t, res.Failed)
	assert.False(t, res.Retryable())

	ops, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "op-1", ops[0].ID)
}

func TestQueue_EnqueueDuringDrainIsKept(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var q *Queue
	var lateID string
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, op models.PendingOperation) error {
			if lateID == "" {
				id, err := q.Enqueue(ctx, models.OperationCreateMovement, movement("LATE"))
				require.NoError(t, err)
				lateID = id
			}
			return nil
		},
	}
	q = New(store, replayer, okInvalidator(), discardLogger())

	first, err := q.Enqueue(ctx, models.OperationCreateMovement, movement("FIRST"))
	require.NoError(t, err)

	res, err := q.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{first}, res.Succeeded)

	ops, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, lateID, ops[0].ID)
}

func TestQueue_ConcurrentDrainsAreSerialized(t *testing.T) {
	ctx := context.Background()

	var inFlight, maxInFlight atomic.Int32
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, op models.PendingOperation) error {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			return nil
		},
	}
	q := New(newTestStore(t), replayer, okInvalidator(), discardLogger())

	for i := range 3 {
		_, err := q.Enqueue(ctx, models.OperationCreateMovement, movement(fmt.Sprintf("S%d", i)))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	var total atomic.Int32
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := q.Drain(ctx)
			assert.NoError(t, err)
			total.Add(int32(len(res.Succeeded)))
		}()
	}
	wg.Wait()

	// Каждая операция воспроизведена ровно один раз
	assert.Equal(t, int32(3), total.Load())
	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.Len(t, replayer.ReplayCalls(), 3)
}

func TestQueue_Clear(t *testing.T) {
	ctx := context.Background()
	q := New(newTestStore(t), &ReplayerMock{}, nil, discardLogger())

	for range 2 {
		_, err := q.Enqueue(ctx, models.OperationCreateMovement, movement("X1"))
		require.NoError(t, err)
	}
	require.NoError(t, q.Clear(ctx))

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueue_InvalidationErrorDoesNotFailDrain(t *testing.T) {
	ctx := context.Background()
	replayer := &ReplayerMock{ReplayFunc: func(ctx context.Context, op models.PendingOperation) error { return nil }}
	inv := &InvalidatorMock{InvalidateAllFunc: func(ctx context.Context) error { return errors.New("cache broken") }}
	q := New(newTestStore(t), replayer, inv, discardLogger())

	_, err := q.Enqueue(ctx, models.OperationCreateMovement, movement("X1"))
	require.NoError(t, err)

	res, err := q.Drain(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Succeeded, 1)
	assert.Len(t, inv.InvalidateAllCalls(), 1)
}

func TestQueue_DrainStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, op models.PendingOperation) error {
			cancel()
			return nil
		},
	}
	q := New(newTestStore(t), replayer, nil, discardLogger())

	for range 3 {
		_, err := q.Enqueue(context.Background(), models.OperationCreateMovement, movement("X1"))
		require.NoError(t, err)
	}

	inv := okInvalidator()
	q.invalidator = inv

	res, err := q.Drain(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, res.Succeeded, 1)
	assert.Len(t, inv.InvalidateAllCalls(), 1)

	n, err := q.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

func TestQueue_EnqueueWithID(t *testing.T) {
	ctx := context.Background()
	q := New(newTestStore(t), &ReplayerMock{}, nil, discardLogger())

	require.NoError(t, q.EnqueueWithID(ctx, "key-1", models.OperationRejectRequest, models.ApprovalPayload{ApprovalID: "ap-1"}))
	assert.ErrorContains(t, q.EnqueueWithID(ctx, "key-1", models.OperationRejectRequest, nil), "already queued")
	assert.ErrorContains(t, q.EnqueueWithID(ctx, "", models.OperationRejectRequest, nil), "cannot be empty")

	ops, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "key-1", ops[0].ID)
	assert.False(t, ops[0].EnqueuedAt.IsZero())
}
