package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/client/cache"
	"github.com/iudanet/stockflow/internal/client/connectivity"
	"github.com/iudanet/stockflow/internal/client/queue"
	"github.com/iudanet/stockflow/internal/client/storage/boltdb"
	"github.com/iudanet/stockflow/internal/models"
	pkgapi "github.com/iudanet/stockflow/pkg/api"
)

type staticToken string

func (s staticToken) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// Операция, поставленная офлайн, уходит на сервер при восстановлении сети,
// удаляется из журнала, а кеш инвалидируется ровно один раз.
func TestScenario_ConnectivityRestoredDrainsQueue(t *testing.T) {
	ctx := context.Background()

	var received atomic.Int32
	var idempotencyKey atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/movements" {
			http.NotFound(w, r)
			return
		}
		received.Add(1)
		idempotencyKey.Store(r.Header.Get(pkgapi.IdempotencyKeyHeader))

		var req pkgapi.CreateMovementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(pkgapi.Movement{ID: "mv-1", SKU: req.SKU, Quantity: req.Quantity})
	}))
	defer server.Close()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer store.Close()

	queryCache := cache.New(store, discardLogger())
	require.NoError(t, queryCache.Put(ctx, "movements", []pkgapi.Movement{}))

	invalidator := &queue.InvalidatorMock{InvalidateAllFunc: queryCache.InvalidateAll}
	client := api.NewClient(server.URL, staticToken("token"))
	q := queue.New(store, queue.NewAPIReplayer(client), invalidator, discardLogger())

	observer := connectivity.NewManual(false)
	o := New(q, observer, store, testConfig(), discardLogger())
	startOrchestrator(t, o)

	// Офлайн: операция попадает в журнал, сервер не вызывается
	id, err := q.Enqueue(ctx, models.OperationCreateMovement, models.CreateMovementPayload{
		SKU: "PIPE-20", FromLocation: "WH1-A-03", ToLocation: "DOCK/2", Quantity: 12,
	})
	require.NoError(t, err)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Zero(t, received.Load())

	observer.SetConnected(true)

	require.Eventually(t, func() bool {
		n, err := q.Len(ctx)
		return err == nil && n == 0
	}, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return o.Status().Drains == 1 }, time.Second, time.Millisecond)

	assert.Equal(t, int32(1), received.Load())
	assert.Equal(t, id, idempotencyKey.Load())
	assert.Len(t, invalidator.InvalidateAllCalls(), 1)

	var cached []pkgapi.Movement
	fresh, err := queryCache.Get(ctx, "movements", &cached)
	require.NoError(t, err)
	assert.False(t, fresh, "cached queries are stale after a successful drain")

	lastSync, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.False(t, lastSync.IsZero())
}
