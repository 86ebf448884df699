package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/stockflow/internal/client/storage"
)

func TestStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.Get(ctx, "pending_operations")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "pending_operations", []byte(`[{"id":"a"}]`)))

	got, err := store.Get(ctx, "pending_operations")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	// Перезапись заменяет значение целиком
	require.NoError(t, store.Set(ctx, "pending_operations", []byte(`[]`)))
	got, err = store.Get(ctx, "pending_operations")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, store.Delete(ctx, "pending_operations"))
	_, err = store.Get(ctx, "pending_operations")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Удаление отсутствующего ключа не ошибка
	assert.NoError(t, store.Delete(ctx, "pending_operations"))
}

func TestStorage_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Set(ctx, "k", []byte("value")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'X'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "value", string(again))
}

func TestStorage_ValueSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "pending_operations", []byte("persisted")))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.Get(ctx, "pending_operations")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}

func TestStorage_KV_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketKV)
	})
	require.NoError(t, err)

	err = store.Set(ctx, "k", []byte("v"))
	assert.ErrorContains(t, err, "kv bucket not found")

	_, err = store.Get(ctx, "k")
	assert.ErrorContains(t, err, "kv bucket not found")
}
