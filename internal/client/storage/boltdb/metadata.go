package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTime = "last_sync_time"
)

// SaveLastSyncTime saves the time of the last successful sync
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	return s.update(bucketMetadata, func(b *bbolt.Bucket) error {
		// Храним UnixNano в big-endian
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))

		if err := b.Put([]byte(keyLastSyncTime), buf); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}
		return nil
	})
}

// GetLastSyncTime retrieves the time of the last successful sync
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	var ts time.Time

	err := s.view(bucketMetadata, func(b *bbolt.Bucket) error {
		buf := b.Get([]byte(keyLastSyncTime))
		if len(buf) != 8 {
			// первая синхронизация еще не выполнялась
			return nil
		}
		ts = time.Unix(0, int64(binary.BigEndian.Uint64(buf)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return ts, nil
}
