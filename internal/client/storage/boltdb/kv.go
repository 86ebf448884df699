package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stockflow/internal/client/storage"
)

// Get returns a copy of the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.view(bucketKV, func(b *bbolt.Bucket) error {
		data := b.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}
		// Память bbolt валидна только внутри транзакции
		value = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key. bbolt фиксирует транзакцию через fsync, поэтому
// после успешного возврата значение переживет перезапуск процесса.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.update(bucketKV, func(b *bbolt.Bucket) error {
		if err := b.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to put key %q: %w", key, err)
		}
		return nil
	})
}

// Delete removes key; отсутствие ключа не ошибка
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.update(bucketKV, func(b *bbolt.Bucket) error {
		if err := b.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete key %q: %w", key, err)
		}
		return nil
	})
}
