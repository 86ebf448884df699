package storage

import "context"

//go:generate moq -out kvstore_mock.go . KVStore

// KVStore defines the durable key-value collaborator used by the operation queue
// and the query cache. The store is agnostic to what the values contain.
type KVStore interface {
	// Get returns the value stored under key
	// Returns ErrKeyNotFound if nothing is stored
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	// The write is durable when Set returns nil.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
