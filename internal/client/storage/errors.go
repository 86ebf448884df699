package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrKeyNotFound indicates that the key has no value in the key-value store
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
