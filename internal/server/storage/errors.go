package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrMovementNotFound indicates that movement was not found
	ErrMovementNotFound = errors.New("movement not found")

	// ErrApprovalNotFound indicates that approval request was not found
	ErrApprovalNotFound = errors.New("approval not found")

	// ErrApprovalAlreadyActed indicates that approval was already approved or rejected
	ErrApprovalAlreadyActed = errors.New("approval already acted on")

	// ErrNotificationNotFound indicates that notification was not found for the user
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrIdempotencyKeyNotFound indicates that no response is recorded for the key
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")
)
