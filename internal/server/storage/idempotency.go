package storage

import (
	"context"

	"github.com/iudanet/stockflow/internal/models"
)

// IdempotencyStorage keeps responses of mutating requests sent with Idempotency-Key
type IdempotencyStorage interface {
	// GetIdempotencyRecord returns ErrIdempotencyKeyNotFound if nothing is recorded
	GetIdempotencyRecord(ctx context.Context, userID, key string) (*models.IdempotencyRecord, error)

	// SaveIdempotencyRecord stores the response; an existing record for the key is kept
	SaveIdempotencyRecord(ctx context.Context, record *models.IdempotencyRecord) error
}
