package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/stockflow/internal/models"
	"github.com/iudanet/stockflow/internal/server/storage"
)

// GetIdempotencyRecord returns the response recorded for the user's key
func (s *Storage) GetIdempotencyRecord(ctx context.Context, userID, key string) (*models.IdempotencyRecord, error) {
	rec := &models.IdempotencyRecord{}
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, key, method, path, request_hash, status_code, body, created_at
		FROM idempotency_keys
		WHERE user_id = ? AND key = ?
	`, userID, key).Scan(
		&rec.UserID,
		&rec.Key,
		&rec.Method,
		&rec.Path,
		&rec.RequestHash,
		&rec.StatusCode,
		&rec.Body,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrIdempotencyKeyNotFound
		}
		return nil, fmt.Errorf("failed to get idempotency record: %w", err)
	}
	return rec, nil
}

// SaveIdempotencyRecord stores the response; the first record for a key wins
func (s *Storage) SaveIdempotencyRecord(ctx context.Context, rec *models.IdempotencyRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO idempotency_keys (user_id, key, method, path, request_hash, status_code, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, key) DO NOTHING
	`,
		rec.UserID,
		rec.Key,
		rec.Method,
		rec.Path,
		rec.RequestHash,
		rec.StatusCode,
		rec.Body,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save idempotency record: %w", err)
	}
	return nil
}
