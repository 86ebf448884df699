package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stockflow/internal/models"
	"github.com/iudanet/stockflow/internal/server/storage"
)

// CreateMovement stores the movement and its pending approval in one transaction
func (s *Storage) CreateMovement(ctx context.Context, movement *models.Movement, approval *models.Approval) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO movements (id, sku, quantity, from_location, to_location, note, created_by, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			movement.ID,
			movement.SKU,
			movement.Quantity,
			movement.FromLocation,
			movement.ToLocation,
			movement.Note,
			movement.CreatedBy,
			movement.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert movement: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO approvals (id, movement_id, status, created_at)
			VALUES (?, ?, ?, ?)
		`, approval.ID, movement.ID, approval.Status, approval.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert approval: %w", err)
		}
		return nil
	})
}

const movementColumns = `id, sku, quantity, from_location, to_location, note, created_by, created_at`

func scanMovement(row interface{ Scan(dest ...any) error }) (*models.Movement, error) {
	m := &models.Movement{}
	err := row.Scan(&m.ID, &m.SKU, &m.Quantity, &m.FromLocation, &m.ToLocation, &m.Note, &m.CreatedBy, &m.CreatedAt)
	return m, err
}

// GetMovement retrieves movement by ID
func (s *Storage) GetMovement(ctx context.Context, movementID string) (*models.Movement, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+movementColumns+` FROM movements WHERE id = ?`, movementID)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMovementNotFound
		}
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}
	return m, nil
}

// ListMovements returns movements newest first
func (s *Storage) ListMovements(ctx context.Context) ([]*models.Movement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+movementColumns+` FROM movements ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	var movements []*models.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movements: %w", err)
	}
	return movements, nil
}

const approvalColumns = `id, movement_id, status, comment, acted_by, created_at, acted_at`

func scanApproval(row interface{ Scan(dest ...any) error }) (*models.Approval, error) {
	a := &models.Approval{}
	var actedAt sql.NullTime
	if err := row.Scan(&a.ID, &a.MovementID, &a.Status, &a.Comment, &a.ActedBy, &a.CreatedAt, &actedAt); err != nil {
		return nil, err
	}
	if actedAt.Valid {
		a.ActedAt = &actedAt.Time
	}
	return a, nil
}

// GetApproval retrieves approval by ID
func (s *Storage) GetApproval(ctx context.Context, approvalID string) (*models.Approval, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+approvalColumns+` FROM approvals WHERE id = ?`, approvalID)
	a, err := scanApproval(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrApprovalNotFound
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	return a, nil
}

// ListApprovals returns approvals with the status (all when empty), oldest first
func (s *Storage) ListApprovals(ctx context.Context, status models.ApprovalStatus) ([]*models.Approval, error) {
	query := `SELECT ` + approvalColumns + ` FROM approvals`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query approvals: %w", err)
	}
	defer rows.Close()

	var approvals []*models.Approval
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval: %w", err)
		}
		approvals = append(approvals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approvals: %w", err)
	}
	return approvals, nil
}

// ActOnApproval records the decision and the notification for the movement creator.
// Условие status = 'pending' в UPDATE не дает принять решение дважды.
func (s *Storage) ActOnApproval(ctx context.Context, approval *models.Approval, notification *models.Notification) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE approvals
			SET status = ?, comment = ?, acted_by = ?, acted_at = ?
			WHERE id = ? AND status = ?
		`,
			approval.Status,
			approval.Comment,
			approval.ActedBy,
			approval.ActedAt,
			approval.ID,
			models.ApprovalPending,
		)
		if err != nil {
			return fmt.Errorf("failed to update approval: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			var exists int
			err := tx.QueryRowContext(ctx, `SELECT 1 FROM approvals WHERE id = ?`, approval.ID).Scan(&exists)
			switch {
			case errors.Is(err, sql.ErrNoRows):
				return storage.ErrApprovalNotFound
			case err != nil:
				return fmt.Errorf("failed to get approval: %w", err)
			}
			return storage.ErrApprovalAlreadyActed
		}

		if notification == nil {
			return nil
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO notifications (id, user_id, title, body, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, notification.ID, notification.UserID, notification.Title, notification.Body, notification.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
		return nil
	})
}

// ListNotifications returns the user's notifications newest first
func (s *Storage) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, body, created_at, read_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		var readAt sql.NullTime
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.CreatedAt, &readAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if readAt.Valid {
			n.ReadAt = &readAt.Time
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead sets read_at if it is not set yet
func (s *Storage) MarkNotificationRead(ctx context.Context, userID, notificationID string, readAt time.Time) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE notifications
		SET read_at = COALESCE(read_at, ?)
		WHERE id = ? AND user_id = ?
	`, readAt, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return expectOneRow(result, storage.ErrNotificationNotFound)
}
