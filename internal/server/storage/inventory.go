package storage

import (
	"context"
	"time"

	"github.com/iudanet/stockflow/internal/models"
)

// InventoryStorage defines persistence of movements, approvals and notifications
type InventoryStorage interface {
	// CreateMovement stores the movement together with its pending approval request
	CreateMovement(ctx context.Context, movement *models.Movement, approval *models.Approval) error

	// GetMovement returns ErrMovementNotFound if movement doesn't exist
	GetMovement(ctx context.Context, movementID string) (*models.Movement, error)

	// ListMovements returns movements newest first
	ListMovements(ctx context.Context) ([]*models.Movement, error)

	// GetApproval returns ErrApprovalNotFound if approval doesn't exist
	GetApproval(ctx context.Context, approvalID string) (*models.Approval, error)

	// ListApprovals returns approvals with the given status (all when empty), oldest first
	ListApprovals(ctx context.Context, status models.ApprovalStatus) ([]*models.Approval, error)

	// ActOnApproval moves a pending approval to its final status and stores the
	// notification for the movement creator in one transaction.
	// Returns ErrApprovalAlreadyActed if the approval is no longer pending
	ActOnApproval(ctx context.Context, approval *models.Approval, notification *models.Notification) error

	// ListNotifications returns the user's notifications newest first
	ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error)

	// MarkNotificationRead sets read_at once; marking a read notification again is a no-op.
	// Returns ErrNotificationNotFound if the notification doesn't belong to the user
	MarkNotificationRead(ctx context.Context, userID, notificationID string, readAt time.Time) error
}
