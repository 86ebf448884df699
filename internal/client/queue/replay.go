package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/models"
	pkgapi "github.com/iudanet/stockflow/pkg/api"
)

// APIReplayer dispatches pending operations to the matching API call.
// ID операции передается как Idempotency-Key, поэтому повтор уже примененной
// на сервере операции не создает дубликат.
type APIReplayer struct {
	client api.ClientAPI
}

var _ Replayer = (*APIReplayer)(nil)

// NewAPIReplayer creates a replayer over the API client
func NewAPIReplayer(client api.ClientAPI) *APIReplayer {
	return &APIReplayer{client: client}
}

// Replay re-issues op against the server
func (r *APIReplayer) Replay(ctx context.Context, op models.PendingOperation) error {
	switch op.Type {
	case models.OperationCreateMovement:
		var p models.CreateMovementPayload
		if err := decodePayload(op, &p); err != nil {
			return err
		}
		_, err := r.client.CreateMovement(ctx, pkgapi.CreateMovementRequest{
			SKU:          p.SKU,
			FromLocation: p.FromLocation,
			ToLocation:   p.ToLocation,
			Quantity:     p.Quantity,
			Note:         p.Note,
		}, op.ID)
		return err

	case models.OperationApproveRequest, models.OperationRejectRequest:
		var p models.ApprovalPayload
		if err := decodePayload(op, &p); err != nil {
			return err
		}
		action := pkgapi.ApprovalActionApprove
		if op.Type == models.OperationRejectRequest {
			action = pkgapi.ApprovalActionReject
		}
		_, err := r.client.ActOnApproval(ctx, p.ApprovalID, pkgapi.ApprovalActionRequest{
			Action:  action,
			Comment: p.Comment,
		}, op.ID)
		return err

	case models.OperationMarkNotificationRead:
		var p models.NotificationReadPayload
		if err := decodePayload(op, &p); err != nil {
			return err
		}
		return r.client.MarkNotificationRead(ctx, p.NotificationID, op.ID)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperationType, op.Type)
	}
}

func decodePayload(op models.PendingOperation, dst any) error {
	if err := json.Unmarshal(op.Payload, dst); err != nil {
		return fmt.Errorf("invalid %s payload of operation %s: %w", op.Type, op.ID, err)
	}
	return nil
}
