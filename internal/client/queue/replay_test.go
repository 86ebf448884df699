package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/models"
	pkgapi "github.com/iudanet/stockflow/pkg/api"
)

func TestAPIReplayer_Dispatch(t *testing.T) {
	client := &api.ClientAPIMock{
		CreateMovementFunc: func(ctx context.Context, req pkgapi.CreateMovementRequest, idempotencyKey string) (*pkgapi.Movement, error) {
			return &pkgapi.Movement{ID: "mv-1"}, nil
		},
		ActOnApprovalFunc: func(ctx context.Context, approvalID string, req pkgapi.ApprovalActionRequest, idempotencyKey string) (*pkgapi.Approval, error) {
			return &pkgapi.Approval{ID: approvalID}, nil
		},
		MarkNotificationReadFunc: func(ctx context.Context, notificationID, idempotencyKey string) error {
			return nil
		},
	}
	r := NewAPIReplayer(client)
	ctx := context.Background()

	mustJSON := func(v any) json.RawMessage {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		return raw
	}

	require.NoError(t, r.Replay(ctx, models.PendingOperation{
		ID: "op-1", Type: models.OperationCreateMovement,
		Payload: mustJSON(models.CreateMovementPayload{SKU: "BOLT-M8", FromLocation: "A1", ToLocation: "B2", Quantity: 7, Note: "urgent"}),
	}))
	require.NoError(t, r.Replay(ctx, models.PendingOperation{
		ID: "op-2", Type: models.OperationApproveRequest,
		Payload: mustJSON(models.ApprovalPayload{ApprovalID: "ap-1", Comment: "ok"}),
	}))
	require.NoError(t, r.Replay(ctx, models.PendingOperation{
		ID: "op-3", Type: models.OperationRejectRequest,
		Payload: mustJSON(models.ApprovalPayload{ApprovalID: "ap-2"}),
	}))
	require.NoError(t, r.Replay(ctx, models.PendingOperation{
		ID: "op-4", Type: models.OperationMarkNotificationRead,
		Payload: mustJSON(models.NotificationReadPayload{NotificationID: "n-1"}),
	}))

	created := client.CreateMovementCalls()
	require.Len(t, created, 1)
	assert.Equal(t, "op-1", created[0].IdempotencyKey)
	assert.Equal(t, pkgapi.CreateMovementRequest{SKU: "BOLT-M8", FromLocation: "A1", ToLocation: "B2", Quantity: 7, Note: "urgent"}, created[0].Req)

	acted := client.ActOnApprovalCalls()
	require.Len(t, acted, 2)
	assert.Equal(t, "ap-1", acted[0].ApprovalID)
	assert.Equal(t, pkgapi.ApprovalActionApprove, acted[0].Req.Action)
	assert.Equal(t, "op-2", acted[0].IdempotencyKey)
	assert.Equal(t, pkgapi.ApprovalActionReject, acted[1].Req.Action)

	read := client.MarkNotificationReadCalls()
	require.Len(t, read, 1)
	assert.Equal(t, "n-1", read[0].NotificationID)
	assert.Equal(t, "op-4", read[0].IdempotencyKey)
}

func TestAPIReplayer_Errors(t *testing.T) {
	r := NewAPIReplayer(&api.ClientAPIMock{})
	ctx := context.Background()

	err := r.Replay(ctx, models.PendingOperation{ID: "op-1", Type: "SCAN_BARCODE"})
	assert.ErrorIs(t, err, ErrUnknownOperationType)

	err = r.Replay(ctx, models.PendingOperation{ID: "op-2", Type: models.OperationCreateMovement, Payload: json.RawMessage(`"not an object"`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CREATE_MOVEMENT payload")
	assert.False(t, api.IsTransient(err))
}
