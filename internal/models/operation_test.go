package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingOperation_JSONKeepsPayloadVerbatim(t *testing.T) {
	payload := json.RawMessage(`{"sku":"SKU-1","from_location":"A1","to_location":"B2","quantity":5}`)
	op := PendingOperation{
		ID:         "op-1",
		Type:       OperationCreateMovement,
		Payload:    payload,
		EnqueuedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(op)
	require.NoError(t, err)

	var decoded PendingOperation
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, op.ID, decoded.ID)
	assert.Equal(t, op.Type, decoded.Type)
	assert.JSONEq(t, string(payload), string(decoded.Payload))
	assert.True(t, op.EnqueuedAt.Equal(decoded.EnqueuedAt))

	var movement CreateMovementPayload
	require.NoError(t, json.Unmarshal(decoded.Payload, &movement))
	assert.Equal(t, int64(5), movement.Quantity)
	assert.Equal(t, "B2", movement.ToLocation)
}

func TestKnownOperationTypes(t *testing.T) {
	types := KnownOperationTypes()
	assert.Len(t, types, 4)
	assert.Contains(t, types, OperationRejectRequest)
}

func TestNotification_IsRead(t *testing.T) {
	n := &Notification{ID: "n-1"}
	assert.False(t, n.IsRead())

	now := time.Now()
	n.ReadAt = &now
	assert.True(t, n.IsRead())
}
