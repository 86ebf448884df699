package models

import (
	"encoding/json"
	"time"
)

// OperationType определяет, какое удалённое действие нужно повторить при синхронизации
type OperationType string

const (
	OperationCreateMovement       OperationType = "CREATE_MOVEMENT"        // POST /movements
	OperationApproveRequest       OperationType = "APPROVE_REQUEST"        // POST /approvals/{id}/act (approve)
	OperationRejectRequest        OperationType = "REJECT_REQUEST"         // POST /approvals/{id}/act (reject)
	OperationMarkNotificationRead OperationType = "MARK_NOTIFICATION_READ" // POST /notifications/{id}/read
)

// KnownOperationTypes returns every type the replay dispatcher understands.
func KnownOperationTypes() []OperationType {
	return []OperationType{
		OperationCreateMovement,
		OperationApproveRequest,
		OperationRejectRequest,
		OperationMarkNotificationRead,
	}
}

// PendingOperation представляет мутацию, выполненную офлайн и ожидающую повтора на сервере.
// Операции хранятся в журнале в порядке постановки и удаляются только после успешного повтора.
type PendingOperation struct {
	EnqueuedAt time.Time       `json:"enqueued_at"` // время постановки в очередь
	ID         string          `json:"id"`          // UUID операции, он же Idempotency-Key при повторе
	Type       OperationType   `json:"type"`        // тег действия
	Payload    json.RawMessage `json:"payload"`     // данные для повтора, формат зависит от Type
}

// CreateMovementPayload is the payload of OperationCreateMovement.
type CreateMovementPayload struct {
	SKU          string `json:"sku"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Note         string `json:"note,omitempty"`
	Quantity     int64  `json:"quantity"`
}

// ApprovalPayload is the payload of OperationApproveRequest and OperationRejectRequest.
type ApprovalPayload struct {
	ApprovalID string `json:"approval_id"`
	Comment    string `json:"comment,omitempty"`
}

// NotificationReadPayload is the payload of OperationMarkNotificationRead.
type NotificationReadPayload struct {
	NotificationID string `json:"notification_id"`
}
