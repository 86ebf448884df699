package api

import "time"

// IdempotencyKeyHeader carries the pending operation id on replayed mutations.
const IdempotencyKeyHeader = "Idempotency-Key"

// Approval actions accepted by POST /api/v1/approvals/{id}/act
const (
	ApprovalActionApprove = "approve"
	ApprovalActionReject  = "reject"
)

// CreateMovementRequest представляет запрос на создание перемещения
type CreateMovementRequest struct {
	SKU          string `json:"sku"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Note         string `json:"note,omitempty"`
	Quantity     int64  `json:"quantity"`
}

// Movement представляет перемещение в ответах API
type Movement struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	Note         string    `json:"note,omitempty"`
	CreatedBy    string    `json:"created_by"`
	ApprovalID   string    `json:"approval_id,omitempty"` // заявка, созданная вместе с перемещением
	Quantity     int64     `json:"quantity"`
}

// MovementListResponse представляет список перемещений
type MovementListResponse struct {
	Movements []Movement `json:"movements"`
}

// ApprovalActionRequest представляет решение по заявке
type ApprovalActionRequest struct {
	Action  string `json:"action"` // approve | reject
	Comment string `json:"comment,omitempty"`
}

// Approval представляет заявку на согласование в ответах API
type Approval struct {
	CreatedAt  time.Time  `json:"created_at"`
	ActedAt    *time.Time `json:"acted_at,omitempty"`
	ID         string     `json:"id"`
	MovementID string     `json:"movement_id"`
	Status     string     `json:"status"`
	Comment    string     `json:"comment,omitempty"`
	ActedBy    string     `json:"acted_by,omitempty"`
}

// ApprovalListResponse представляет список заявок
type ApprovalListResponse struct {
	Approvals []Approval `json:"approvals"`
}

// Notification представляет уведомление в ответах API
type Notification struct {
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
}

// NotificationListResponse представляет список уведомлений
type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
}
