package models

import "time"

// ApprovalStatus статус заявки на согласование перемещения
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Movement представляет перемещение материала между складскими локациями
type Movement struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	ID           string    `json:"id"`            // UUID перемещения
	SKU          string    `json:"sku"`           // артикул материала
	FromLocation string    `json:"from_location"` // откуда
	ToLocation   string    `json:"to_location"`   // куда
	Note         string    `json:"note"`          // комментарий инициатора
	CreatedBy    string    `json:"created_by"`    // ID пользователя
	Quantity     int64     `json:"quantity"`      // количество (> 0)
}

// Approval представляет заявку на согласование перемещения
type Approval struct {
	CreatedAt  time.Time      `json:"created_at"`
	ActedAt    *time.Time     `json:"acted_at,omitempty"` // nil пока заявка не рассмотрена
	ID         string         `json:"id"`
	MovementID string         `json:"movement_id"`
	Status     ApprovalStatus `json:"status"`
	Comment    string         `json:"comment"`
	ActedBy    string         `json:"acted_by"`
}

// Notification представляет уведомление пользователю
type Notification struct {
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
}

// IsRead reports whether the notification was marked read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
