package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/stockflow/internal/models"
	"github.com/iudanet/stockflow/internal/server/storage"
	"github.com/iudanet/stockflow/internal/validation"
	"github.com/iudanet/stockflow/pkg/api"
)

// InventoryHandler обрабатывает запросы перемещений, заявок и уведомлений
type InventoryHandler struct {
	logger  *slog.Logger
	storage storage.InventoryStorage
	now     func() time.Time
}

// NewInventoryHandler создает новый handler для складских операций
func NewInventoryHandler(logger *slog.Logger, storage storage.InventoryStorage) *InventoryHandler {
	return &InventoryHandler{
		logger:  logger,
		storage: storage,
		now:     time.Now,
	}
}

// CreateMovement обрабатывает POST /api/v1/movements.
// Вместе с перемещением создается заявка на согласование в статусе pending.
func (h *InventoryHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		SendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode movement request", slog.Any("error", err))
		SendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Note = validation.Sanitize(req.Note)
	if err := validation.ValidateMovement(req.SKU, req.FromLocation, req.ToLocation, req.Quantity, req.Note); err != nil {
		SendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	now := h.now().UTC()
	movement := &models.Movement{
		ID:           uuid.NewString(),
		SKU:          req.SKU,
		Quantity:     req.Quantity,
		FromLocation: req.FromLocation,
		ToLocation:   req.ToLocation,
		Note:         req.Note,
		CreatedBy:    userID,
		CreatedAt:    now,
	}
	approval := &models.Approval{
		ID:         uuid.NewString(),
		MovementID: movement.ID,
		Status:     models.ApprovalPending,
		CreatedAt:  now,
	}

	if err := h.storage.CreateMovement(ctx, movement, approval); err != nil {
		h.logger.ErrorContext(ctx, "failed to create movement", slog.Any("error", err))
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "movement created",
		slog.String("movement_id", movement.ID),
		slog.String("approval_id", approval.ID),
		slog.String("user_id", userID))

	resp := toAPIMovement(movement)
	resp.ApprovalID = approval.ID
	SendJSON(w, h.logger, resp, http.StatusCreated)
}

// ListMovements обрабатывает GET /api/v1/movements
func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	movements, err := h.storage.ListMovements(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list movements", slog.Any("error", err))
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MovementListResponse{Movements: make([]api.Movement, 0, len(movements))}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, toAPIMovement(m))
	}
	SendJSON(w, h.logger, resp, http.StatusOK)
}

// ListApprovals обрабатывает GET /api/v1/approvals?status=pending
func (h *InventoryHandler) ListApprovals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := models.ApprovalStatus(r.URL.Query().Get("status"))
	switch status {
	case "", models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
	default:
		SendError(w, h.logger, fmt.Sprintf("unknown approval status %q", status), http.StatusBadRequest)
		return
	}

	approvals, err := h.storage.ListApprovals(ctx, status)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list approvals", slog.Any("error", err))
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ApprovalListResponse{Approvals: make([]api.Approval, 0, len(approvals))}
	for _, a := range approvals {
		resp.Approvals = append(resp.Approvals, toAPIApproval(a))
	}
	SendJSON(w, h.logger, resp, http.StatusOK)
}

// ActOnApproval обрабатывает POST /api/v1/approvals/{id}/act.
// Инициатор перемещения получает уведомление о решении.
func (h *InventoryHandler) ActOnApproval(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		SendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}

	approvalID := chi.URLParam(r, "id")
	if err := validation.ValidateID("approval", approvalID); err != nil {
		SendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.ApprovalActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	var status models.ApprovalStatus
	switch req.Action {
	case api.ApprovalActionApprove:
		status = models.ApprovalApproved
	case api.ApprovalActionReject:
		status = models.ApprovalRejected
	default:
		SendError(w, h.logger, fmt.Sprintf("unknown action %q", req.Action), http.StatusBadRequest)
		return
	}

	req.Comment = validation.Sanitize(req.Comment)
	if err := validation.ValidateComment(req.Comment); err != nil {
		SendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	approval, err := h.storage.GetApproval(ctx, approvalID)
	if err != nil {
		h.sendApprovalError(w, r, approvalID, err)
		return
	}
	if approval.Status != models.ApprovalPending {
		h.sendApprovalError(w, r, approvalID, storage.ErrApprovalAlreadyActed)
		return
	}

	movement, err := h.storage.GetMovement(ctx, approval.MovementID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get movement for approval",
			slog.String("approval_id", approvalID), slog.Any("error", err))
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	now := h.now().UTC()
	approval.Status = status
	approval.Comment = req.Comment
	approval.ActedBy = userID
	approval.ActedAt = &now

	notification := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    movement.CreatedBy,
		Title:     fmt.Sprintf("Movement %s", status),
		Body:      notificationBody(movement, approval),
		CreatedAt: now,
	}

	if err := h.storage.ActOnApproval(ctx, approval, notification); err != nil {
		h.sendApprovalError(w, r, approvalID, err)
		return
	}

	h.logger.InfoContext(ctx, "approval acted",
		slog.String("approval_id", approval.ID),
		slog.String("status", string(status)),
		slog.String("user_id", userID))

	SendJSON(w, h.logger, toAPIApproval(approval), http.StatusOK)
}

func (h *InventoryHandler) sendApprovalError(w http.ResponseWriter, r *http.Request, approvalID string, err error) {
	switch {
	case errors.Is(err, storage.ErrApprovalNotFound):
		SendError(w, h.logger, "approval not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrApprovalAlreadyActed):
		h.logger.WarnContext(r.Context(), "approval already acted", slog.String("approval_id", approvalID))
		SendError(w, h.logger, "approval already acted", http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), "failed to act on approval",
			slog.String("approval_id", approvalID), slog.Any("error", err))
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
	}
}

func notificationBody(m *models.Movement, a *models.Approval) string {
	body := fmt.Sprintf("%d x %s from %s to %s was %s.", m.Quantity, m.SKU, m.FromLocation, m.ToLocation, a.Status)
	if a.Comment != "" {
		body += " Comment: " + a.Comment
	}
	return body
}

// ListNotifications обрабатывает GET /api/v1/notifications
func (h *InventoryHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		SendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}

	notifications, err := h.storage.ListNotifications(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notifications", slog.Any("error", err))
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.NotificationListResponse{Notifications: make([]api.Notification, 0, len(notifications))}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, api.Notification{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
			ReadAt:    n.ReadAt,
		})
	}
	SendJSON(w, h.logger, resp, http.StatusOK)
}

// MarkNotificationRead обрабатывает POST /api/v1/notifications/{id}/read.
// Повторная отметка прочитанного уведомления не является ошибкой.
func (h *InventoryHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		SendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}

	notificationID := chi.URLParam(r, "id")
	if err := validation.ValidateID("notification", notificationID); err != nil {
		SendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.MarkNotificationRead(ctx, userID, notificationID, h.now().UTC()); err != nil {
		if errors.Is(err, storage.ErrNotificationNotFound) {
			SendError(w, h.logger, "notification not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to mark notification read", slog.Any("error", err))
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toAPIMovement(m *models.Movement) api.Movement {
	return api.Movement{
		ID:           m.ID,
		SKU:          m.SKU,
		Quantity:     m.Quantity,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Note:         m.Note,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
}

func toAPIApproval(a *models.Approval) api.Approval {
	return api.Approval{
		ID:         a.ID,
		MovementID: a.MovementID,
		Status:     string(a.Status),
		Comment:    a.Comment,
		ActedBy:    a.ActedBy,
		ActedAt:    a.ActedAt,
		CreatedAt:  a.CreatedAt,
	}
}
