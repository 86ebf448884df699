package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/client/cache"
	"github.com/iudanet/stockflow/internal/client/connectivity"
	"github.com/iudanet/stockflow/internal/models"
	"github.com/iudanet/stockflow/internal/validation"
	pkgapi "github.com/iudanet/stockflow/pkg/api"
)

// ErrNoCachedData returned by list calls when the server is unreachable and nothing is cached
var ErrNoCachedData = errors.New("server unreachable and no cached data")

//go:generate moq -out service_mock.go . Service
//go:generate moq -out enqueuer_mock.go . Enqueuer

// Service определяет интерфейс для клиентского data сервиса.
// Мутации при наличии сети идут напрямую на сервер, без сети или при временной
// ошибке ставятся в очередь. Чтения кешируются и отдаются из кеша офлайн.
type Service interface {
	CreateMovement(ctx context.Context, in MovementInput) (*Outcome, error)
	Approve(ctx context.Context, approvalID, comment string) (*Outcome, error)
	Reject(ctx context.Context, approvalID, comment string) (*Outcome, error)
	MarkNotificationRead(ctx context.Context, notificationID string) (*Outcome, error)

	ListMovements(ctx context.Context) (*MovementList, error)
	ListApprovals(ctx context.Context, status string) (*ApprovalList, error)
	ListNotifications(ctx context.Context) (*NotificationList, error)
}

// Enqueuer is the part of the operation queue the service needs
type Enqueuer interface {
	EnqueueWithID(ctx context.Context, id string, typ models.OperationType, payload any) error
}

// QueryCache is the read-through cache of list results
type QueryCache interface {
	Get(ctx context.Context, query string, dst any) (fresh bool, err error)
	Generation(ctx context.Context) (uint64, error)
	PutAt(ctx context.Context, query string, gen uint64, v any) error
	InvalidateAll(ctx context.Context) error
}

// MovementInput содержит поля нового перемещения
type MovementInput struct {
	SKU          string
	FromLocation string
	ToLocation   string
	Note         string
	Quantity     int64
}

// Outcome описывает результат мутации
type Outcome struct {
	OperationID string // Idempotency-Key вызова и ID операции в очереди
	ResourceID  string // ID созданного/измененного ресурса, если вызов прошел сразу
	Queued      bool   // операция отложена до восстановления связи
}

// Listing flags shared by list results
type Listing struct {
	FromCache bool // сервер недоступен, данные из локального кеша
	Stale     bool // кеш инвалидирован после последней синхронизации
}

// MovementList is the result of ListMovements
type MovementList struct {
	Movements []pkgapi.Movement
	Listing
}

// ApprovalList is the result of ListApprovals
type ApprovalList struct {
	Approvals []pkgapi.Approval
	Listing
}

// NotificationList is the result of ListNotifications
type NotificationList struct {
	Notifications []pkgapi.Notification
	Listing
}

type service struct {
	client   api.ClientAPI
	queue    Enqueuer
	cache    QueryCache
	observer connectivity.Observer
	logger   *slog.Logger
	newID    func() string
}

// NewService creates a new data service
func NewService(client api.ClientAPI, queue Enqueuer, cache QueryCache, observer connectivity.Observer, logger *slog.Logger) Service {
	return &service{
		client:   client,
		queue:    queue,
		cache:    cache,
		observer: observer,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// CreateMovement создает перемещение материала
func (s *service) CreateMovement(ctx context.Context, in MovementInput) (*Outcome, error) {
	in.Note = validation.Sanitize(in.Note)
	if err := validation.ValidateMovement(in.SKU, in.FromLocation, in.ToLocation, in.Quantity, in.Note); err != nil {
		return nil, fmt.Errorf("invalid movement: %w", err)
	}

	payload := models.CreateMovementPayload{
		SKU:          in.SKU,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Note:         in.Note,
		Quantity:     in.Quantity,
	}

	return s.mutate(ctx, models.OperationCreateMovement, payload, func(ctx context.Context, key string) (string, error) {
		mv, err := s.client.CreateMovement(ctx, pkgapi.CreateMovementRequest{
			SKU:          payload.SKU,
			FromLocation: payload.FromLocation,
			ToLocation:   payload.ToLocation,
			Note:         payload.Note,
			Quantity:     payload.Quantity,
		}, key)
		if err != nil {
			return "", err
		}
		return mv.ID, nil
	})
}

// Approve согласует заявку
func (s *service) Approve(ctx context.Context, approvalID, comment string) (*Outcome, error) {
	return s.act(ctx, models.OperationApproveRequest, pkgapi.ApprovalActionApprove, approvalID, comment)
}

// Reject отклоняет заявку
func (s *service) Reject(ctx context.Context, approvalID, comment string) (*Outcome, error) {
	return s.act(ctx, models.OperationRejectRequest, pkgapi.ApprovalActionReject, approvalID, comment)
}

func (s *service) act(ctx context.Context, typ models.OperationType, action, approvalID, comment string) (*Outcome, error) {
	if err := validation.ValidateID("approval", approvalID); err != nil {
		return nil, err
	}
	comment = validation.Sanitize(comment)
	if err := validation.ValidateComment(comment); err != nil {
		return nil, err
	}

	payload := models.ApprovalPayload{ApprovalID: approvalID, Comment: comment}
	return s.mutate(ctx, typ, payload, func(ctx context.Context, key string) (string, error) {
		ap, err := s.client.ActOnApproval(ctx, approvalID, pkgapi.ApprovalActionRequest{Action: action, Comment: comment}, key)
		if err != nil {
			return "", err
		}
		return ap.ID, nil
	})
}

// MarkNotificationRead отмечает уведомление прочитанным
func (s *service) MarkNotificationRead(ctx context.Context, notificationID string) (*Outcome, error) {
	if err := validation.ValidateID("notification", notificationID); err != nil {
		return nil, err
	}

	payload := models.NotificationReadPayload{NotificationID: notificationID}
	return s.mutate(ctx, models.OperationMarkNotificationRead, payload, func(ctx context.Context, key string) (string, error) {
		if err := s.client.MarkNotificationRead(ctx, notificationID, key); err != nil {
			return "", err
		}
		return notificationID, nil
	})
}

// mutate вызывает сервер напрямую, а при отсутствии связи ставит операцию в очередь
// под тем же ключом идемпотентности.
func (s *service) mutate(ctx context.Context, typ models.OperationType, payload any, call func(ctx context.Context, key string) (string, error)) (*Outcome, error) {
	id := s.newID()

	if s.observer.IsConnected() {
		resourceID, err := call(ctx, id)
		if err == nil {
			if err := s.cache.InvalidateAll(ctx); err != nil {
				s.logger.WarnContext(ctx, "Failed to invalidate query cache", "error", err)
			}
			return &Outcome{OperationID: id, ResourceID: resourceID}, nil
		}
		if !api.IsTransient(err) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "Server unavailable, queueing operation", "type", typ, "id", id, "error", err)
	}

	if err := s.queue.EnqueueWithID(ctx, id, typ, payload); err != nil {
		return nil, fmt.Errorf("failed to queue %s: %w", typ, err)
	}
	return &Outcome{OperationID: id, Queued: true}, nil
}

// ListMovements возвращает перемещения
func (s *service) ListMovements(ctx context.Context) (*MovementList, error) {
	items, listing, err := list(ctx, s, "movements", s.client.ListMovements)
	if err != nil {
		return nil, err
	}
	return &MovementList{Movements: items, Listing: listing}, nil
}

// ListApprovals возвращает заявки с указанным статусом
func (s *service) ListApprovals(ctx context.Context, status string) (*ApprovalList, error) {
	query := "approvals"
	if status != "" {
		query += "?status=" + status
	}
	items, listing, err := list(ctx, s, query, func(ctx context.Context) ([]pkgapi.Approval, error) {
		return s.client.ListApprovals(ctx, status)
	})
	if err != nil {
		return nil, err
	}
	return &ApprovalList{Approvals: items, Listing: listing}, nil
}

// ListNotifications возвращает уведомления
func (s *service) ListNotifications(ctx context.Context) (*NotificationList, error) {
	items, listing, err := list(ctx, s, "notifications", s.client.ListNotifications)
	if err != nil {
		return nil, err
	}
	return &NotificationList{Notifications: items, Listing: listing}, nil
}

// list читает с сервера и обновляет кеш; без связи отдает последний кешированный результат
func list[T any](ctx context.Context, s *service, query string, fetch func(ctx context.Context) ([]T, error)) ([]T, Listing, error) {
	if s.observer.IsConnected() {
		// поколение берем до запроса: drain во время fetch делает результат устаревшим
		gen, genErr := s.cache.Generation(ctx)
		items, err := fetch(ctx)
		if err == nil {
			if genErr == nil {
				genErr = s.cache.PutAt(ctx, query, gen, items)
			}
			if genErr != nil {
				s.logger.WarnContext(ctx, "Failed to cache query result", "query", query, "error", genErr)
			}
			return items, Listing{}, nil
		}
		if !api.IsTransient(err) {
			return nil, Listing{}, err
		}
		s.logger.WarnContext(ctx, "Server unavailable, reading from cache", "query", query, "error", err)
	}

	var items []T
	fresh, err := s.cache.Get(ctx, query, &items)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, Listing{}, ErrNoCachedData
		}
		return nil, Listing{}, err
	}
	return items, Listing{FromCache: true, Stale: !fresh}, nil
}
