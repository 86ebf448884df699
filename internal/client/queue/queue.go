// Package queue implements the persisted queue of mutations made while the
// server was unreachable, and replays them in enqueue order.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/client/storage"
	"github.com/iudanet/stockflow/internal/models"
)

// LogKey is the KV key holding the serialized operation log
const LogKey = "pending_operations"

//go:generate moq -out replayer_mock.go . Replayer
//go:generate moq -out invalidator_mock.go . Invalidator

// Replayer re-issues one pending operation against the server.
// Returns an error wrapping ErrUnknownOperationType for unsupported type tags.
type Replayer interface {
	Replay(ctx context.Context, op models.PendingOperation) error
}

// Invalidator marks every cached query result stale
type Invalidator interface {
	InvalidateAll(ctx context.Context) error
}

// Failure describes one operation whose replay failed during a drain
type Failure struct {
	Err       error
	ID        string
	Type      models.OperationType
	Transient bool // повтор может помочь (сеть, 5xx, 429)
}

// DrainResult is the outcome of one drain.
// Операции из Failed и Unknown остаются в журнале.
type DrainResult struct {
	Succeeded []string
	Failed    []Failure
	Unknown   []string
}

// FailedIDs returns ids of operations whose replay failed
func (r *DrainResult) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.ID)
	}
	return ids
}

// Retryable reports whether at least one replay failed with a transient error
func (r *DrainResult) Retryable() bool {
	return slices.ContainsFunc(r.Failed, func(f Failure) bool { return f.Transient })
}

// Queue is the single owner of the persisted operation log.
type Queue struct {
	kv          storage.KVStore
	replayer    Replayer
	invalidator Invalidator
	logger      *slog.Logger
	tracer      trace.Tracer
	now         func() time.Time
	newID       func() string
	mu          sync.Mutex // read-modify-write журнала
	drainMu     sync.Mutex // не более одного Drain одновременно
}

// New creates a queue. invalidator may be nil when no query cache is used.
func New(kv storage.KVStore, replayer Replayer, invalidator Invalidator, logger *slog.Logger) *Queue {
	return &Queue{
		kv:          kv,
		replayer:    replayer,
		invalidator: invalidator,
		logger:      logger,
		tracer:      otel.Tracer("github.com/iudanet/stockflow/internal/client/queue"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Enqueue appends an operation to the log and returns its generated id.
// payload is marshaled to JSON; json.RawMessage is stored verbatim.
func (q *Queue) Enqueue(ctx context.Context, typ models.OperationType, payload any) (string, error) {
	id := q.newID()
	if err := q.EnqueueWithID(ctx, id, typ, payload); err != nil {
		return "", err
	}
	return id, nil
}

// EnqueueWithID appends an operation under a caller-chosen id.
// Используется, когда прямой вызов API уже ушел с этим Idempotency-Key и упал
// с временной ошибкой: повтор из очереди должен идти под тем же ключом.
func (q *Queue) EnqueueWithID(ctx context.Context, id string, typ models.OperationType, payload any) error {
	if id == "" {
		return fmt.Errorf("operation id cannot be empty")
	}
	if !slices.Contains(models.KnownOperationTypes(), typ) {
		return fmt.Errorf("%w: %q", ErrUnknownOperationType, typ)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", typ, err)
	}

	op := models.PendingOperation{
		ID:         id,
		Type:       typ,
		Payload:    raw,
		EnqueuedAt: q.now().UTC(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.load(ctx)
	if err != nil {
		return err
	}
	if slices.ContainsFunc(ops, func(o models.PendingOperation) bool { return o.ID == id }) {
		return fmt.Errorf("operation %s is already queued", id)
	}
	if err := q.save(ctx, append(ops, op)); err != nil {
		return err
	}

	q.logger.InfoContext(ctx, "Operation queued", "id", op.ID, "type", op.Type, "queue_len", len(ops)+1)
	return nil
}

// Drain replays a snapshot of the log in FIFO order, one operation at a time.
// Each successful operation is removed from the log immediately; failed and unknown
// operations stay queued. Operations enqueued while the drain runs wait for the next drain.
// Returns an error only when the log cannot be read or written, or ctx is done.
func (q *Queue) Drain(ctx context.Context) (*DrainResult, error) {
	q.drainMu.Lock()
	defer q.drainMu.Unlock()

	ctx, span := q.tracer.Start(ctx, "queue.Drain")
	defer span.End()

	q.mu.Lock()
	snapshot, err := q.load(ctx)
	q.mu.Unlock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load operation log")
		return nil, err
	}

	result := &DrainResult{}
	span.SetAttributes(attribute.Int("queue.length", len(snapshot)))
	if len(snapshot) == 0 {
		return result, nil
	}

	q.logger.InfoContext(ctx, "Draining operation queue", "operations", len(snapshot))

	var (
		drainErr error
		// сервер принял хотя бы одну операцию, даже если удалить ее из лога не удалось
		applied bool
	)
loop:
	for _, op := range snapshot {
		if err := ctx.Err(); err != nil {
			// Оставшиеся операции дождутся следующего drain
			drainErr = err
			break
		}

		err := q.replay(ctx, op)
		switch {
		case err == nil:
			applied = true
			if err := q.remove(ctx, op.ID); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "remove replayed operation")
				drainErr = err
				break loop
			}
			result.Succeeded = append(result.Succeeded, op.ID)
		case errors.Is(err, ErrUnknownOperationType):
			q.logger.WarnContext(ctx, "Unknown operation type left in queue", "id", op.ID, "type", op.Type)
			result.Unknown = append(result.Unknown, op.ID)
		default:
			transient := api.IsTransient(err)
			q.logger.WarnContext(ctx, "Operation replay failed", "id", op.ID, "type", op.Type, "transient", transient, "error", err)
			result.Failed = append(result.Failed, Failure{ID: op.ID, Type: op.Type, Err: err, Transient: transient})
		}
	}

	span.SetAttributes(
		attribute.Int("queue.succeeded", len(result.Succeeded)),
		attribute.Int("queue.failed", len(result.Failed)),
		attribute.Int("queue.unknown", len(result.Unknown)),
	)

	if applied && q.invalidator != nil {
		// Ошибка инвалидации не отменяет уже примененные операции
		if err := q.invalidator.InvalidateAll(context.WithoutCancel(ctx)); err != nil {
			q.logger.WarnContext(ctx, "Failed to invalidate query cache", "error", err)
		}
	}

	q.logger.InfoContext(ctx, "Queue drained",
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
		"unknown", len(result.Unknown),
	)
	return result, drainErr
}

// Clear empties the log. Административная операция, в обычном потоке не используется.
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.save(ctx, nil); err != nil {
		return err
	}
	q.logger.WarnContext(ctx, "Operation queue cleared")
	return nil
}

// List returns the queued operations in enqueue order
func (q *Queue) List(ctx context.Context) ([]models.PendingOperation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.load(ctx)
}

// Len returns the number of queued operations
func (q *Queue) Len(ctx context.Context) (int, error) {
	ops, err := q.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(ops), nil
}

func (q *Queue) replay(ctx context.Context, op models.PendingOperation) error {
	ctx, span := q.tracer.Start(ctx, "queue.Replay", trace.WithAttributes(
		attribute.String("operation.id", op.ID),
		attribute.String("operation.type", string(op.Type)),
	))
	defer span.End()

	if err := q.replayer.Replay(ctx, op); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "replay failed")
		return err
	}
	return nil
}

// remove deletes one operation by id; caller must not hold q.mu
func (q *Queue) remove(ctx context.Context, id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.load(ctx)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(ops, func(op models.PendingOperation) bool { return op.ID == id })
	return q.save(ctx, kept)
}

// load reads the log; caller must hold q.mu
func (q *Queue) load(ctx context.Context) ([]models.PendingOperation, error) {
	raw, err := q.kv.Get(ctx, LogKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "read", Err: err}
	}

	var ops []models.PendingOperation
	if err := json.Unmarshal(raw, &ops); err != nil {
		return nil, &PersistenceError{Op: "decode", Err: err}
	}
	return ops, nil
}

// save replaces the log; caller must hold q.mu
func (q *Queue) save(ctx context.Context, ops []models.PendingOperation) error {
	if ops == nil {
		ops = []models.PendingOperation{}
	}
	raw, err := json.Marshal(ops)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := q.kv.Set(ctx, LogKey, raw); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}
