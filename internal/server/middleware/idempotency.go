package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/iudanet/stockflow/internal/crypto"
	"github.com/iudanet/stockflow/internal/models"
	"github.com/iudanet/stockflow/internal/server/handlers"
	"github.com/iudanet/stockflow/internal/server/storage"
	"github.com/iudanet/stockflow/pkg/api"
)

const (
	idempotencyKeyHeader = api.IdempotencyKeyHeader

	// ReplayedHeader выставляется на ответе, восстановленном из сохраненной записи
	ReplayedHeader = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 255
	maxIdempotentBody    = 1 << 20
)

// Idempotency применяет мутирующий запрос с Idempotency-Key не больше одного раза.
// Повтор с тем же ключом получает сохраненный ответ. Ключи разделены по пользователям,
// поэтому middleware ставится после Auth.
type Idempotency struct {
	store    storage.IdempotencyStorage
	logger   *slog.Logger
	now      func() time.Time
	inFlight map[string]struct{}
	mu       sync.Mutex
}

// NewIdempotency создает middleware поверх хранилища ключей
func NewIdempotency(store storage.IdempotencyStorage, logger *slog.Logger) *Idempotency {
	return &Idempotency{
		store:    store,
		logger:   logger,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// Handler оборачивает next
func (m *Idempotency) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(idempotencyKeyHeader)
		userID, authed := handlers.GetUserID(r.Context())
		if key == "" || !authed || !isMutation(r.Method) {
			next.ServeHTTP(w, r)
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			handlers.SendError(w, m.logger, "idempotency key is too long", http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		logger := m.logger.With(slog.String("user_id", userID), slog.String("idempotency_key", key))

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxIdempotentBody))
		if err != nil {
			handlers.SendError(w, m.logger, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		hash := crypto.Fingerprint(body)

		slot := userID + "\x00" + key
		if !m.acquire(slot) {
			// первый запрос еще выполняется; клиент повторит позже и получит его ответ
			logger.WarnContext(ctx, "request with the same idempotency key is in progress")
			w.Header().Set("Retry-After", "1")
			handlers.SendError(w, m.logger, "request with this idempotency key is in progress", http.StatusTooManyRequests)
			return
		}
		defer m.release(slot)

		// запись читаем только под слотом, после сохранения ответа предыдущим владельцем
		rec, err := m.store.GetIdempotencyRecord(ctx, userID, key)
		switch {
		case err == nil:
			if rec.Method != r.Method || rec.Path != r.URL.Path || rec.RequestHash != hash {
				logger.WarnContext(ctx, "idempotency key reused for a different request",
					slog.String("method", r.Method), slog.String("path", r.URL.Path))
				handlers.SendError(w, m.logger, "idempotency key was already used for a different request", http.StatusUnprocessableEntity)
				return
			}
			logger.InfoContext(ctx, "replaying stored response", slog.Int("status", rec.StatusCode))
			replay(w, rec)
			return
		case !errors.Is(err, storage.ErrIdempotencyKeyNotFound):
			logger.ErrorContext(ctx, "failed to get idempotency record", slog.Any("error", err))
			handlers.SendError(w, m.logger, "internal server error", http.StatusInternalServerError)
			return
		}

		recorder := newStatusRecorder(w, true)
		next.ServeHTTP(recorder, r)

		// 5xx не сохраняем: повтор должен выполнить запрос заново
		if recorder.status >= http.StatusInternalServerError {
			return
		}

		// handler уже применил изменения: запись сохраняем, даже если клиент отключился
		err = m.store.SaveIdempotencyRecord(context.WithoutCancel(ctx), &models.IdempotencyRecord{
			Key:         key,
			UserID:      userID,
			Method:      r.Method,
			Path:        r.URL.Path,
			RequestHash: hash,
			StatusCode:  recorder.status,
			Body:        recorder.body.Bytes(),
			CreatedAt:   m.now().UTC(),
		})
		if err != nil {
			// ответ уже отправлен; повтор выполнит запрос еще раз
			logger.ErrorContext(ctx, "failed to save idempotency record", slog.Any("error", err))
		}
	})
}

func (m *Idempotency) acquire(slot string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.inFlight[slot]; busy {
		return false
	}
	m.inFlight[slot] = struct{}{}
	return true
}

func (m *Idempotency) release(slot string) {
	m.mu.Lock()
	delete(m.inFlight, slot)
	m.mu.Unlock()
}

func replay(w http.ResponseWriter, rec *models.IdempotencyRecord) {
	h := w.Header()
	if len(rec.Body) > 0 {
		h.Set("Content-Type", "application/json")
	}
	h.Set(ReplayedHeader, strconv.FormatBool(true))
	w.WriteHeader(rec.StatusCode)
	_, _ = w.Write(rec.Body)
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
