package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// statusRecorder запоминает статус и размер ответа; при capture копирует и тело
type statusRecorder struct {
	http.ResponseWriter
	body        *bytes.Buffer
	status      int
	written     int64
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter, capture bool) *statusRecorder {
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	if capture {
		rec.body = &bytes.Buffer{}
	}
	return rec
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.written += int64(n)
	if rec.body != nil {
		rec.body.Write(b[:n])
	}
	return n, err
}

// Unwrap нужен http.ResponseController
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// Logging логирует каждый запрос: метод, маршрут, статус, длительность, размер ответа.
// Заголовки и тела не логируются, в них токены и пароли.
// Пути из skipPaths (health checks) не логируются.
func Logging(logger *slog.Logger, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := newStatusRecorder(w, false)
			// Auth стоит глубже по цепочке и сообщает пользователя через sink
			var userID string
			next.ServeHTTP(rec, r.WithContext(withUserSink(r.Context(), &userID)))

			level := slog.LevelInfo
			switch {
			case rec.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case rec.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("request_id", chimw.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status", rec.status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.Int64("bytes_written", rec.written),
			}
			if userID != "" {
				attrs = append(attrs, slog.String("user_id", userID))
			}
			if key := r.Header.Get(idempotencyKeyHeader); key != "" {
				attrs = append(attrs, slog.String("idempotency_key", key))
			}
			logger.LogAttrs(r.Context(), level, "HTTP request", attrs...)
		})
	}
}

type userSinkKey struct{}

func withUserSink(ctx context.Context, sink *string) context.Context {
	return context.WithValue(ctx, userSinkKey{}, sink)
}

// reportUser сообщает Logging, какой пользователь выполнил запрос
func reportUser(ctx context.Context, userID string) {
	if sink, ok := ctx.Value(userSinkKey{}).(*string); ok {
		*sink = userID
	}
}
