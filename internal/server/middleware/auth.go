package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/iudanet/stockflow/internal/server/handlers"
)

// Auth проверяет Bearer токен и кладет пользователя в контекст запроса.
// Ошибки возвращаются в формате api.ErrorResponse, чтобы клиент мог их разобрать.
func Auth(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
			switch {
			case scheme == "":
				logger.WarnContext(ctx, "missing Authorization header", slog.String("path", r.URL.Path))
				handlers.SendError(w, logger, "missing token", http.StatusUnauthorized)
				return
			case !found || !strings.EqualFold(scheme, "Bearer") || token == "":
				logger.WarnContext(ctx, "invalid Authorization header format", slog.String("path", r.URL.Path))
				handlers.SendError(w, logger, "invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, token)
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				handlers.SendError(w, logger, "invalid token", http.StatusUnauthorized)
				return
			}

			reportUser(ctx, claims.UserID)
			trace.SpanFromContext(ctx).SetAttributes(attribute.String("enduser.id", claims.UserID))
			logger.DebugContext(ctx, "user authenticated",
				slog.String("user_id", claims.UserID),
				slog.String("username", claims.Username))

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(ctx, claims.UserID, claims.Username)))
		})
	}
}
