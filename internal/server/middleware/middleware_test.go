package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/server/handlers"
)

// bufferLogger возвращает logger, пишущий в буфер, для проверки логов
func bufferLogger(level slog.Level) (*slog.Logger, *strings.Builder) {
	var buf strings.Builder
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{Secret: []byte("test-secret"), AccessTokenTTL: 15 * time.Minute}
}

func statusHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func mustToken(t *testing.T, userID string) string {
	t.Helper()

	token, _, err := handlers.GenerateAccessToken(testJWTConfig(), userID, "user", time.Now())
	require.NoError(t, err)
	return token
}
