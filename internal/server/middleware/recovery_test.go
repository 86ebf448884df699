package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/pkg/api"
)

func TestRecovery(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		panics  bool
	}{
		{
			name:    "no panic",
			handler: statusHandler(http.StatusOK, "ok"),
		},
		{
			name:    "panic with string",
			handler: func(http.ResponseWriter, *http.Request) { panic("nil map write") },
			panics:  true,
		},
		{
			name: "panic with error",
			handler: func(http.ResponseWriter, *http.Request) {
				var m map[string]int
				m["x"]++
			},
			panics: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logBuf := bufferLogger(slog.LevelError)

			w := httptest.NewRecorder()
			require.NotPanics(t, func() {
				Recovery(logger)(tt.handler).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/movements", nil))
			})

			if !tt.panics {
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Empty(t, logBuf.String())
				return
			}

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "internal server error", resp.Message)
			assert.Contains(t, logBuf.String(), "panic recovered")
			assert.Contains(t, logBuf.String(), "stack=")
		})
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	h := Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
