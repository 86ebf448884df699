package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/crypto"
	"github.com/iudanet/stockflow/internal/models"
	"github.com/iudanet/stockflow/internal/server/storage"
	"github.com/iudanet/stockflow/pkg/api"
)

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users           map[string]*models.User // username -> User
	createError     error
	getUserError    error
	updateLastLogin func(ctx context.Context, userID string, loginTime time.Time) error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, userID string, loginTime time.Time) error {
	if m.updateLastLogin != nil {
		return m.updateLastLogin(ctx, userID, loginTime)
	}
	return nil
}

func postJSON(t *testing.T, path string, body any) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	userStorage := newMockUserStorage()
	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := httptest.NewRecorder()
	handler.Register(w, postJSON(t, "/api/v1/auth/register", api.RegisterRequest{
		Username: "storekeeper",
		Password: "correct-horse",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.RegisterResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response.UserID)

	user, err := userStorage.GetUserByUsername(context.Background(), "storekeeper")
	require.NoError(t, err)
	assert.Equal(t, response.UserID, user.ID)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	require.NoError(t, crypto.VerifyPassword("correct-horse", user.PasswordHash))
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testJWTConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "invalid request body", decodeError(t, w).Message)
}

func TestAuthHandler_Register_InvalidInput(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testJWTConfig())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "correct-horse"},
		{"too short", "ab", "correct-horse"},
		{"invalid chars", "user@name", "correct-horse"},
		{"spaces", "user name", "correct-horse"},
		{"short password", "storekeeper", "short"},
		{"empty password", "storekeeper", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Register(w, postJSON(t, "/api/v1/auth/register", api.RegisterRequest{
				Username: tt.username,
				Password: tt.password,
			}))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	userStorage := newMockUserStorage()
	userStorage.users["existing"] = &models.User{ID: "user1", Username: "existing"}
	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := httptest.NewRecorder()
	handler.Register(w, postJSON(t, "/api/v1/auth/register", api.RegisterRequest{
		Username: "existing",
		Password: "correct-horse",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_StorageError(t *testing.T) {
	userStorage := newMockUserStorage()
	userStorage.createError = errors.New("disk full")
	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := httptest.NewRecorder()
	handler.Register(w, postJSON(t, "/api/v1/auth/register", api.RegisterRequest{
		Username: "storekeeper",
		Password: "correct-horse",
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk full")
}

func registeredUser(t *testing.T, userStorage *mockUserStorage, username, password string) *models.User {
	t.Helper()

	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{ID: "user-" + username, Username: username, PasswordHash: hash}
	userStorage.users[username] = user
	return user
}

func TestAuthHandler_Login_Success(t *testing.T) {
	userStorage := newMockUserStorage()
	user := registeredUser(t, userStorage, "storekeeper", "correct-horse")

	var lastLogin string
	userStorage.updateLastLogin = func(_ context.Context, userID string, _ time.Time) error {
		lastLogin = userID
		return nil
	}

	cfg := testJWTConfig()
	handler := NewAuthHandler(setupTestLogger(), userStorage, cfg)

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/api/v1/auth/login", api.LoginRequest{
		Username: "storekeeper",
		Password: "correct-horse",
	}))

	require.Equal(t, http.StatusOK, w.Code)

	var response api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, user.ID, response.UserID)
	assert.Equal(t, int64(15*60), response.ExpiresIn)
	assert.Equal(t, user.ID, lastLogin)

	claims, err := ValidateAccessToken(cfg, response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "storekeeper", claims.Username)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	userStorage := newMockUserStorage()
	registeredUser(t, userStorage, "storekeeper", "correct-horse")
	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	tests := []struct {
		name       string
		req        api.LoginRequest
		wantStatus int
	}{
		{"wrong password", api.LoginRequest{Username: "storekeeper", Password: "wrong-horse"}, http.StatusUnauthorized},
		{"unknown user", api.LoginRequest{Username: "nobody", Password: "correct-horse"}, http.StatusUnauthorized},
		{"missing password", api.LoginRequest{Username: "storekeeper"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Login(w, postJSON(t, "/api/v1/auth/login", tt.req))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login_LastLoginErrorIgnored(t *testing.T) {
	userStorage := newMockUserStorage()
	registeredUser(t, userStorage, "storekeeper", "correct-horse")
	userStorage.updateLastLogin = func(context.Context, string, time.Time) error {
		return errors.New("locked")
	}
	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/api/v1/auth/login", api.LoginRequest{
		Username: "storekeeper",
		Password: "correct-horse",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
}
