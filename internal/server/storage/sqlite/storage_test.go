package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	// in-memory database для тестов
	storage, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}
	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	t.Helper()

	userID := uuid.New().String()
	user := &models.User{
		ID:           userID,
		Username:     "testuser_" + userID[:8],
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))
	return userID
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNew_FileDatabaseReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	userID := createTestUser(t, ctx, s)
	require.NoError(t, s.Close())

	// повторное открытие не должно заново применять миграции
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	user, err := s.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NoError(t, s.Ping(ctx))
}
