package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockflow/internal/models"
	"github.com/iudanet/stockflow/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		wantError error
		user      *models.User
		name      string
	}{
		{
			name: "create new user successfully",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "storekeeper",
				PasswordHash: "$argon2id$hash1",
				CreatedAt:    time.Now(),
			},
		},
		{
			name: "create user with last login",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "approver",
				PasswordHash: "$argon2id$hash2",
				CreatedAt:    time.Now(),
				LastLogin:    timePtr(time.Now()),
			},
		},
		{
			name: "duplicate username",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "storekeeper",
				PasswordHash: "$argon2id$hash3",
				CreatedAt:    time.Now(),
			},
			wantError: storage.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateUser(ctx, tt.user)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, err := s.GetUserByUsername(ctx, tt.user.Username)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, got.ID)
			assert.Equal(t, tt.user.PasswordHash, got.PasswordHash)
			assert.Equal(t, tt.user.LastLogin != nil, got.LastLogin != nil)
		})
	}
}

func TestUserStorage_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	loginAt := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)

	require.NoError(t, s.UpdateLastLogin(ctx, userID, loginAt))

	user, err := s.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.True(t, loginAt.Equal(*user.LastLogin))

	assert.ErrorIs(t, s.UpdateLastLogin(ctx, "missing", loginAt), storage.ErrUserNotFound)
}
