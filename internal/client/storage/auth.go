package storage

import (
	"context"
)

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage defines interface for storing the client session
type AuthStorage interface {
	// SaveAuth stores session data, replacing the previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored session data
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored session data (logout)
	// Returns ErrAuthNotFound if no session exists
	DeleteAuth(ctx context.Context) error
}

// AuthData represents the session of the logged in user
type AuthData struct {
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ServerURL   string `json:"server_url"` // сервер, выдавший токен
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}
