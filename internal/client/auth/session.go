package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stockflow/internal/client/storage"
)

var (
	// ErrNotAuthenticated returned when no session is stored
	ErrNotAuthenticated = errors.New("not authenticated: run 'stockflow login' first")
	// ErrSessionExpired returned when the stored access token has expired
	ErrSessionExpired = errors.New("session expired: run 'stockflow login' again")
)

// Session is the per-process handle to the current user session.
// Создается один раз при старте и передается явно во все компоненты,
// которым нужен токен (API клиент, очередь, сервис данных).
type Session struct {
	store storage.AuthStorage
	now   func() time.Time
}

// NewSession creates a session reader over the auth storage
func NewSession(store storage.AuthStorage) *Session {
	return &Session{store: store, now: time.Now}
}

// Current returns the stored session data
func (s *Session) Current(ctx context.Context) (*storage.AuthData, error) {
	data, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return data, nil
}

// Token returns the access token of a valid session.
// Реализует api.TokenSource.
func (s *Session) Token(ctx context.Context) (string, error) {
	data, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	if data.ExpiresAt > 0 && !s.now().Before(time.Unix(data.ExpiresAt, 0)) {
		return "", ErrSessionExpired
	}
	return data.AccessToken, nil
}
