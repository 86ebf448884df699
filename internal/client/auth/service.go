package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/stockflow/internal/client/api"
	"github.com/iudanet/stockflow/internal/client/storage"
	"github.com/iudanet/stockflow/internal/validation"
	pkgapi "github.com/iudanet/stockflow/pkg/api"
)

// AuthService implements Service
type AuthService struct {
	apiClient api.ClientAPI
	store     storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
	serverURL string
}

var _ Service = (*AuthService)(nil)

// NewAuthService создает новый сервис авторизации
func NewAuthService(apiClient api.ClientAPI, store storage.AuthStorage, serverURL string, logger *slog.Logger) *AuthService {
	return &AuthService{
		apiClient: apiClient,
		store:     store,
		serverURL: serverURL,
		logger:    logger,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя
func (s *AuthService) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.InfoContext(ctx, "User registered", "username", username, "user_id", resp.UserID)

	return &RegisterResult{UserID: resp.UserID, Username: username}, nil
}

// Login выполняет аутентификацию и сохраняет сессию локально
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: password cannot be empty")
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt := s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	if err := s.store.SaveAuth(ctx, &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ServerURL:   s.serverURL,
		ExpiresAt:   expiresAt.Unix(),
	}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.InfoContext(ctx, "User logged in", "username", username, "expires_at", expiresAt)

	return &LoginResult{UserID: resp.UserID, Username: username, ExpiresAt: expiresAt}, nil
}

// Logout удаляет локальную сессию. Очередь операций не трогается:
// после повторного входа накопленные операции будут отправлены.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

// Status возвращает состояние текущей сессии
func (s *AuthService) Status(ctx context.Context) (*Status, error) {
	data, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return &Status{}, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	expiresAt := time.Unix(data.ExpiresAt, 0)
	return &Status{
		Authenticated: true,
		Username:      data.Username,
		UserID:        data.UserID,
		ServerURL:     data.ServerURL,
		ExpiresAt:     expiresAt,
		Expired:       !s.now().Before(expiresAt),
	}, nil
}
