package auth

import (
	"context"
	"time"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations.
// Сессия (токен, пользователь, срок действия) хранится локально через storage.AuthStorage.
type Service interface {
	// Register регистрирует нового пользователя на сервере
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout удаляет локальную сессию
	// Returns ErrNotAuthenticated if there is no session
	Logout(ctx context.Context) error

	// Status возвращает состояние текущей сессии
	Status(ctx context.Context) (*Status, error)
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string
	Username string
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	ExpiresAt time.Time
	UserID    string
	Username  string
}

// Status описывает текущую сессию
type Status struct {
	ExpiresAt     time.Time
	Username      string
	UserID        string
	ServerURL     string
	Authenticated bool
	Expired       bool
}
