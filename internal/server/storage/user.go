package storage

import (
	"context"
	"time"

	"github.com/iudanet/stockflow/internal/models"
)

// UserStorage хранит учетные записи кладовщиков и согласующих
type UserStorage interface {
	// CreateUser возвращает ErrUserAlreadyExists, если username занят
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername returns ErrUserNotFound for an unknown username
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID returns ErrUserNotFound for an unknown id
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateLastLogin фиксирует время успешного входа
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
