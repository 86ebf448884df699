package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time  `json:"created_at"`           // время создания
	LastLogin    *time.Time `json:"last_login,omitempty"` // время последнего входа
	ID           string     `json:"id"`                   // UUID пользователя
	Username     string     `json:"username"`             // уникальный username
	PasswordHash string     `json:"-"`                    // argon2id хеш пароля в PHC-формате
}

// IdempotencyRecord хранит ответ на мутирующий запрос с Idempotency-Key,
// чтобы повтор операции из офлайн-очереди не применялся дважды
type IdempotencyRecord struct {
	CreatedAt   time.Time
	Key         string
	UserID      string
	Method      string
	Path        string
	RequestHash string // SHA256 тела исходного запроса
	Body        []byte
	StatusCode  int
}
