package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/iudanet/stockflow/internal/server/handlers"
)

// RateLimiter ограничивает частоту запросов по ключу (IP или пользователь).
// Token bucket: rate токенов на окно window, пополнение равномерное.
type RateLimiter struct {
	now     func() time.Time
	buckets map[string]*bucket
	window  time.Duration
	rate    int
	mu      sync.Mutex
}

type bucket struct {
	last   time.Time
	tokens float64
}

// NewRateLimiter создает limiter на rate запросов за window
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		now:     time.Now,
		buckets: make(map[string]*bucket),
		window:  window,
		rate:    rate,
	}
}

// Allow списывает токен для key. Если токенов нет, возвращает false и время
// до появления следующего токена.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	perToken := rl.window / time.Duration(rl.rate)

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(rl.rate), last: now}
		rl.buckets[key] = b
	}

	b.tokens += float64(now.Sub(b.last)) / float64(perToken)
	if b.tokens > float64(rl.rate) {
		b.tokens = float64(rl.rate)
	}
	b.last = now

	if b.tokens < 1 {
		return false, time.Duration((1 - b.tokens) * float64(perToken))
	}
	b.tokens--
	return true, 0
}

// Run периодически удаляет заполненные buckets, пока ctx не отменен
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.prune()
		}
	}
}

func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		// за окно bucket гарантированно пополнился до rate
		if now.Sub(b.last) >= rl.window {
			delete(rl.buckets, key)
		}
	}
}

// RateLimit отвечает 429 с Retry-After, когда limiter исчерпан.
// Ключ: пользователь из контекста, если он уже известен, иначе IP клиента.
// Клиент считает 429 временной ошибкой и оставляет операцию в очереди.
func RateLimit(limiter *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			ok, wait := limiter.Allow(key)
			if !ok {
				logger.WarnContext(r.Context(), "rate limit exceeded",
					slog.String("key", key),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				retryAfter := int(wait.Round(time.Second) / time.Second)
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				handlers.SendError(w, logger, "rate limit exceeded, please try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey возвращает ключ лимита. RemoteAddr уже переписан chi RealIP.
func clientKey(r *http.Request) string {
	if userID, ok := handlers.GetUserID(r.Context()); ok {
		return "user:" + userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
