package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsTransient reports whether err is worth retrying later: the server was
// unreachable, timed out, or answered 5xx / 429 / 408.
// 4xx ответы (кроме 408 и 429) означают, что повтор того же запроса не поможет.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode >= http.StatusInternalServerError:
			return true
		case statusErr.StatusCode == http.StatusTooManyRequests,
			statusErr.StatusCode == http.StatusRequestTimeout:
			return true
		default:
			return false
		}
	}

	// Отмена вызывающим не сетевая проблема
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// IsStatus reports whether err carries the given HTTP status
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
