package errors

// transport level classification for remote dataset sources

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// StatusError is a non 2xx response from a remote source
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// FromStatus wraps a bad http status as a source error
// 404 and 410 stay permanent, 429 and 5xx become retryable
func FromStatus(url string, status int) error {
	se := &StatusError{URL: url, StatusCode: status}
	switch {
	case status == http.StatusTooManyRequests:
		return Wrap(se, ErrorCodeTooManyRequests, "source throttled")
	case status >= 500:
		return Wrap(se, ErrorCodeUnavailable, "source unavailable")
	default:
		return Wrap(se, ErrorCodeSource, "source rejected request")
	}
}

// IsTransient reports whether err looks like a condition that can clear on retry
// local cancellation never counts; the caller owns that decision
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) {
		return false
	}

	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	}

	var se *StatusError
	if stderrs.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}

	var ne net.Error
	if stderrs.As(err, &ne) && ne.Timeout() {
		return true
	}
	if stderrs.Is(err, context.DeadlineExceeded) {
		return true
	}

	s := strings.ToLower(Root(err).Error())
	switch {
	case strings.Contains(s, "connection reset by peer"),
		strings.Contains(s, "connection refused"),
		strings.Contains(s, "unexpected eof"),
		strings.Contains(s, "tls handshake timeout"):
		return true
	default:
		return false
	}
}
