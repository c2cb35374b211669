package errors

// Helpers for mapping upstream HTTP responses to project ErrorCode and retry semantics

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
)

// CodeForStatus maps an upstream HTTP status to an ErrorCode
// 2xx has no error code and reports ErrorCodeUnknown with ok false
func CodeForStatus(status int) (ErrorCode, bool) {
	switch {
	case status >= 200 && status < 300:
		return ErrorCodeUnknown, false
	case status == http.StatusNotFound:
		return ErrorCodeNotFound, true
	case status == http.StatusTooManyRequests:
		return ErrorCodeTooManyRequests, true
	case status == http.StatusUnauthorized:
		return ErrorCodeUnauthorized, true
	case status == http.StatusForbidden:
		return ErrorCodeForbidden, true
	case status == http.StatusRequestTimeout,
		status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable,
		status == http.StatusGatewayTimeout:
		return ErrorCodeUnavailable, true
	default:
		return ErrorCodeUpstream, true
	}
}

// FromStatusf builds an error for an upstream status with a formatted message
// returns nil for 2xx
func FromStatusf(status int, format string, a ...any) error {
	code, ok := CodeForStatus(status)
	if !ok {
		return nil
	}
	return Newf(code, "%s (status %d)", fmt.Sprintf(format, a...), status)
}

// IsRetryableStatus reports whether an upstream status is worth another attempt
func IsRetryableStatus(status int) bool {
	code, ok := CodeForStatus(status)
	return ok && (code == ErrorCodeUnavailable || code == ErrorCodeTooManyRequests)
}

// IsRetryable reports whether an error represents a transient upstream condition
// local cancellations and deadlines are never retryable; callers decide higher-level retries
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	default:
		return false
	}
}
