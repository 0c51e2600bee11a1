package cybersource

import (
	"errors"
	"fmt"
	"time"

	"github.com/paymentlabs/cybersource-go/retry"
)

// Sentinel errors returned by the SDK. Wrap-aware: check with errors.Is.
var (
	// ErrMissingCredential indicates a required credential field is empty.
	ErrMissingCredential = errors.New("missing credential")

	// ErrMalformedKey indicates the shared secret is not valid base64.
	ErrMalformedKey = errors.New("malformed shared secret")

	// ErrInvalidSignature indicates a webhook notification failed
	// signature verification.
	ErrInvalidSignature = errors.New("invalid signature")
)

// Error type constants for programmatic classification of GatewayError.
const (
	// ErrorTypeRateLimit indicates the request was rate-limited (HTTP 429).
	ErrorTypeRateLimit = "rate_limit"

	// ErrorTypeServerError indicates a gateway-side failure (HTTP 5xx).
	// Typically transient; safe to retry with backoff.
	ErrorTypeServerError = "server_error"

	// ErrorTypeAuthError indicates rejected credentials or signature (HTTP 401/403).
	// Not retryable.
	ErrorTypeAuthError = "auth_error"

	// ErrorTypeClientError indicates an invalid request (other HTTP 4xx).
	// Not retryable.
	ErrorTypeClientError = "client_error"
)

// GatewayError represents a structured error response from the CyberSource API.
// It implements the error interface and carries enough context for log
// correlation and retry decisions.
type GatewayError struct {
	// StatusCode is the HTTP status code returned by the gateway.
	StatusCode int

	// ErrorType categorizes the failure: rate_limit, server_error,
	// auth_error, or client_error.
	ErrorType string

	// Reason is the machine-readable reason code from the response body
	// (e.g. "INVALID_DATA", "MISSING_FIELD"). Empty if the body carried none.
	Reason string

	// Message is the human-readable description from the response body.
	Message string

	// CorrelationID is the v-c-correlation-id echoed by the gateway, for
	// support tickets and log correlation.
	CorrelationID string

	// Retryable indicates whether the operation may succeed on retry.
	Retryable bool

	// RetryAfter is the backoff hint parsed from the Retry-After header on
	// 429 responses. Zero when the error is not retryable.
	RetryAfter time.Duration

	// Method and Path identify the failed request for debugging.
	Method string
	Path   string
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("cybersource api error [%d]", e.StatusCode)
	if e.Reason != "" {
		msg += fmt.Sprintf(" %s", e.Reason)
	}
	if e.Message != "" {
		msg += fmt.Sprintf(": %s", e.Message)
	}
	if e.Method != "" && e.Path != "" {
		msg += fmt.Sprintf(" [%s %s]", e.Method, e.Path)
	}
	if e.CorrelationID != "" {
		msg += fmt.Sprintf(" (correlation id %s)", e.CorrelationID)
	}
	return msg
}

// ClassifyStatus maps an HTTP status code to an error type and retryability.
// Retryability is decided by retry.RetryableStatus, so 501 Not Implemented is
// a server_error that is not retried.
func ClassifyStatus(status int) (errorType string, retryable bool) {
	switch {
	case status == 429:
		return ErrorTypeRateLimit, retry.RetryableStatus(status)
	case status >= 500:
		return ErrorTypeServerError, retry.RetryableStatus(status)
	case status == 401 || status == 403:
		return ErrorTypeAuthError, false
	default:
		return ErrorTypeClientError, false
	}
}
