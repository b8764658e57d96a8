package api

import (
	"errors"
	"fmt"
)

// Kind partitions dispatcher failures by what the caller may do about them.
type Kind string

const (
	// KindNetwork covers transport failures: connection errors, timeouts,
	// unreadable responses. The session is never touched; the user may retry.
	KindNetwork Kind = "NETWORK"

	// KindUnauthorized covers session invalidation, signalled either by an
	// HTTP 401 or by the reserved token-invalid business code.
	KindUnauthorized Kind = "UNAUTHORIZED"

	// KindBusiness covers domain rejections (insufficient funds, wrong
	// password, duplicate resource). Surfaced verbatim, never auto-retried.
	KindBusiness Kind = "BUSINESS"
)

// Error is the classified failure value of every dispatched call.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (%d): %s: %v", e.Kind, e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, cause: cause}
}

// NewUnauthorizedError marks a session-invalidation failure.
func NewUnauthorizedError(code int, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

// NewBusinessError carries a gateway rejection through to the caller.
func NewBusinessError(code int, message string) *Error {
	return &Error{Kind: KindBusiness, Code: code, Message: message}
}

// AsError extracts a classified *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a session-invalidation failure.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindUnauthorized
}

// IsNetwork reports whether err is a transport-level failure. A transfer
// execution that fails this way has an ambiguous outcome and must be
// resubmitted with the same idempotency key.
func IsNetwork(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindNetwork
}
