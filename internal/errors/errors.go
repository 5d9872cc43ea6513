// Package errors provides domain error kinds and user-message wrapping
// for the classroom finder. Callers discriminate failures with errors.Is
// instead of matching on rendered text.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure kinds the system distinguishes.
// Use errors.Is() to check these errors in your code.
var (
	// ErrConfigMissing indicates required configuration (e.g. a geocoding
	// API key) is absent; no network attempt was made.
	ErrConfigMissing = errors.New("required configuration missing")

	// ErrUpstreamFailure indicates the backend inventory service or the
	// distance provider returned a non-OK status, a transport error, or a
	// malformed response.
	ErrUpstreamFailure = errors.New("upstream request failed")

	// ErrEmptyResult indicates a query completed but matched nothing.
	// Not a fault; callers render a "relax your constraints" message.
	ErrEmptyResult = errors.New("no results")

	// ErrInvalidInput indicates caller-supplied input failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// WrappedError carries both internal error details and the user-facing
// message rendered at the agent boundary.
type WrappedError struct {
	Module      string // Module name (e.g. "rank", "contacts", "classroom")
	Operation   string // Operation being performed (e.g. "distance_matrix")
	Cause       error  // Underlying error
	UserMessage string // Renderable message
}

func (e *WrappedError) Error() string {
	return fmt.Sprintf("[%s:%s] %s: %v", e.Module, e.Operation, e.UserMessage, e.Cause)
}

func (e *WrappedError) Unwrap() error {
	return e.Cause
}

// Wrapper provides context-aware error wrapping for a module/operation pair.
type Wrapper struct {
	module    string
	operation string
}

// NewWrapper creates an error wrapper with module and operation context.
func NewWrapper(module, operation string) *Wrapper {
	return &Wrapper{module: module, operation: operation}
}

// Wrap wraps an error with a user-facing message.
// Returns nil if err is nil.
func (w *Wrapper) Wrap(err error, userMessage string) error {
	if err == nil {
		return nil
	}
	return &WrappedError{
		Module:      w.module,
		Operation:   w.operation,
		Cause:       err,
		UserMessage: userMessage,
	}
}

// Wrapf wraps an error with a formatted user-facing message.
func (w *Wrapper) Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &WrappedError{
		Module:      w.module,
		Operation:   w.operation,
		Cause:       err,
		UserMessage: fmt.Sprintf(format, args...),
	}
}

// GetUserMessage returns the user-facing message for err.
// Falls back to the error string when err is not a WrappedError.
func GetUserMessage(err error) string {
	if err == nil {
		return ""
	}
	var wrapped *WrappedError
	if errors.As(err, &wrapped) {
		return wrapped.UserMessage
	}
	return err.Error()
}
