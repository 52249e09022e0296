package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a generation failure.
type ErrorKind string

const (
	// KindUnavailable means the backend errored or could not be reached.
	KindUnavailable ErrorKind = "unavailable"
	// KindEmptyOutput means the backend returned no usable text.
	KindEmptyOutput ErrorKind = "empty_output"
	// KindCanceled means the request context was canceled or timed out.
	KindCanceled ErrorKind = "canceled"
)

// Error is a generation failure with an explicit kind that callers can
// inspect to decide how to report it.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("llm %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a generation failure of the given kind.
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// AsError extracts the typed generation failure from an error chain.
func AsError(err error) (*Error, bool) {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}

// IsKind reports whether err is a generation failure of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	genErr, ok := AsError(err)
	return ok && genErr.Kind == kind
}
