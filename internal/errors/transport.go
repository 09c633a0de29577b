package errors

import (
	stdErrors "errors"
	"fmt"
)

// TransportError represents any failure talking to the upstream catalog:
// network errors, non-2xx responses and undecodable bodies alike.
type TransportError struct {
	Op         string // logical operation, e.g. "search" or "work"
	StatusCode int    // HTTP status when the server answered, 0 otherwise
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: upstream returned HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: upstream returned HTTP %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + ": transport failure"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps err as a TransportError for the given operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// NewStatusError creates a TransportError for an unexpected HTTP status.
func NewStatusError(op string, statusCode int, body string) *TransportError {
	e := &TransportError{Op: op, StatusCode: statusCode}
	if body != "" {
		e.Err = stdErrors.New(body)
	}
	return e
}

// IsTransportError checks if err is a TransportError (even when wrapped).
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return stdErrors.As(err, &transportErr)
}
