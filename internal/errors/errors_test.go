package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestStopProcessingError(t *testing.T) {
	err := NewStopProcessingError("user quit")

	if err.Error() != "user quit" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "user quit")
	}

	if !IsStopProcessingError(err) {
		t.Fatalf("IsStopProcessingError returned false for StopProcessingError")
	}

	wrapped := stdErrors.Join(err)
	if !IsStopProcessingError(wrapped) {
		t.Fatalf("IsStopProcessingError returned false for wrapped StopProcessingError")
	}
}

func TestTransportError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *TransportError
		want string
	}{
		{
			name: "network error",
			err:  NewTransportError("search", stdErrors.New("connection refused")),
			want: "search: connection refused",
		},
		{
			name: "status with body",
			err:  NewStatusError("work", 404, "not found"),
			want: "work: upstream returned HTTP 404: not found",
		},
		{
			name: "status without body",
			err:  NewStatusError("editions", 503, ""),
			want: "editions: upstream returned HTTP 503",
		},
		{
			name: "empty",
			err:  &TransportError{Op: "search"},
			want: "search: transport failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransportError_Wrapped(t *testing.T) {
	cause := stdErrors.New("unexpected EOF")
	err := fmt.Errorf("fetching detail: %w", NewTransportError("work", cause))

	if !IsTransportError(err) {
		t.Fatalf("IsTransportError returned false for wrapped TransportError")
	}
	if !stdErrors.Is(err, cause) {
		t.Fatalf("errors.Is did not reach the underlying cause")
	}
	if IsTransportError(stdErrors.New("plain")) {
		t.Fatalf("IsTransportError returned true for a plain error")
	}
}
