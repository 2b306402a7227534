// Package chain holds the transport shared by every provider client.
package chain

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse marks a payload rejected by a response validator.
var ErrInvalidResponse = errors.New("invalid provider response")

// NetworkError is a transport failure: timeout, refused connection, non-2xx status or undecodable body.
type NetworkError struct {
	Provider   string
	Operation  string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Provider, e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err carries a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// Invalid wraps ErrInvalidResponse with the provider and operation that produced it.
func Invalid(provider, operation string) error {
	return fmt.Errorf("%s %s: %w", provider, operation, ErrInvalidResponse)
}
