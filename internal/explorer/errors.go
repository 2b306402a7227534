package explorer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

// ErrUnavailable matches every UnavailableError.
var ErrUnavailable = errors.New("explorer unavailable")

// UnavailableError is returned once every provider of an operation failed.
// Failures holds one cause per attempted or skipped provider, in order.
type UnavailableError struct {
	Network   model.Network
	Operation string
	Failures  []error
}

func (e *UnavailableError) Error() string {
	if len(e.Failures) == 0 {
		return fmt.Sprintf("%s %s: no providers configured", e.Network, e.Operation)
	}
	causes := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		causes = append(causes, f.Error())
	}
	return fmt.Sprintf("%s %s: all %d providers failed: %s", e.Network, e.Operation, len(e.Failures), strings.Join(causes, "; "))
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *UnavailableError) Unwrap() []error {
	return e.Failures
}

// ProviderError attributes an attempt failure to a provider.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
