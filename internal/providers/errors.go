package providers

import (
	"errors"
	"fmt"
)

// ProviderError is the single failure shape for a generation call. A non-2xx
// HTTP status sets StatusCode and Body; transport-level failures (connection
// refused, timeout, malformed response) leave StatusCode zero and wrap the
// underlying error.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s request failed with status: %d: %s", e.Provider, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s request failed with status: %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsProviderError reports whether err is a per-provider call failure.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
