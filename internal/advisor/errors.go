package advisor

import (
	"errors"
	"fmt"
)

// Provider-path failures. All of these route into the fallback policy and
// never surface to HTTP callers as failures.
var (
	// ErrMissingAPIKey means no Gemini credential is configured at all.
	ErrMissingAPIKey = errors.New("gemini API key not configured")

	// ErrMalformedResponse means the model's text failed shape validation.
	ErrMalformedResponse = errors.New("model response failed shape validation")

	// ErrQuotaExceeded means the provider signaled rate/quota limiting.
	ErrQuotaExceeded = errors.New("provider quota exceeded")
)

// AggregationError marks malformed transaction input. Unlike provider
// failures it is surfaced to the caller as a client error, never masked.
type AggregationError struct {
	Reason string
}

func (e *AggregationError) Error() string {
	return "aggregation: " + e.Reason
}

func aggregationErrorf(format string, args ...any) error {
	return &AggregationError{Reason: fmt.Sprintf(format, args...)}
}
