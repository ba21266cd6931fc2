package types

import "fmt"

// APIError is the single error kind produced for a failed API request:
// connection failures, timeouts, non-2xx statuses, and response bodies that
// are not valid JSON. StatusCode is zero when no response was received.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("radar: %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("radar: %s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// Unwrap exposes the underlying transport or decode error, if any.
func (e *APIError) Unwrap() error { return e.Err }
