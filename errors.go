package radar

import (
	"errors"
	"net/http"

	"github.com/CheckFirstHQ/RADAR-API-client/internal/types"
)

// APIError is the uniform error the SDK returns for any failed API request:
// connection failures, timeouts, non-2xx statuses, and undecodable response
// bodies. It supports errors.As and unwraps to the underlying cause.
type APIError = types.APIError

// IsAPIError reports whether err is (or wraps) an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNotFound reports whether err is an *APIError carrying HTTP 404, which
// the service returns for unknown IDs and unknown framework versions.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
