package radar

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs full request/response dumps for troubleshooting API
// communication: unexpected statuses, malformed version parameters, header
// problems flagged by the operator.
//
// Enable it with WithDebugLogging(true) or by setting RADAR_DEBUG=true or
// DEBUG=true in the environment. Dumps include headers and complete bodies,
// so keep it away from production log pipelines.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled from
// the environment, so New can install the debug transport without a code
// change.
//
// Returns true if RADAR_DEBUG or DEBUG is set to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("RADAR_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
