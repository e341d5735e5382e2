package adapter

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each HTTP request/response pair for troubleshooting
// API communication problems (malformed requests, unexpected responses,
// auth failures). Dumps include full bodies, so enable it only in
// development environments.
//
// Activation: set ESADMIN_DEBUG=true or DEBUG=true.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested reports whether HTTP debug logging should be on.
// ESADMIN_DEBUG targets this client specifically; DEBUG is the broader
// development flag. Both must be exactly "true".
func debugLoggingRequested() bool {
	return os.Getenv("ESADMIN_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
