package adapter

// Functional options applied by New. Options must be deterministic and
// side-effect free; transport-related options layer beneath the resty client.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures an Adapter during construction in New.
type Option func(*Adapter) error

// WithHTTPTimeout bounds the total time spent on a single HTTP request,
// including connection, TLS handshake and reading the response. Prefer
// per-request context deadlines where possible; this is a coarse safety net.
func WithHTTPTimeout(d time.Duration) Option {
	return func(a *Adapter) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		a.rest.SetTimeout(d)
		return nil
	}
}

// WithBasicAuth sends the given credentials with every request.
func WithBasicAuth(username, password string) Option {
	return func(a *Adapter) error {
		if username == "" {
			return fmt.Errorf("basic auth username cannot be empty")
		}
		a.rest.SetBasicAuth(username, password)
		return nil
	}
}

// WithLogger routes the adapter's diagnostics to the given logger.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Adapter) error {
		a.log = log
		return nil
	}
}

// WithDebugLogging wraps the underlying transport so each request/response
// is dumped to the log when enabled is true. Not intended for production:
// dumps include headers and full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(a *Adapter) error {
		if enabled {
			base := a.rest.GetClient().Transport
			if base == nil {
				base = http.DefaultTransport
			}
			a.rest.GetClient().Transport = &debugTransport{base: base}
		}
		return nil
	}
}

// WithTransport replaces the underlying HTTP transport. Used by tests to
// inject failures without a listener.
func WithTransport(rt http.RoundTripper) Option {
	return func(a *Adapter) error {
		a.rest.GetClient().Transport = rt
		return nil
	}
}
