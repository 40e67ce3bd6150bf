// Package utils holds the outbound HTTP client and PDF text extraction.
package utils

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/resumegenie/backend/logging"
)

// UserAgent identifies this service on outbound requests
const UserAgent = "ResumeGenie/1.0"

// maxRedirects caps redirect chains on outbound calls
const maxRedirects = 10

// NewHTTPClient creates the client used for calls to the AI provider.
// Requests carry the service User-Agent and are logged at debug level.
func NewHTTPClient(timeout time.Duration) *http.Client {
	base := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: UserAgentMiddleware(newLoggingTransport(base, logging.Component("http-client"))),
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// UserAgentMiddleware sets the service User-Agent unless the caller set one
func UserAgentMiddleware(next http.RoundTripper) http.RoundTripper {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get("User-Agent") == "" {
			req = req.Clone(req.Context())
			req.Header.Set("User-Agent", UserAgent)
		}
		return next.RoundTrip(req)
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newLoggingTransport(next http.RoundTripper, logger zerolog.Logger) http.RoundTripper {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(req)

		event := logger.Debug().
			Str("method", req.Method).
			Str("host", req.URL.Host).
			Dur("elapsed", time.Since(start))
		if err != nil {
			event.Err(err).Msg("Outbound request failed")
			return nil, err
		}
		event.Int("status", resp.StatusCode).Msg("Outbound request")
		return resp, nil
	})
}
