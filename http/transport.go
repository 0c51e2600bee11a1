package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderCorrelationID carries the per-request identifier echoed back by the
// gateway, used for log correlation and support tickets.
const HeaderCorrelationID = "v-c-correlation-id"

// SigningTransport is an http.RoundTripper that authenticates every outbound
// request before delegating to a base transport. It buffers the request body
// so the authenticator can digest the exact bytes transmitted, and stamps a
// fresh correlation id unless the caller already set one.
type SigningTransport struct {
	// Base is the underlying RoundTripper (typically http.DefaultTransport).
	Base http.RoundTripper

	// Authenticator stamps the authentication headers.
	Authenticator Authenticator

	// Logger receives a debug entry per signed request. Nil disables logging.
	Logger *zap.Logger
}

// RoundTrip implements http.RoundTripper. A failed authentication aborts the
// round trip: an unsigned or missigned request would only waste a round trip
// before the gateway rejects it.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// Clone before stamping headers. The caller's URL and headers stay
	// untouched; the body is consumed here and replayed on the clone, per
	// the usual RoundTripper ownership rules.
	signed := req.Clone(req.Context())

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		signed.Body = io.NopCloser(bytes.NewReader(body))
		signed.ContentLength = int64(len(body))
	}

	if signed.Header.Get(HeaderCorrelationID) == "" {
		signed.Header.Set(HeaderCorrelationID, uuid.NewString())
	}

	if err := t.Authenticator.Authenticate(signed, body); err != nil {
		return nil, err
	}

	if t.Logger != nil {
		t.Logger.Debug("signed outbound request",
			zap.String("method", signed.Method),
			zap.String("path", signed.URL.RequestURI()),
			zap.String("correlation_id", signed.Header.Get(HeaderCorrelationID)),
			zap.Bool("has_digest", signed.Header.Get("digest") != ""),
		)
	}

	return base.RoundTrip(signed)
}
