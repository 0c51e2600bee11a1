// Package chi provides Chi-compatible middleware for verifying CyberSource
// webhook notifications. This package is a thin adapter over the stdlib
// http.Handler interface and delegates signature verification to the http
// package; it composes with chi.Router.Use like any standard middleware.
package chi

import (
	"bytes"
	"io"
	"net/http"

	cshttp "github.com/paymentlabs/cybersource-go/http"
)

// NewWebhookMiddleware creates a Chi-compatible middleware that verifies the
// v-c-signature header on inbound gateway notifications against the shared
// secret. Requests with a missing or invalid signature are rejected with 401;
// verified requests proceed with the body still readable by the handler.
//
// Example usage:
//
//	r := chi.NewRouter()
//	r.With(cschi.NewWebhookMiddleware(secretKey)).
//	    Post("/webhooks/cybersource", handleNotification)
func NewWebhookMiddleware(secretBase64 string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "unreadable body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			sig := r.Header.Get(cshttp.HeaderWebhookSignature)
			if sig == "" {
				http.Error(w, "missing signature", http.StatusUnauthorized)
				return
			}

			if err := cshttp.VerifyNotification(secretBase64, body, sig); err != nil {
				http.Error(w, "invalid signature", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
