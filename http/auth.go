// Package http provides the HTTP client layer for the CyberSource REST API.
// Every outbound request is authenticated by a custom RoundTripper that
// delegates to the signature package; framework adapters for verifying
// inbound webhook notifications live in the gin and chi subpackages.
package http

import (
	"net/http"

	cybersource "github.com/paymentlabs/cybersource-go"
	"github.com/paymentlabs/cybersource-go/signature"
)

// Authenticator stamps authentication headers onto an outbound request.
// body holds the exact bytes the request will transmit, or nil when the
// request has no payload.
//
// Implementations must not retain body or key material beyond the call.
type Authenticator interface {
	Authenticate(req *http.Request, body []byte) error
}

// SignatureAuthenticator authenticates requests with HMAC-SHA256 HTTP
// signatures, the default CyberSource scheme. It is stateless and safe for
// concurrent use.
type SignatureAuthenticator struct {
	// MerchantID, KeyID, and SecretKey are the merchant credentials. The
	// secret is the base64-encoded shared secret.
	MerchantID string
	KeyID      string
	SecretKey  string

	// Signer computes the signature headers. Nil means a system-clock signer.
	Signer *signature.Signer
}

// NewSignatureAuthenticator builds a SignatureAuthenticator from a merchant
// configuration.
func NewSignatureAuthenticator(cfg cybersource.Config) *SignatureAuthenticator {
	return &SignatureAuthenticator{
		MerchantID: cfg.MerchantID,
		KeyID:      cfg.KeyID,
		SecretKey:  cfg.SecretKey,
		Signer:     signature.New(),
	}
}

// Authenticate signs the request and stamps the v-c-merchant-id, v-c-date,
// digest, signature, host, and content-type headers. A signing failure means
// the request must not be sent; the error propagates to the caller unsent.
func (a *SignatureAuthenticator) Authenticate(req *http.Request, body []byte) error {
	signer := a.Signer
	if signer == nil {
		signer = signature.New()
	}

	host := req.Host
	if host == "" {
		host = req.URL.Host
	}

	var payload any
	if len(body) > 0 {
		payload = body
	}

	result, err := signer.Sign(signature.SigningRequest{
		MerchantID: a.MerchantID,
		KeyID:      a.KeyID,
		SecretKey:  a.SecretKey,
		Method:     req.Method,
		Path:       req.URL.RequestURI(),
		Host:       host,
		Body:       payload,
	})
	if err != nil {
		return err
	}

	result.Apply(req.Header)
	return nil
}
