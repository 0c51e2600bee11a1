package cybersource

import (
	"fmt"
	"time"
)

// AuthType selects the authentication scheme used for outbound requests.
type AuthType string

const (
	// AuthTypeHTTPSignature authenticates requests with HMAC-SHA256 HTTP
	// signatures. Requires KeyID and SecretKey.
	AuthTypeHTTPSignature AuthType = "http_signature"

	// AuthTypeJWT authenticates requests with RS256 bearer tokens.
	// Requires KeyID and PrivateKeyPEM.
	AuthTypeJWT AuthType = "jwt"
)

// DefaultTimeout is the HTTP client timeout applied when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config holds the merchant credentials and connection settings for the
// CyberSource API client.
//
// Example:
//
//	cfg := cybersource.Config{
//	    MerchantID:  "my_merchant",
//	    KeyID:       "08c94330-f618-42a3-b09d-e1e43be5efda",
//	    SecretKey:   "DRgl8dnQ2qzSzFnV+2adhmO7RsSW12Vi7TBqzOSbAMI=",
//	    Environment: cybersource.EnvironmentSandbox,
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
type Config struct {
	// MerchantID is the CyberSource merchant identifier. It is transmitted in
	// the v-c-merchant-id header and included in the signed request string.
	MerchantID string

	// KeyID identifies the API key used to sign requests. It appears in the
	// signature header's keyid field (HTTP signature) or the JWT kid header.
	KeyID string

	// SecretKey is the base64-encoded shared secret for HTTP signature
	// authentication. The decoded bytes are the HMAC key.
	SecretKey string

	// PrivateKeyPEM is the PEM-encoded RSA private key for JWT authentication.
	// Only consulted when AuthType is AuthTypeJWT.
	PrivateKeyPEM string

	// Environment selects the deployment target. Defaults to sandbox.
	Environment Environment

	// AuthType selects the authentication scheme. Defaults to HTTP signature.
	AuthType AuthType

	// Timeout overrides the HTTP client timeout. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Validate checks that the configuration carries everything the selected
// authentication scheme needs. It reports the first missing field by name.
func (c Config) Validate() error {
	if c.MerchantID == "" {
		return fmt.Errorf("%w: MerchantID", ErrMissingCredential)
	}
	if c.KeyID == "" {
		return fmt.Errorf("%w: KeyID", ErrMissingCredential)
	}
	switch c.authType() {
	case AuthTypeHTTPSignature:
		if c.SecretKey == "" {
			return fmt.Errorf("%w: SecretKey", ErrMissingCredential)
		}
	case AuthTypeJWT:
		if c.PrivateKeyPEM == "" {
			return fmt.Errorf("%w: PrivateKeyPEM", ErrMissingCredential)
		}
	default:
		return fmt.Errorf("unsupported auth type: %q", c.AuthType)
	}
	if _, err := LookupEnvironment(c.environment()); err != nil {
		return err
	}
	return nil
}

// Host resolves the API hostname for the configured environment.
func (c Config) Host() (string, error) {
	env, err := LookupEnvironment(c.environment())
	if err != nil {
		return "", err
	}
	return env.Host, nil
}

// HTTPTimeout returns the effective HTTP client timeout.
func (c Config) HTTPTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

func (c Config) environment() Environment {
	if c.Environment == "" {
		return EnvironmentSandbox
	}
	return c.Environment
}

func (c Config) authType() AuthType {
	if c.AuthType == "" {
		return AuthTypeHTTPSignature
	}
	return c.AuthType
}
