package http

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"net/http"
	"time"

	"gopkg.in/square/go-jose.v2"
	"gopkg.in/square/go-jose.v2/jwt"

	cybersource "github.com/paymentlabs/cybersource-go"
	"github.com/paymentlabs/cybersource-go/signature"
)

// JWTAuthenticator authenticates requests with RS256 bearer tokens, the
// alternative scheme the gateway accepts alongside HTTP signatures. The
// parsed private key is cached at construction; the authenticator is
// immutable afterwards and safe for concurrent use.
type JWTAuthenticator struct {
	merchantID string
	keyID      string
	privateKey *rsa.PrivateKey
}

// tokenClaims is the claim set the gateway expects in a bearer token. The
// body digest binds the token to the exact payload transmitted.
type tokenClaims struct {
	*jwt.Claims

	// Digest is the base64 SHA-256 of the request body, empty for bodyless
	// requests.
	Digest string `json:"digest,omitempty"`

	// DigestAlgorithm names the digest hash. Fixed to SHA-256.
	DigestAlgorithm string `json:"digestAlgorithm,omitempty"`

	// MerchantID identifies the tenant the token authenticates.
	MerchantID string `json:"v-c-merchant-id"`
}

// NewJWTAuthenticator parses the PEM-encoded RSA private key and returns a
// ready authenticator. PKCS#1 and PKCS#8 encodings are both accepted.
func NewJWTAuthenticator(cfg cybersource.Config) (*JWTAuthenticator, error) {
	if cfg.MerchantID == "" {
		return nil, fmt.Errorf("%w: MerchantID", cybersource.ErrMissingCredential)
	}
	if cfg.KeyID == "" {
		return nil, fmt.Errorf("%w: KeyID", cybersource.ErrMissingCredential)
	}

	block, _ := pem.Decode([]byte(cfg.PrivateKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("decode private key: invalid PEM")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		parsed, pkcs8Err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if pkcs8Err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("parse private key: not an RSA key")
		}
		key = rsaKey
	}

	return &JWTAuthenticator{
		merchantID: cfg.MerchantID,
		keyID:      cfg.KeyID,
		privateKey: key,
	}, nil
}

// Authenticate generates a bearer token bound to the request and stamps the
// Authorization, v-c-merchant-id, host, and content-type headers.
func (a *JWTAuthenticator) Authenticate(req *http.Request, body []byte) error {
	sig, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.RS256, Key: a.privateKey},
		(&jose.SignerOptions{}).WithType("JWT").WithHeader("kid", a.keyID),
	)
	if err != nil {
		return fmt.Errorf("create JWT signer: %w", err)
	}

	now := time.Now()
	claims := &tokenClaims{
		Claims: &jwt.Claims{
			Issuer:   a.merchantID,
			IssuedAt: jwt.NewNumericDate(now),
			Expiry:   jwt.NewNumericDate(now.Add(2 * time.Minute)),
		},
		MerchantID: a.merchantID,
	}
	if len(body) > 0 {
		sum := sha256.Sum256(body)
		claims.Digest = base64.StdEncoding.EncodeToString(sum[:])
		claims.DigestAlgorithm = "SHA-256"
	}

	token, err := jwt.Signed(sig).Claims(claims).CompactSerialize()
	if err != nil {
		return fmt.Errorf("serialize JWT: %w", err)
	}

	host := req.Host
	if host == "" {
		host = req.URL.Host
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(signature.HeaderMerchantID, a.merchantID)
	req.Header.Set(signature.HeaderHost, host)
	req.Header.Set(signature.HeaderContentType, signature.ContentTypeJSON)
	return nil
}
