// Package signature implements the HMAC-SHA256 HTTP signature scheme the
// CyberSource REST API requires on every request. It produces the
// v-c-merchant-id, v-c-date, digest, and signature headers from a per-call
// SigningRequest; nothing is cached between calls.
//
// The scheme is a variant of draft HTTP Signatures: a canonical string of
// "name: value" lines is MACed with the base64-decoded shared secret, and the
// signature header echoes which fields were signed. The field named "date" in
// the canonical string travels on the wire as v-c-date; the two names are
// intentionally different and both fixed by the gateway.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Header names produced by the signer, lower-cased per HTTP/2 convention.
// HTTP/1.1 header matching is case-insensitive so these are wire-compatible
// with both.
const (
	HeaderMerchantID  = "v-c-merchant-id"
	HeaderDate        = "v-c-date"
	HeaderDigest      = "digest"
	HeaderSignature   = "signature"
	HeaderHost        = "host"
	HeaderContentType = "content-type"
)

// ContentTypeJSON is the content type sent with every gateway request.
const ContentTypeJSON = "application/json"

// algorithmLabel is the fixed algorithm identifier the gateway expects in
// the signature header.
const algorithmLabel = "HmacSHA256"

// Sentinel errors returned by Sign. Check with errors.Is.
var (
	// ErrMissingField indicates a required SigningRequest field is empty.
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedKey indicates the shared secret is not valid base64.
	ErrMalformedKey = errors.New("malformed shared secret")
)

// SigningRequest is the per-call input to Sign. All fields except Body are
// required. Values are used exactly as supplied: Path is embedded
// byte-for-byte and Host must match the Host header the request will carry.
type SigningRequest struct {
	// MerchantID is the tenant identifier, placed verbatim into the
	// v-c-merchant-id header and into the signed string.
	MerchantID string

	// KeyID identifies which shared secret signed the request. It appears in
	// the signature header's keyid field but is never part of the MACed bytes.
	KeyID string

	// SecretKey is the base64-encoded shared secret. The decoded bytes are
	// the HMAC key; the base64 text itself is never used as key material.
	SecretKey string

	// Method is the HTTP verb. Case-insensitive on input; lower-cased when
	// embedded in the request-target line.
	Method string

	// Path is the request target including any query string, exactly as it
	// will appear on the wire. No escaping or normalization is applied.
	Path string

	// Host is the Host header value for the target, including a non-default
	// port when present.
	Host string

	// Body is the request payload, if any. A []byte or string is hashed
	// verbatim; any other non-nil value is serialized with encoding/json
	// (compact output, struct field order) before hashing. Ignored for verbs
	// that do not carry a body.
	Body any
}

// SigningResult carries the computed authentication headers plus the
// pass-through values needed to assemble the full outbound header set.
type SigningResult struct {
	// Timestamp is the RFC 1123 signing time, sent as v-c-date.
	Timestamp string

	// Digest is the "SHA-256=<base64>" body digest. Empty when the request
	// carried no body or the verb does not carry one.
	Digest string

	// Signature is the structured signature header value.
	Signature string

	// MerchantID, Host, and ContentType are pass-throughs for header assembly.
	MerchantID  string
	Host        string
	ContentType string
}

// Apply stamps the result onto an http.Header. The digest header is only set
// when a digest was computed.
func (r SigningResult) Apply(h http.Header) {
	h.Set(HeaderMerchantID, r.MerchantID)
	h.Set(HeaderDate, r.Timestamp)
	if r.Digest != "" {
		h.Set(HeaderDigest, r.Digest)
	}
	h.Set(HeaderSignature, r.Signature)
	h.Set(HeaderHost, r.Host)
	h.Set(HeaderContentType, r.ContentType)
}

// Signer computes CyberSource HTTP signatures. The zero value is not usable;
// construct with New or NewWithClock.
//
// Signer is stateless apart from its clock and safe for concurrent use.
type Signer struct {
	now func() time.Time
}

// New returns a Signer using the system clock.
func New() *Signer {
	return &Signer{now: time.Now}
}

// NewWithClock returns a Signer reading time from now. Tests use this to pin
// the timestamp; production code should prefer New.
func NewWithClock(now func() time.Time) *Signer {
	return &Signer{now: now}
}

// bodyMethodSet lists the verbs whose payload is hashed into a digest.
// Bodies supplied with any other verb are ignored.
var bodyMethodSet = map[string]struct{}{
	"post":  {},
	"put":   {},
	"patch": {},
}

// Sign transforms a SigningRequest into a SigningResult.
//
// The signed string is built from newline-joined "name: value" lines in a
// fixed order: host, date, request-target, digest (only when a body digest
// was computed), v-c-merchant-id. The signature header's headers list names
// exactly the lines that were MACed, in the same order; the gateway rejects
// any mismatch between the two.
//
// Sign is a pure function of its inputs except for the timestamp. Signing
// errors are not worth retrying: the same input produces the same failure.
func (s *Signer) Sign(req SigningRequest) (SigningResult, error) {
	if err := req.validate(); err != nil {
		return SigningResult{}, err
	}

	method := strings.ToLower(req.Method)
	timestamp := s.now().UTC().Format(http.TimeFormat)

	digest, err := bodyDigest(method, req.Body)
	if err != nil {
		return SigningResult{}, err
	}

	fields := []string{"host", "date", "request-target"}
	lines := []string{
		"host: " + req.Host,
		"date: " + timestamp,
		"request-target: " + method + " " + req.Path,
	}
	if digest != "" {
		fields = append(fields, "digest")
		lines = append(lines, "digest: "+digest)
	}
	fields = append(fields, HeaderMerchantID)
	lines = append(lines, HeaderMerchantID+": "+req.MerchantID)

	// Decode before keying: the raw bytes are the HMAC key, not the base64
	// text. Keying with the text produces signatures the gateway rejects.
	key, err := base64.StdEncoding.DecodeString(req.SecretKey)
	if err != nil {
		return SigningResult{}, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(strings.Join(lines, "\n")))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	header := fmt.Sprintf("keyid=%q, algorithm=%q, headers=%q, signature=%q",
		req.KeyID, algorithmLabel, strings.Join(fields, " "), sig)

	return SigningResult{
		Timestamp:   timestamp,
		Digest:      digest,
		Signature:   header,
		MerchantID:  req.MerchantID,
		Host:        req.Host,
		ContentType: ContentTypeJSON,
	}, nil
}

// validate reports the first empty required field by name.
func (r SigningRequest) validate() error {
	switch {
	case r.MerchantID == "":
		return fmt.Errorf("%w: merchant id", ErrMissingField)
	case r.KeyID == "":
		return fmt.Errorf("%w: key id", ErrMissingField)
	case r.SecretKey == "":
		return fmt.Errorf("%w: secret key", ErrMissingField)
	case r.Method == "":
		return fmt.Errorf("%w: method", ErrMissingField)
	case r.Path == "":
		return fmt.Errorf("%w: path", ErrMissingField)
	case r.Host == "":
		return fmt.Errorf("%w: host", ErrMissingField)
	}
	return nil
}

// bodyDigest computes the "SHA-256=<base64>" digest of the body for
// body-carrying verbs, or "" when no digest applies. method must already be
// lower-cased.
func bodyDigest(method string, body any) (string, error) {
	if body == nil {
		return "", nil
	}
	if _, ok := bodyMethodSet[method]; !ok {
		return "", nil
	}
	payload, err := serializeBody(body)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:]), nil
}

// serializeBody converts the body to the exact bytes the digest covers.
// Strings and byte slices pass through verbatim. Structured values use
// encoding/json: compact output, struct fields in declaration order, map keys
// sorted. This convention is fixed; changing it breaks verification against
// the gateway.
func serializeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case json.RawMessage:
		return v, nil
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("serialize body: %w", err)
		}
		return payload, nil
	}
}
