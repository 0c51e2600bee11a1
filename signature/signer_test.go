package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"
)

const (
	testMerchantID = "test_merchant_123"
	testKeyID      = "test-api-key-uuid"
	testSecret     = "dGVzdC1zaGFyZWQtc2VjcmV0" // base64("test-shared-secret")
	testHost       = "apitest.example.com"
)

// fixedClock pins the signer to a known instant so signatures are
// reproducible across test runs.
func fixedClock() func() time.Time {
	at := time.Date(2025, time.October, 23, 12, 34, 56, 0, time.UTC)
	return func() time.Time { return at }
}

func baseRequest() SigningRequest {
	return SigningRequest{
		MerchantID: testMerchantID,
		KeyID:      testKeyID,
		SecretKey:  testSecret,
		Method:     "GET",
		Path:       "/tms/v2/customers",
		Host:       testHost,
	}
}

// sigField extracts one quoted field from the structured signature header.
func sigField(t *testing.T, header, name string) string {
	t.Helper()
	for _, part := range strings.Split(header, ", ") {
		if strings.HasPrefix(part, name+"=") {
			return strings.Trim(strings.TrimPrefix(part, name+"="), `"`)
		}
	}
	t.Fatalf("field %q not found in signature header %q", name, header)
	return ""
}

func TestSign_EndToEnd(t *testing.T) {
	signer := NewWithClock(fixedClock())

	result, err := signer.Sign(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Digest != "" {
		t.Errorf("expected no digest for GET, got %q", result.Digest)
	}
	if got := sigField(t, result.Signature, "keyid"); got != testKeyID {
		t.Errorf("expected keyid %q, got %q", testKeyID, got)
	}
	if got := sigField(t, result.Signature, "algorithm"); got != "HmacSHA256" {
		t.Errorf("expected algorithm HmacSHA256, got %q", got)
	}
	if got := sigField(t, result.Signature, "headers"); got != "host date request-target v-c-merchant-id" {
		t.Errorf("unexpected signed-field list: %q", got)
	}
	if result.MerchantID != testMerchantID {
		t.Errorf("expected merchant id pass-through, got %q", result.MerchantID)
	}
	if result.Host != testHost {
		t.Errorf("expected host pass-through, got %q", result.Host)
	}
	if result.ContentType != "application/json" {
		t.Errorf("expected content type application/json, got %q", result.ContentType)
	}
}

func TestSign_SignatureMatchesCanonicalString(t *testing.T) {
	// Recompute the MAC from the documented canonical string and check the
	// header carries exactly that value.
	signer := NewWithClock(fixedClock())

	result, err := signer.Sign(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	canonical := strings.Join([]string{
		"host: " + testHost,
		"date: " + result.Timestamp,
		"request-target: get /tms/v2/customers",
		"v-c-merchant-id: " + testMerchantID,
	}, "\n")

	key, err := base64.StdEncoding.DecodeString(testSecret)
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(canonical))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if got := sigField(t, result.Signature, "signature"); got != want {
		t.Errorf("signature mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestSign_DeterministicWithinSameInstant(t *testing.T) {
	signer := NewWithClock(fixedClock())

	first, err := signer.Sign(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := signer.Sign(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Signature != second.Signature {
		t.Errorf("identical inputs at the same instant produced different signatures:\n%s\n%s",
			first.Signature, second.Signature)
	}
}

func TestSign_DigestPresenceByMethod(t *testing.T) {
	tests := []struct {
		method     string
		body       any
		wantDigest bool
	}{
		{"GET", nil, false},
		{"DELETE", nil, false},
		{"GET", `{"ignored":true}`, false}, // body on a non-body verb is ignored
		{"DELETE", `{"ignored":true}`, false},
		{"POST", `{"test":"data"}`, true},
		{"PUT", `{"test":"data"}`, true},
		{"PATCH", `{"test":"data"}`, true},
		{"POST", nil, false}, // body verb but no body supplied
	}

	signer := NewWithClock(fixedClock())
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_body=%v", tt.method, tt.body != nil), func(t *testing.T) {
			req := baseRequest()
			req.Method = tt.method
			req.Body = tt.body

			result, err := signer.Sign(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			headers := sigField(t, result.Signature, "headers")
			if tt.wantDigest {
				if result.Digest == "" {
					t.Error("expected digest, got none")
				}
				if headers != "host date request-target digest v-c-merchant-id" {
					t.Errorf("unexpected signed-field list: %q", headers)
				}
			} else {
				if result.Digest != "" {
					t.Errorf("expected no digest, got %q", result.Digest)
				}
				if headers != "host date request-target v-c-merchant-id" {
					t.Errorf("unexpected signed-field list: %q", headers)
				}
			}
		})
	}
}

func TestSign_DigestValue(t *testing.T) {
	// Reference value computed independently:
	// base64(sha256(`{"test":"data"}`)).
	const want = "SHA-256=4dfEnzoE4ewaWxUOxoBByQPNdf2lKqEjn9WGQ57xFUs="

	signer := NewWithClock(fixedClock())
	req := baseRequest()
	req.Method = "POST"
	req.Body = `{"test":"data"}`

	result, err := signer.Sign(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Digest != want {
		t.Errorf("digest mismatch:\n got %s\nwant %s", result.Digest, want)
	}
}

func TestSign_StructuredBodyMatchesStringBody(t *testing.T) {
	signer := NewWithClock(fixedClock())

	asString := baseRequest()
	asString.Method = "POST"
	asString.Body = `{"test":"data"}`

	asStruct := baseRequest()
	asStruct.Method = "POST"
	asStruct.Body = struct {
		Test string `json:"test"`
	}{Test: "data"}

	first, err := signer.Sign(asString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := signer.Sign(asStruct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Digest != second.Digest {
		t.Errorf("compact JSON serialization should match the string form:\n got %s\nwant %s",
			second.Digest, first.Digest)
	}
}

func TestSign_Sensitivity(t *testing.T) {
	signer := NewWithClock(fixedClock())
	rng := rand.New(rand.NewSource(42))

	base, err := signer.Sign(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	baseSig := sigField(t, base.Signature, "signature")

	randSuffix := func() string {
		return fmt.Sprintf("%08x", rng.Uint32())
	}

	mutations := []func(*SigningRequest){
		func(r *SigningRequest) { r.Path = "/tms/v2/customers/" + randSuffix() },
		func(r *SigningRequest) { r.MerchantID = "merchant_" + randSuffix() },
		func(r *SigningRequest) { r.Host = randSuffix() + ".example.com" },
		func(r *SigningRequest) { r.Method = "DELETE" },
	}

	for i := 0; i < 100; i++ {
		req := baseRequest()
		mutations[i%len(mutations)](&req)

		result, err := signer.Sign(req)
		if err != nil {
			t.Fatalf("mutation %d: unexpected error: %v", i, err)
		}
		if got := sigField(t, result.Signature, "signature"); got == baseSig {
			t.Fatalf("mutation %d produced a colliding signature", i)
		}
	}
}

func TestSign_BodyChangesSignature(t *testing.T) {
	signer := NewWithClock(fixedClock())

	req := baseRequest()
	req.Method = "POST"
	req.Body = `{"amount":"100.00"}`
	first, err := signer.Sign(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.Body = `{"amount":"100.01"}`
	second, err := signer.Sign(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sigField(t, first.Signature, "signature") == sigField(t, second.Signature, "signature") {
		t.Error("changing the body did not change the signature")
	}
}

func TestSign_TimestampFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z]{3}, \d{2} [A-Za-z]{3} \d{4} \d{2}:\d{2}:\d{2} GMT$`)

	signer := New()
	result, err := signer.Sign(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pattern.MatchString(result.Timestamp) {
		t.Errorf("timestamp %q does not match RFC 1123 GMT format", result.Timestamp)
	}
}

func TestSign_MethodCaseInsensitive(t *testing.T) {
	signer := NewWithClock(fixedClock())

	lower := baseRequest()
	lower.Method = "get"
	upper := baseRequest()
	upper.Method = "GET"

	first, err := signer.Sign(lower)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := signer.Sign(upper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Signature != second.Signature {
		t.Error("method case changed the signature")
	}
}

func TestSign_DecodedKeyNotBase64Text(t *testing.T) {
	// Regression guard: the HMAC key must be the decoded secret bytes. Keying
	// with the base64 text yields a different, unverifiable signature.
	signer := NewWithClock(fixedClock())

	result, err := signer.Sign(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	canonical := strings.Join([]string{
		"host: " + testHost,
		"date: " + result.Timestamp,
		"request-target: get /tms/v2/customers",
		"v-c-merchant-id: " + testMerchantID,
	}, "\n")

	mac := hmac.New(sha256.New, []byte(testSecret)) // base64 text as key: wrong
	mac.Write([]byte(canonical))
	textKeyed := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if sigField(t, result.Signature, "signature") == textKeyed {
		t.Error("signature was keyed with the base64 text instead of the decoded bytes")
	}
}

func TestSign_MalformedSecret(t *testing.T) {
	signer := New()
	req := baseRequest()
	req.SecretKey = "not!!valid@@base64"

	_, err := signer.Sign(req)
	if err == nil {
		t.Fatal("expected error for malformed secret, got nil")
	}
	if !errors.Is(err, ErrMalformedKey) {
		t.Errorf("expected ErrMalformedKey, got %v", err)
	}
}

func TestSign_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SigningRequest)
		want   string
	}{
		{"merchant id", func(r *SigningRequest) { r.MerchantID = "" }, "merchant id"},
		{"key id", func(r *SigningRequest) { r.KeyID = "" }, "key id"},
		{"secret key", func(r *SigningRequest) { r.SecretKey = "" }, "secret key"},
		{"method", func(r *SigningRequest) { r.Method = "" }, "method"},
		{"path", func(r *SigningRequest) { r.Path = "" }, "path"},
		{"host", func(r *SigningRequest) { r.Host = "" }, "host"},
	}

	signer := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			_, err := signer.Sign(req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name the missing field %q", err, tt.want)
			}
		})
	}
}

func TestSigningResult_Apply(t *testing.T) {
	signer := NewWithClock(fixedClock())
	req := baseRequest()
	req.Method = "POST"
	req.Body = `{"test":"data"}`

	result, err := signer.Sign(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	headers := make(map[string][]string)
	result.Apply(headers)

	for _, name := range []string{"V-C-Merchant-Id", "V-C-Date", "Digest", "Signature", "Host", "Content-Type"} {
		if len(headers[name]) == 0 {
			t.Errorf("header %s not set", name)
		}
	}
	if got := headers["Content-Type"][0]; got != "application/json" {
		t.Errorf("expected content-type application/json, got %q", got)
	}
}
