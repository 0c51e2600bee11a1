package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"

	cybersource "github.com/paymentlabs/cybersource-go"
)

// signPayload computes the signature a genuine gateway notification carries.
func signPayload(t *testing.T, secretBase64 string, payload []byte) string {
	t.Helper()
	key, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyNotification(t *testing.T) {
	payload := []byte(`{"eventType":"tms.customer.created","payload":{"id":"ABC"}}`)

	t.Run("valid signature", func(t *testing.T) {
		sig := signPayload(t, testSecret, payload)
		if err := VerifyNotification(testSecret, payload, sig); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := signPayload(t, testSecret, payload)
		tampered := []byte(`{"eventType":"tms.customer.created","payload":{"id":"EVIL"}}`)
		if err := VerifyNotification(testSecret, tampered, sig); !errors.Is(err, cybersource.ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		otherSecret := base64.StdEncoding.EncodeToString([]byte("a-different-secret"))
		sig := signPayload(t, otherSecret, payload)
		if err := VerifyNotification(testSecret, payload, sig); !errors.Is(err, cybersource.ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("malformed secret", func(t *testing.T) {
		if err := VerifyNotification("!!not-base64!!", payload, "whatever"); !errors.Is(err, cybersource.ErrMalformedKey) {
			t.Errorf("expected ErrMalformedKey, got %v", err)
		}
	})
}
