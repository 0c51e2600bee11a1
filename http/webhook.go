package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	cybersource "github.com/paymentlabs/cybersource-go"
)

// HeaderWebhookSignature carries the HMAC signature on inbound gateway
// notifications.
const HeaderWebhookSignature = "v-c-signature"

// VerifyNotification checks an inbound webhook payload against its
// signature header: base64(HMAC-SHA256(payload)) keyed with the decoded
// shared secret. Comparison is constant-time.
//
// Returns nil when the signature matches, cybersource.ErrInvalidSignature
// when it does not, and cybersource.ErrMalformedKey when the secret is not
// valid base64.
func VerifyNotification(secretBase64 string, payload []byte, signatureHeader string) error {
	key, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		return fmt.Errorf("%w: %v", cybersource.ErrMalformedKey, err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signatureHeader)) {
		return cybersource.ErrInvalidSignature
	}
	return nil
}
