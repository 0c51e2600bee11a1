// Package gin provides Gin-compatible middleware for verifying CyberSource
// webhook notifications. This package is a thin adapter that translates
// gin.Context to stdlib http patterns and delegates signature verification
// to the http package.
package gin

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	cshttp "github.com/paymentlabs/cybersource-go/http"
)

// NewWebhookMiddleware creates a Gin middleware that verifies the
// v-c-signature header on inbound gateway notifications against the shared
// secret. Requests with a missing or invalid signature are rejected with
// 401 and the handler chain is aborted; verified requests proceed with the
// body still readable by the handler.
//
// Example usage:
//
//	r := gin.Default()
//	r.POST("/webhooks/cybersource",
//	    csgin.NewWebhookMiddleware(secretKey),
//	    handleNotification,
//	)
func NewWebhookMiddleware(secretBase64 string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		sig := c.GetHeader(cshttp.HeaderWebhookSignature)
		if sig == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing signature"})
			return
		}

		if err := cshttp.VerifyNotification(secretBase64, body, sig); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}

		c.Next()
	}
}
