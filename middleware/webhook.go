package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// webhookSignature computes the hex HMAC-SHA256 of the raw callback body
// under the shared gateway secret.
func webhookSignature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidateWebhookSignature verifies the gateway signature on callback
// requests, skips the check in sandbox/dev mode.
func ValidateWebhookSignature() gin.HandlerFunc {
	secret := os.Getenv("PAY_WEBHOOK_SECRET")
	if secret == "" {
		panic("PAY_WEBHOOK_SECRET is not set")
	}

	mode := strings.ToLower(os.Getenv("PAY_MODE"))

	return func(c *gin.Context) {
		if mode == "sandbox" || mode == "dev" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-Webhook-Signature")
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing webhook signature"})
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body for signature verification"})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		calculated := webhookSignature(secret, body)
		if !hmac.Equal([]byte(calculated), []byte(strings.ToLower(provided))) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
