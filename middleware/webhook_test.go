package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWebhookSignature(t *testing.T) {
	// HMAC-SHA256 test vector from RFC 4231, case 2.
	got := webhookSignature("Jefe", []byte("what do ya want for nothing?"))
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)

	// Tampering with the body changes the signature.
	assert.NotEqual(t,
		webhookSignature("secret", []byte(`{"status":"paid"}`)),
		webhookSignature("secret", []byte(`{"status":"failed"}`)))
}

func webhookTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/callback", ValidateWebhookSignature(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestValidateWebhookSignature(t *testing.T) {
	t.Setenv("PAY_WEBHOOK_SECRET", "test-secret")
	t.Setenv("PAY_MODE", "live")

	r := webhookTestRouter(t)
	body := `{"ref":"abc","status":"paid","order_ref":"20250601120000-x"}`

	t.Run("valid signature passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
		req.Header.Set("X-Webhook-Signature", webhookSignature("test-secret", []byte(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong signature rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
		req.Header.Set("X-Webhook-Signature", webhookSignature("wrong-secret", []byte(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/callback",
			strings.NewReader(strings.Replace(body, "paid", "failed", 1)))
		req.Header.Set("X-Webhook-Signature", webhookSignature("test-secret", []byte(body)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestValidateWebhookSignatureSandboxSkips(t *testing.T) {
	t.Setenv("PAY_WEBHOOK_SECRET", "test-secret")
	t.Setenv("PAY_MODE", "sandbox")

	r := webhookTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
