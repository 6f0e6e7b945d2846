package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koulibalyamadou10/braprime-partner-sub001/auth"
)

// RequireCapability gates a route group on a single capability flag from the
// descriptor resolved in ValidateToken.
func RequireCapability(allowed func(auth.Capabilities) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(ActorCapabilities(c)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
