package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/koulibalyamadou10/braprime-partner-sub001/auth"
	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

// ValidateToken parses the bearer token, then resolves the role capability
// descriptor once and stores user_id, role and capabilities in the context.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	userID, _ := claims["user_id"].(string)
	roleClaim, _ := claims["role"].(string)
	role, ok := models.ValidRole(roleClaim)
	if userID == "" || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Set("role", role)
	c.Set("capabilities", auth.CapabilitiesFor(role))

	c.Next()
}

// ActorRole returns the authenticated role stored by ValidateToken.
func ActorRole(c *gin.Context) models.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(models.Role); ok {
			return r
		}
	}
	return ""
}

// ActorCapabilities returns the capability descriptor stored by ValidateToken.
func ActorCapabilities(c *gin.Context) auth.Capabilities {
	if v, ok := c.Get("capabilities"); ok {
		if caps, ok := v.(auth.Capabilities); ok {
			return caps
		}
	}
	return auth.Capabilities{}
}
