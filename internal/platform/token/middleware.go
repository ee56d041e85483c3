package token

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID is the gin context key holding the verified user handle.
	ContextUserID = "userID"
	// ContextClaims is the gin context key holding the full verified claims.
	ContextClaims = "claims"
)

// AuthRequired returns a Gin middleware function that verifies the bearer
// token signature and expiry, and restricts access to authenticated users only.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Load secret key from environment variable
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "server misconfigured"})
			return
		}

		// 3. Verify signature and expiry
		claims, err := Verify(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		// 4. Expose verified identity to handlers
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)

		// 5. Pass control to the next handler
		c.Next()
	}
}
