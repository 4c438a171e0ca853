package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leoskitchen/backend/internal/types"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// Auth validates the bearer token and stores the session in the request
// context. Requests without a valid token are rejected.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("session", types.Session{UserID: claims.UserID, Username: claims.Username})
		c.Next()
	}
}

// SessionFrom returns the authenticated session stored by Auth, or a zero
// session when the request is anonymous.
func SessionFrom(c *gin.Context) types.Session {
	if v, ok := c.Get("session"); ok {
		if s, ok := v.(types.Session); ok {
			return s
		}
	}
	return types.Session{}
}
