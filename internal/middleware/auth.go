package middleware

import (
	"net/http"
	"strings"

	"jobboard/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth and read by handlers.
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity in the request context. Missing, malformed and invalid
// tokens are all answered the same way.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header format must be Bearer {token}"})
			return
		}

		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose role differs from the required one. It
// runs after RequireAuth and never looks at the target resource, so the
// answer is the same whether or not the resource exists.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by RequireAuth.
func UserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserID)
	id, _ := v.(uint)
	return id
}
