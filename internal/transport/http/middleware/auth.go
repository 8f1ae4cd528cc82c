package middleware

import (
	"net/http"
	"strings"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/gin-gonic/gin"
)

const errUnauthenticated = "Unauthenticated"

// Auth validates a Bearer token and stores the authenticated identity
// ("userID", "username") in the gin context for downstream handlers.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"kind": "unauthenticated", "error": errUnauthenticated})
			return
		}

		identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			// Malformed, expired and badly signed tokens all read the
			// same from outside.
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"kind": "unauthenticated", "error": errUnauthenticated})
			return
		}

		c.Set("userID", identity.UserID)
		c.Set("username", identity.Username)
		c.Next()
	}
}
