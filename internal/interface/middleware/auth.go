package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dimasprs/skycast-api/pkg/helpers"
	"github.com/dimasprs/skycast-api/pkg/response"
)

// CtxUserIDKey is the Gin context key the auth gate stores the caller's id under.
const CtxUserIDKey = "userID"

// Auth validates the Authorization header ("Bearer <token>") and injects the
// token's user id into the Gin context. The header must be exactly two
// space-separated parts with the Bearer scheme; anything else is rejected
// before the handler runs. Pure gate: no side effects beyond context injection.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "No token provided")
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.AbortMessage(c, http.StatusUnauthorized, "Invalid token format")
			return
		}
		userID, err := jwt.Verify(parts[1])
		if err != nil {
			response.AbortMessage(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}
