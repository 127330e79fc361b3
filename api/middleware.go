package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Swamy718/Expense-Tracker-backend/logging"
)

// usernameKey holds the authenticated username in the gin context.
const usernameKey = logging.FieldUsername

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the token subject under usernameKey.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			unauthorized(c, msgNotAuthenticated)
			return
		}

		username, err := h.auth.Authenticate(strings.TrimSpace(token))
		if err != nil {
			unauthorized(c, msgInvalidToken)
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}
