package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthmate/healthmate-backend/internal/auth"
	"github.com/healthmate/healthmate-backend/internal/common"
)

type AuthMiddleware struct {
	tokens *auth.TokenManager
	logger *slog.Logger
}

func NewAuthMiddleware(tokens *auth.TokenManager, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// RequireAuth resolves the session token, cookie first then bearer header,
// and stores the verified user id on the request.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Please log in to access this resource",
			})
			return
		}
		userID, err := am.tokens.Verify(token)
		if err != nil {
			am.logger.Debug("auth.token_rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}
		c.Request = c.Request.WithContext(common.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}

// currentUserID reads the id RequireAuth put on the request context. Nil
// means the route was wired without the middleware, which is a routing bug.
func currentUserID(c *gin.Context) uuid.UUID {
	return common.UserIDFromContext(c.Request.Context())
}
