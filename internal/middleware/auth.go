package middleware

import (
	"strings"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/service"
	"patient-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the access token; Authorization: Bearer is also accepted
const TokenHeader = "x-access-token"

// TokenFromRequest extracts the access token from the request headers
func TokenFromRequest(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(TokenHeader)); token != "" {
		return token
	}

	// Check Bearer prefix
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware validates the access token and its session
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)

		claims, err := authService.Validate(c.Request.Context(), token)
		if err != nil {
			utils.ErrorResponse(c, apperror.Status(err), apperror.PublicMessage(err))
			c.Abort()
			return
		}

		// Inject claims into context
		c.Set("userID", claims.UserID)
		c.Set("groupID", claims.GroupID)
		c.Set("tokenID", claims.ID)

		c.Next()
	}
}
