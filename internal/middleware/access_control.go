package middleware

import (
	"net/http"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccessControlMiddleware rejects requests from users lacking a permission
// before they reach the handler
type AccessControlMiddleware struct {
	checker *permission.Checker
}

func NewAccessControlMiddleware(checker *permission.Checker) *AccessControlMiddleware {
	return &AccessControlMiddleware{checker: checker}
}

// RequirePermission verifies the authenticated user holds name.
// It must run after AuthMiddleware.
func (m *AccessControlMiddleware) RequirePermission(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		if userID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		actor := permission.NewActor(userID)
		if err := m.checker.Require(c.Request.Context(), actor, name, "user is not allowed to perform this operation"); err != nil {
			utils.ErrorResponse(c, apperror.Status(err), apperror.PublicMessage(err))
			c.Abort()
			return
		}

		c.Next()
	}
}
