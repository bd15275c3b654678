package middleware

import (
	"net/http"

	"gesbanque-backend/internal/models"
	"gesbanque-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequirePermission checks the authenticated user's role against the
// permission table. It must run after AuthMiddleware.
func RequirePermission(perm models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Authentication required"))
			c.Abort()
			return
		}

		user, ok := value.(models.User)
		if !ok {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
			c.Abort()
			return
		}

		if !user.Role.Can(perm) {
			zap.L().Warn("permission refusée",
				zap.String("user_id", user.ID),
				zap.String("role", string(user.Role)),
				zap.String("permission", string(perm)))
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Vous n'avez pas la permission d'effectuer cette action."))
			c.Abort()
			return
		}

		c.Next()
	}
}
