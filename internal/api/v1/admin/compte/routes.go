package compte

import (
	"gesbanque-backend/internal/middleware"
	"gesbanque-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	comptes := router.Group("/comptes")
	comptes.POST("/:id/bloquer", middleware.RequirePermission(models.PermBlockAccounts), Block)
	comptes.POST("/:id/debloquer", middleware.RequirePermission(models.PermUnblockAccounts), Unblock)
}
