package compte

import (
	"gesbanque-backend/internal/middleware"
	"gesbanque-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	comptes := router.Group("/comptes")
	comptes.GET("", Index)
	comptes.POST("", Store)
	comptes.GET("/archived", middleware.RequirePermission(models.PermViewAllAccounts), Archived)
	comptes.GET("/:id", Show)
	comptes.PUT("/:id", Update)
	comptes.PATCH("/:id/client", UpdateClientInfo)
	comptes.DELETE("/:id", Destroy)
	comptes.GET("/:id/transactions", Transactions)
}
