package compte

import (
	"net/http"

	comptev1 "gesbanque-backend/internal/api/v1/compte"
	"gesbanque-backend/internal/services"
	"gesbanque-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type BlockCompteRequest struct {
	Motif string `json:"motif" binding:"required"`
	Duree int    `json:"duree" binding:"required,min=1"`
	Unite string `json:"unite" binding:"required,oneof=jour jours semaine semaines mois annee annees"`
}

type UnblockCompteRequest struct {
	Motif string `json:"motif" binding:"required"`
}

func Block(c *gin.Context) {
	var req BlockCompteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	compte, err := services.BlockCompte(c.Param("id"), req.Motif, req.Duree, req.Unite)
	if err != nil {
		comptev1.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Compte bloqué avec succès", comptev1.ToCompteResponse(compte)))
}

func Unblock(c *gin.Context) {
	var req UnblockCompteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	compte, err := services.UnblockCompte(c.Param("id"), req.Motif)
	if err != nil {
		comptev1.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Compte débloqué avec succès", comptev1.ToCompteResponse(compte)))
}
