package compte

import (
	"net/http"
	"strconv"

	"gesbanque-backend/internal/services"
	"gesbanque-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func filterFromQuery(c *gin.Context) (services.CompteFilter, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, utils.NewErrorResponse(http.StatusUnprocessableEntity, "Le numéro de page doit être un entier."))
		return services.CompteFilter{}, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, utils.NewErrorResponse(http.StatusUnprocessableEntity, "La limite doit être un entier."))
		return services.CompteFilter{}, false
	}

	return services.CompteFilter{
		Type:     c.Query("type"),
		Statut:   c.Query("statut"),
		Search:   c.Query("search"),
		ClientID: c.Query("client_id"),
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
		Page:     page,
		Limit:    limit,
	}, true
}

func Index(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	comptes, total, err := services.FindComptes(filter)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	meta := utils.NewPagination(c.Request.URL.Path, filter.Page, filter.Limit, total)
	c.JSON(http.StatusOK, utils.NewPagedResponse("Liste des comptes", ToCompteResponses(comptes), meta))
}

func Archived(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	comptes, total, err := services.FindArchivedComptes(filter)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	meta := utils.NewPagination(c.Request.URL.Path, filter.Page, filter.Limit, total)
	c.JSON(http.StatusOK, utils.NewPagedResponse("Liste des comptes archivés", ToCompteResponses(comptes), meta))
}

func Store(c *gin.Context) {
	var req CreateCompteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	compte, err := services.CreateCompte(services.CreateCompteInput{
		Type:         req.Type,
		SoldeInitial: req.SoldeInitial,
		Devise:       req.Devise,
		Client: services.ClientInput{
			Titulaire: req.Client.Titulaire,
			Email:     req.Client.Email,
			Telephone: req.Client.Telephone,
			Adresse:   req.Client.Adresse,
			NCI:       req.Client.NCI,
		},
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	resp := utils.NewSuccessResponse("Compte créé avec succès", ToCompteResponse(compte))
	resp.Status = http.StatusCreated
	c.JSON(http.StatusCreated, resp)
}

func Show(c *gin.Context) {
	compte, err := services.FindCompteByID(c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Détails du compte", ToCompteResponse(compte)))
}

func Update(c *gin.Context) {
	var req PatchCompteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	compte, err := services.PatchCompte(c.Param("id"), services.PatchCompteInput{
		Type:   req.Type,
		Solde:  req.Solde,
		Statut: req.Statut,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Compte mis à jour avec succès", ToCompteResponse(compte)))
}

func UpdateClientInfo(c *gin.Context) {
	var req UpdateClientInfoRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	input := services.UpdateCompteInput{Titulaire: req.Titulaire}
	if req.InformationsClient != nil {
		input.InformationsClient = &services.ClientInfoPatch{
			Telephone: req.InformationsClient.Telephone,
			Email:     req.InformationsClient.Email,
			Password:  req.InformationsClient.Password,
			NCI:       req.InformationsClient.NCI,
		}
	}

	compte, err := services.UpdateCompte(c.Param("id"), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Informations du compte mises à jour avec succès", ToCompteResponse(compte)))
}

func Destroy(c *gin.Context) {
	compte, err := services.DeleteCompte(c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Compte archivé avec succès", ToCompteResponse(compte)))
}

func Transactions(c *gin.Context) {
	transactions, err := services.FindCompteTransactions(c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions du compte", transactions))
}
