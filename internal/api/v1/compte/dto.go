package compte

import (
	"net/http"
	"time"

	"gesbanque-backend/internal/models"
	"gesbanque-backend/internal/services"
	"gesbanque-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ClientRequest struct {
	Titulaire string  `json:"titulaire" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Telephone string  `json:"telephone" binding:"required"`
	Adresse   string  `json:"adresse" binding:"required"`
	NCI       *string `json:"nci" binding:"omitempty,senegal_nci"`
}

type CreateCompteRequest struct {
	Type         string        `json:"type" binding:"required"`
	SoldeInitial float64       `json:"soldeInitial" binding:"required"`
	Devise       string        `json:"devise" binding:"required,len=3"`
	Client       ClientRequest `json:"client" binding:"required"`
}

type ClientInfoRequest struct {
	Telephone *string `json:"telephone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password"`
	NCI       *string `json:"nci"`
}

type UpdateClientInfoRequest struct {
	Titulaire          *string            `json:"titulaire"`
	InformationsClient *ClientInfoRequest `json:"informationsClient"`
}

type PatchCompteRequest struct {
	Type   *string  `json:"type"`
	Solde  *float64 `json:"solde"`
	Statut *string  `json:"statut"`
}

// CompteResponse is the API projection of an account. Archived accounts are
// reported with the synthetic statut "ferme".
type CompteResponse struct {
	ID                  string            `json:"id"`
	NumeroCompte        string            `json:"numeroCompte"`
	Titulaire           string            `json:"titulaire"`
	Type                models.TypeCompte `json:"type"`
	Solde               float64           `json:"solde"`
	Devise              string            `json:"devise"`
	Statut              string            `json:"statut"`
	StatutBlocage       string            `json:"statutBlocage"`
	MotifBlocage        *string           `json:"motifBlocage,omitempty"`
	DateBlocage         *time.Time        `json:"dateBlocage,omitempty"`
	DateDeblocagePrevue *time.Time        `json:"dateDeblocagePrevue,omitempty"`
	DateCreation        time.Time         `json:"dateCreation"`
	DateFermeture       *time.Time        `json:"dateFermeture,omitempty"`
	Metadata            datatypes.JSONMap `json:"metadata"`
}

func ToCompteResponse(c *models.Compte) CompteResponse {
	statut := string(c.Statut)
	if c.DeletedAt != nil {
		statut = string(models.CompteStatutFerme)
	}
	return CompteResponse{
		ID:                  c.ID,
		NumeroCompte:        c.NumeroCompte,
		Titulaire:           c.Titulaire,
		Type:                c.TypeCompte,
		Solde:               c.Solde,
		Devise:              c.Devise,
		Statut:              statut,
		StatutBlocage:       string(c.StatutBlocage),
		MotifBlocage:        c.MotifBlocage,
		DateBlocage:         c.DateBlocage,
		DateDeblocagePrevue: c.DateDeblocagePrevue,
		DateCreation:        c.CreatedAt,
		DateFermeture:       c.DeletedAt,
		Metadata:            c.Metadata,
	}
}

func ToCompteResponses(comptes []models.Compte) []CompteResponse {
	out := make([]CompteResponse, 0, len(comptes))
	for i := range comptes {
		out = append(out, ToCompteResponse(&comptes[i]))
	}
	return out
}

// RespondServiceError maps the service error taxonomy onto HTTP statuses.
func RespondServiceError(c *gin.Context, err error) {
	svcErr, ok := err.(*services.ServiceError)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Erreur interne du serveur"))
		return
	}

	var status int
	switch svcErr.Code {
	case services.ErrCodeValidation, services.ErrCodeBusinessRule:
		status = http.StatusUnprocessableEntity
	case services.ErrCodeNotFound:
		status = http.StatusNotFound
	case services.ErrCodeConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	if svcErr.Details != nil {
		c.JSON(status, utils.NewErrorResponseWithDetails(status, svcErr.Message, svcErr.Details))
		return
	}
	c.JSON(status, utils.NewErrorResponse(status, svcErr.Message))
}
