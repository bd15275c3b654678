package auth

import (
	"net/http"
	"time"

	"gesbanque-backend/internal/models"
	"gesbanque-backend/internal/services"
	"gesbanque-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID          string              `json:"id"`
	Nom         string              `json:"nom"`
	Prenom      string              `json:"prenom"`
	Email       string              `json:"email"`
	Role        models.Role         `json:"role"`
	Permissions []models.Permission `json:"permissions"`
	Token       string              `json:"token,omitempty"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	token, u, err := services.LoginUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Email ou mot de passe incorrect"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Connexion réussie", UserResponse{
		ID:          u.ID,
		Nom:         u.Nom,
		Prenom:      u.Prenom,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Role.Permissions(),
		Token:       token,
	}))
}

func Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		return
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		// Already invalid, denylist it for the maximum token life anyway.
		if err := services.AddToDenylist(tokenString, time.Hour*72); err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to denylist token"))
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Déconnexion réussie", nil))
		return
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid token expiration"))
		return
	}

	remaining := time.Until(time.Unix(int64(exp), 0))
	if err := services.AddToDenylist(tokenString, remaining); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to denylist token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Déconnexion réussie", nil))
}
