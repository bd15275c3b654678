package services

import (
	"testing"

	"gesbanque-backend/internal/database"
	"gesbanque-backend/internal/models"
	"gesbanque-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, email, password string, role models.Role) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := models.User{
		ID:         uuid.New().String(),
		Nom:        "Diallo",
		Prenom:     "Mamadou",
		Email:      email,
		Telephone:  "+221771234567",
		MotDePasse: string(hashed),
		Role:       role,
		Statut:     models.UserStatutActif,
	}
	assert.NoError(t, database.DB.Create(&user).Error)
	return user
}

func TestLoginUser(t *testing.T) {
	setupTestDB()
	t.Setenv("JWT_SECRET", "test-secret")

	seeded := seedUser(t, "admin@gesbanque.sn", "motdepasse123", models.RoleAdmin)

	token, user, err := LoginUser("admin@gesbanque.sn", "motdepasse123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, seeded.ID, user.ID)

	claims, err := utils.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, seeded.ID, claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginUserWrongPassword(t *testing.T) {
	setupTestDB()
	t.Setenv("JWT_SECRET", "test-secret")

	seedUser(t, "admin@gesbanque.sn", "motdepasse123", models.RoleAdmin)

	_, _, err := LoginUser("admin@gesbanque.sn", "mauvais")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserUnknownEmail(t *testing.T) {
	setupTestDB()
	t.Setenv("JWT_SECRET", "test-secret")

	_, _, err := LoginUser("inconnu@gesbanque.sn", "motdepasse123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFindUserByID(t *testing.T) {
	setupTestDB()

	seeded := seedUser(t, "client@gesbanque.sn", "motdepasse123", models.RoleClient)

	found, err := FindUserByID(seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, seeded.Email, found.Email)

	_, err = FindUserByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
