package services

import (
	"errors"
	"strings"

	"gesbanque-backend/internal/models"
	"gesbanque-backend/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ClientInput is the validated client payload of an account-opening request.
type ClientInput struct {
	Titulaire string
	Email     string
	Telephone string
	Adresse   string
	NCI       *string
}

// pendingWelcome holds the credentials generated for a brand-new client so the
// welcome notification can be dispatched after the transaction commits.
type pendingWelcome struct {
	Client   *models.Client
	Password string
	Code     string
}

// findOrCreateClient resolves the client for an account-opening request inside
// the caller's transaction. An existing User (matched by email OR telephone) is
// reused and never re-credentialed; otherwise a User+Client pair is created and
// a welcome notification is queued for post-commit dispatch.
func findOrCreateClient(tx *gorm.DB, input ClientInput) (*models.Client, *pendingWelcome, error) {
	input.Telephone = utils.NormalizeSenegalPhone(input.Telephone)

	var existing models.User
	err := tx.Where("email = ? OR telephone = ?", input.Email, input.Telephone).First(&existing).Error
	if err == nil {
		var client models.Client
		err = tx.Where(models.Client{UserID: existing.ID}).
			Attrs(models.Client{
				ID:           uuid.New().String(),
				Titulaire:    input.Titulaire,
				Email:        existing.Email,
				Telephone:    existing.Telephone,
				Adresse:      existing.Adresse,
				SoldeInitial: 0,
			}).
			FirstOrCreate(&client).Error
		if err != nil {
			return nil, nil, err
		}
		return &client, nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	return createNewClient(tx, input)
}

func createNewClient(tx *gorm.DB, input ClientInput) (*models.Client, *pendingWelcome, error) {
	password := utils.GeneratePassword()
	code := utils.GenerateVerificationCode()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := newUser(input, string(hashed))
	if err := tx.Create(user).Error; err != nil {
		return nil, nil, err
	}

	client := newClient(user, input, password, code)
	if err := tx.Create(client).Error; err != nil {
		return nil, nil, err
	}

	return client, &pendingWelcome{Client: client, Password: password, Code: code}, nil
}

// newUser builds a fully-formed User before the insert; identifiers are never
// assigned by persistence hooks.
func newUser(input ClientInput, hashedPassword string) *models.User {
	return &models.User{
		ID:         uuid.New().String(),
		Nom:        extractFirstName(input.Titulaire),
		Prenom:     extractLastName(input.Titulaire),
		Email:      input.Email,
		Telephone:  input.Telephone,
		Adresse:    input.Adresse,
		MotDePasse: hashedPassword,
		Role:       models.RoleClient,
		Statut:     models.UserStatutActif,
	}
}

func newClient(user *models.User, input ClientInput, password, code string) *models.Client {
	return &models.Client{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		NCI:          input.NCI,
		Titulaire:    input.Titulaire,
		Email:        input.Email,
		Telephone:    input.Telephone,
		Adresse:      input.Adresse,
		Password:     password,
		Code:         code,
		SoldeInitial: 0,
	}
}

func extractFirstName(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) == 0 {
		return fullName
	}
	return parts[0]
}

func extractLastName(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}
