package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gesbanque-backend/internal/database"
	"gesbanque-backend/internal/models"
	"gesbanque-backend/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MinSoldeInitial is the minimum opening balance, overridden from config at
// startup.
var MinSoldeInitial float64 = 10000

// CreateCompteInput is the validated payload of an account-opening request.
type CreateCompteInput struct {
	Type         string
	SoldeInitial float64
	Devise       string
	Client       ClientInput
}

// ClientInfoPatch is the nested client portion of an account update.
type ClientInfoPatch struct {
	Telephone *string
	Email     *string
	Password  *string
	NCI       *string
}

// UpdateCompteInput is a partial update; every field is optional but at least
// one must be present.
type UpdateCompteInput struct {
	Titulaire          *string
	InformationsClient *ClientInfoPatch
}

// CreateCompte opens a bank account. Client resolution and the account insert
// run in one transaction; the creation event and, for brand-new clients, the
// welcome notification are dispatched only after commit.
func CreateCompte(input CreateCompteInput) (*models.Compte, error) {
	typeCompte, ok := normalizeTypeCompte(input.Type)
	if !ok {
		return nil, NewValidationError("Le type de compte doit être cheque, epargne ou courant.")
	}
	if input.SoldeInitial < MinSoldeInitial {
		return nil, NewValidationError(fmt.Sprintf("Le solde initial doit être d'au moins %.0f.", MinSoldeInitial))
	}
	if len(input.Devise) != 3 {
		return nil, NewValidationError("La devise doit contenir exactement 3 caractères.")
	}
	if !utils.IsValidSenegalPhone(input.Client.Telephone) {
		return nil, NewValidationError("Le numéro de téléphone doit être un numéro sénégalais valide.")
	}
	if input.Client.NCI != nil && !utils.IsValidSenegalNCI(*input.Client.NCI) {
		return nil, NewValidationError("Le numéro NCI doit être un numéro sénégalais valide (13 chiffres commençant par 1 ou 2).")
	}

	var compte *models.Compte
	var welcome *pendingWelcome

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		client, pending, err := findOrCreateClient(tx, input.Client)
		if err != nil {
			return err
		}
		welcome = pending

		numero, err := generateUniqueNumero(tx)
		if err != nil {
			return err
		}

		compte = newCompte(client, input, typeCompte, numero)
		return tx.Create(compte).Error
	})
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		return nil, NewInternalError(err)
	}

	dispatchCompteCreated(compte)
	if welcome != nil {
		dispatchWelcome(welcome.Client, welcome.Password, welcome.Code)
	}

	return compte, nil
}

// newCompte builds a fully-formed account record before the insert.
func newCompte(client *models.Client, input CreateCompteInput, typeCompte models.TypeCompte, numero string) *models.Compte {
	return &models.Compte{
		ID:            uuid.New().String(),
		NumeroCompte:  numero,
		ClientID:      client.ID,
		Titulaire:     input.Client.Titulaire,
		TypeCompte:    typeCompte,
		Solde:         input.SoldeInitial,
		Devise:        strings.ToUpper(input.Devise),
		Statut:        models.CompteStatutActif,
		StatutBlocage: models.BlocageActif,
		Metadata: datatypes.JSONMap{
			models.MetaSoldeInitial: input.SoldeInitial,
			models.MetaDateCreation: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// generateUniqueNumero draws CPT-prefixed numbers until one is free.
func generateUniqueNumero(tx *gorm.DB) (string, error) {
	for {
		numero := utils.GenerateNumeroCompte()

		var count int64
		if err := tx.Model(&models.Compte{}).Where("numero_compte = ?", numero).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return numero, nil
		}
	}
}

// FindCompteByID returns a non-archived account, read through the redis cache.
func FindCompteByID(id string) (*models.Compte, error) {
	cacheKey := compteCacheKey(id)
	if database.RedisClient != nil {
		if val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result(); err == nil {
			var compte models.Compte
			if err := json.Unmarshal([]byte(val), &compte); err == nil {
				return &compte, nil
			}
		}
	}

	var compte models.Compte
	err := database.DB.Scopes(ActiveComptes).Where("id = ?", id).First(&compte).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, NewInternalError(err)
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(compte); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return &compte, nil
}

// UpdateCompte applies a partial update to the account and its client/user in
// one transaction, bumping the metadata version.
func UpdateCompte(id string, input UpdateCompteInput) (*models.Compte, error) {
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var compte models.Compte
		if err := tx.Scopes(ActiveComptes).Where("id = ?", id).First(&compte).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError(id)
			}
			return err
		}

		updates := map[string]interface{}{
			"metadata": touchMetadata(compte.Metadata),
		}
		if input.Titulaire != nil {
			updates["titulaire"] = *input.Titulaire
		}
		if err := tx.Model(&compte).Updates(updates).Error; err != nil {
			return err
		}

		if input.InformationsClient != nil {
			if err := updateClientInformation(tx, compte.ClientID, *input.InformationsClient); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		return nil, NewInternalError(err)
	}

	InvalidateCompteCache(id)

	var refreshed models.Compte
	if err := database.DB.Scopes(ActiveComptes).Where("id = ?", id).First(&refreshed).Error; err != nil {
		return nil, NewInternalError(err)
	}
	return &refreshed, nil
}

func validateUpdateInput(input UpdateCompteInput) *ServiceError {
	hasClientInfo := input.InformationsClient != nil &&
		(input.InformationsClient.Telephone != nil ||
			input.InformationsClient.Email != nil ||
			input.InformationsClient.Password != nil ||
			input.InformationsClient.NCI != nil)

	if input.Titulaire == nil && !hasClientInfo {
		return NewValidationError("Au moins un champ doit être fourni pour la modification.")
	}

	if hasClientInfo {
		info := input.InformationsClient
		if info.Telephone != nil && !utils.IsValidSenegalPhone(*info.Telephone) {
			return NewValidationError("Le numéro de téléphone doit être un numéro sénégalais valide.")
		}
		if info.NCI != nil && !utils.IsValidSenegalNCI(*info.NCI) {
			return NewValidationError("Le numéro NCI doit être un numéro sénégalais valide (13 chiffres commençant par 1 ou 2).")
		}
		if info.Password != nil && len(*info.Password) < 8 {
			return NewValidationError("Le mot de passe doit contenir au moins 8 caractères.")
		}
	}
	return nil
}

func updateClientInformation(tx *gorm.DB, clientID string, info ClientInfoPatch) error {
	var client models.Client
	if err := tx.Where("id = ?", clientID).First(&client).Error; err != nil {
		return err
	}

	userUpdates := map[string]interface{}{}
	clientUpdates := map[string]interface{}{}

	if info.Telephone != nil {
		normalized := utils.NormalizeSenegalPhone(*info.Telephone)
		userUpdates["telephone"] = normalized
		clientUpdates["telephone"] = normalized
	}
	if info.Email != nil {
		userUpdates["email"] = *info.Email
		clientUpdates["email"] = *info.Email
	}
	if info.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*info.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		userUpdates["mot_de_passe"] = string(hashed)
	}
	if info.NCI != nil {
		clientUpdates["nci"] = *info.NCI
	}

	if len(userUpdates) > 0 {
		if err := tx.Model(&models.User{}).Where("id = ?", client.UserID).Updates(userUpdates).Error; err != nil {
			return err
		}
	}
	if len(clientUpdates) > 0 {
		if err := tx.Model(&client).Updates(clientUpdates).Error; err != nil {
			return err
		}
	}
	return nil
}

// PatchCompteInput is the direct account patch; every field is optional but at
// least one must be present.
type PatchCompteInput struct {
	Type   *string
	Solde  *float64
	Statut *string
}

// PatchCompte applies a direct update to the account's own fields. Client
// information goes through UpdateCompte instead.
func PatchCompte(id string, input PatchCompteInput) (*models.Compte, error) {
	updates := map[string]interface{}{}

	if input.Type != nil {
		typeCompte, ok := normalizeTypeCompte(*input.Type)
		if !ok {
			return nil, NewValidationError("Le type de compte doit être cheque, epargne ou courant.")
		}
		updates["type_compte"] = typeCompte
	}
	if input.Solde != nil {
		if *input.Solde < 0 {
			return nil, NewValidationError("Le solde ne peut pas être négatif.")
		}
		updates["solde"] = *input.Solde
	}
	if input.Statut != nil {
		if !listStatuts[*input.Statut] {
			return nil, NewValidationError("Le statut doit être actif, inactif, bloque ou suspendu.")
		}
		updates["statut"] = *input.Statut
	}
	if len(updates) == 0 {
		return nil, NewValidationError("Au moins un champ doit être fourni pour la modification.")
	}

	var compte models.Compte
	err := database.DB.Scopes(ActiveComptes).Where("id = ?", id).First(&compte).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, NewInternalError(err)
	}

	updates["metadata"] = touchMetadata(compte.Metadata)
	if err := database.DB.Model(&compte).Updates(updates).Error; err != nil {
		return nil, NewInternalError(err)
	}

	InvalidateCompteCache(id)
	return reloadCompte(id)
}

// BlockCompte suspends funds movement on a savings account for the given
// duration. The transition is guarded by a conditional update on the current
// block status so concurrent attempts cannot double-apply.
func BlockCompte(id, motif string, duree int, unite string) (*models.Compte, error) {
	var compte models.Compte
	err := database.DB.Scopes(ActiveComptes).Where("id = ?", id).First(&compte).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, NewInternalError(err)
	}

	if compte.StatutBlocage == models.BlocageBloque {
		return nil, NewConflictError("Le compte est déjà bloqué.")
	}
	if compte.TypeCompte != models.TypeEpargne {
		return nil, NewBusinessRuleError("Seuls les comptes épargne peuvent être bloqués.")
	}

	now := time.Now().UTC()
	end := blockEndDate(now, duree, unite)

	result := database.DB.Model(&models.Compte{}).
		Where("id = ? AND statut_blocage = ?", id, models.BlocageActif).
		Updates(map[string]interface{}{
			"statut_blocage":        models.BlocageBloque,
			"motif_blocage":         motif,
			"date_blocage":          now,
			"date_deblocage_prevue": end,
			"metadata":              touchMetadata(compte.Metadata),
		})
	if result.Error != nil {
		return nil, NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		// Lost the race against a concurrent block.
		return nil, NewConflictError("Le compte est déjà bloqué.")
	}

	InvalidateCompteCache(id)
	zap.L().Info("compte bloqué",
		zap.String("compte_id", id),
		zap.String("numero_compte", compte.NumeroCompte),
		zap.String("motif", motif),
		zap.Time("deblocage_prevu", end))

	return reloadCompte(id)
}

// UnblockCompte lifts the block on an account.
func UnblockCompte(id, motif string) (*models.Compte, error) {
	var compte models.Compte
	err := database.DB.Scopes(ActiveComptes).Where("id = ?", id).First(&compte).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, NewInternalError(err)
	}

	if compte.StatutBlocage != models.BlocageBloque {
		return nil, NewBusinessRuleError("Le compte n'est pas bloqué.")
	}

	result := database.DB.Model(&models.Compte{}).
		Where("id = ? AND statut_blocage = ?", id, models.BlocageBloque).
		Updates(map[string]interface{}{
			"statut_blocage":        models.BlocageActif,
			"motif_blocage":         nil,
			"date_blocage":          nil,
			"date_deblocage_prevue": nil,
			"metadata":              touchMetadata(compte.Metadata),
		})
	if result.Error != nil {
		return nil, NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, NewBusinessRuleError("Le compte n'est pas bloqué.")
	}

	InvalidateCompteCache(id)
	zap.L().Info("compte débloqué",
		zap.String("compte_id", id),
		zap.String("numero_compte", compte.NumeroCompte),
		zap.String("motif", motif))

	return reloadCompte(id)
}

// DeleteCompte archives an account. Archived accounts are excluded from the
// default scope, so a repeat call reports not-found.
func DeleteCompte(id string) (*models.Compte, error) {
	var compte models.Compte
	err := database.DB.Scopes(ActiveComptes).Where("id = ?", id).First(&compte).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, NewInternalError(err)
	}

	now := time.Now().UTC()
	if err := database.DB.Model(&compte).Update("deleted_at", now).Error; err != nil {
		return nil, NewInternalError(err)
	}

	InvalidateCompteCache(id)
	compte.DeletedAt = &now
	return &compte, nil
}

// FindCompteTransactions lists the ledger entries of a non-archived account.
func FindCompteTransactions(id string) ([]models.Transaction, error) {
	if _, err := FindCompteByID(id); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := database.DB.Where("compte_id = ?", id).Order("created_at desc").Find(&transactions).Error; err != nil {
		return nil, NewInternalError(err)
	}
	return transactions, nil
}

// blockEndDate computes the expected unblock date. An unrecognized unit is a
// programming error: the request validator restricts units before we get here.
func blockEndDate(from time.Time, duree int, unite string) time.Time {
	switch unite {
	case "jour", "jours":
		return from.AddDate(0, 0, duree)
	case "semaine", "semaines":
		return from.AddDate(0, 0, 7*duree)
	case "mois":
		return from.AddDate(0, duree, 0)
	case "annee", "annees":
		return from.AddDate(duree, 0, 0)
	default:
		panic(fmt.Sprintf("unité de blocage non supportée: %q", unite))
	}
}

// touchMetadata returns a copy with the version counter bumped and the
// last-modified stamp refreshed.
func touchMetadata(meta datatypes.JSONMap) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for k, v := range meta {
		out[k] = v
	}

	version := 0
	switch v := out[models.MetaVersion].(type) {
	case int:
		version = v
	case int64:
		version = int(v)
	case float64:
		version = int(v)
	}
	out[models.MetaVersion] = version + 1
	out[models.MetaDerniereModification] = time.Now().UTC().Format(time.RFC3339)
	return out
}

func normalizeTypeCompte(t string) (models.TypeCompte, bool) {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "epargne":
		return models.TypeEpargne, true
	case "courant":
		return models.TypeCourant, true
	case "cheque":
		return models.TypeCheque, true
	default:
		return "", false
	}
}

func reloadCompte(id string) (*models.Compte, error) {
	var compte models.Compte
	if err := database.DB.Scopes(ActiveComptes).Where("id = ?", id).First(&compte).Error; err != nil {
		return nil, NewInternalError(err)
	}
	return &compte, nil
}

func compteCacheKey(id string) string {
	return "compte:" + id
}

// InvalidateCompteCache drops the cached copy of a compte. Every writer that
// bypasses the service layer (the maintenance sweeps in particular) must call
// this, or stale copies survive until the cache TTL lapses.
func InvalidateCompteCache(id string) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, compteCacheKey(id))
	}
}
