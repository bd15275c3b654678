package services

import (
	"strings"

	"gesbanque-backend/internal/database"
	"gesbanque-backend/internal/models"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ActiveComptes scopes a query to non-archived accounts. Every query path
// picks its archival scope explicitly; nothing is filtered behind the
// caller's back.
func ActiveComptes(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

// ArchivedComptes scopes a query to archived accounts only.
func ArchivedComptes(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NOT NULL")
}

// CompteFilter is the declarative filter set for account listings.
type CompteFilter struct {
	Type     string
	Statut   string
	Search   string
	ClientID string
	Sort     string
	Order    string
	Page     int
	Limit    int
}

// sortColumns is the allow-list of sortable fields, mapped onto columns.
var sortColumns = map[string]string{
	"date_creation": "created_at",
	"solde":         "solde",
	"titulaire":     "titulaire",
	"numero_compte": "numero_compte",
}

var listStatuts = map[string]bool{
	string(models.CompteStatutActif):    true,
	string(models.CompteStatutInactif):  true,
	string(models.CompteStatutBloque):   true,
	string(models.CompteStatutSuspendu): true,
}

// normalize validates the filter and fills in defaults. Invalid values are
// rejected before any query runs.
func (f *CompteFilter) normalize() *ServiceError {
	if f.Type != "" {
		mapped, ok := normalizeTypeCompte(f.Type)
		if !ok {
			return NewValidationError("Le type de compte doit être cheque, epargne ou courant.")
		}
		f.Type = string(mapped)
	}
	if f.Statut != "" && !listStatuts[f.Statut] {
		return NewValidationError("Le statut doit être actif, inactif, bloque ou suspendu.")
	}
	if f.Sort == "" {
		f.Sort = "date_creation"
	}
	if _, ok := sortColumns[f.Sort]; !ok {
		return NewValidationError("Le champ de tri doit être date_creation, solde, titulaire ou numero_compte.")
	}
	if f.Order == "" {
		f.Order = "desc"
	}
	if f.Order != "asc" && f.Order != "desc" {
		return NewValidationError("L'ordre de tri doit être asc ou desc.")
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Page < 1 {
		return NewValidationError("Le numéro de page doit être supérieur ou égal à 1.")
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit < 1 || f.Limit > MaxLimit {
		return NewValidationError("La limite doit être comprise entre 1 et 100.")
	}
	return nil
}

// apply adds the filter's where clauses to the query.
func (f *CompteFilter) apply(query *gorm.DB) *gorm.DB {
	if f.Type != "" {
		query = query.Where("type_compte = ?", f.Type)
	}
	if f.Statut != "" {
		query = query.Where("statut = ?", f.Statut)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(titulaire) LIKE ? OR LOWER(numero_compte) LIKE ?", pattern, pattern)
	}
	if f.ClientID != "" {
		query = query.Where("client_id = ?", f.ClientID)
	}
	return query
}

// FindComptes lists non-archived accounts matching the filter.
func FindComptes(filter CompteFilter) ([]models.Compte, int64, error) {
	return findComptesScoped(filter, ActiveComptes)
}

// FindArchivedComptes lists archived accounts with the same pagination contract.
func FindArchivedComptes(filter CompteFilter) ([]models.Compte, int64, error) {
	return findComptesScoped(filter, ArchivedComptes)
}

func findComptesScoped(filter CompteFilter, scope func(*gorm.DB) *gorm.DB) ([]models.Compte, int64, error) {
	if err := filter.normalize(); err != nil {
		return nil, 0, err
	}

	query := filter.apply(database.DB.Model(&models.Compte{}).Scopes(scope))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, NewInternalError(err)
	}

	var comptes []models.Compte
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order(sortColumns[filter.Sort] + " " + filter.Order).
		Limit(filter.Limit).
		Offset(offset).
		Find(&comptes).Error
	if err != nil {
		return nil, 0, NewInternalError(err)
	}

	return comptes, total, nil
}
