package services

import (
	"fmt"
	"testing"
	"time"

	"gesbanque-backend/internal/database"
	"gesbanque-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var seedNumero int

func seedCompte(t *testing.T, titulaire string, typeCompte models.TypeCompte, solde float64, deleted bool) models.Compte {
	t.Helper()

	seedNumero++
	compte := models.Compte{
		ID:            uuid.New().String(),
		NumeroCompte:  fmt.Sprintf("CPT%06d", 100000+seedNumero),
		ClientID:      uuid.New().String(),
		Titulaire:     titulaire,
		TypeCompte:    typeCompte,
		Solde:         solde,
		Devise:        "XOF",
		Statut:        models.CompteStatutActif,
		StatutBlocage: models.BlocageActif,
	}
	if deleted {
		now := time.Now().UTC()
		compte.DeletedAt = &now
	}
	assert.NoError(t, database.DB.Create(&compte).Error)
	return compte
}

func TestFindComptesSearch(t *testing.T) {
	setupTestDB()

	seedCompte(t, "Mamadou Diallo", models.TypeEpargne, 50000, false)
	seedCompte(t, "Awa Ndiaye", models.TypeCourant, 80000, false)
	seedCompte(t, "Fatou Diallo", models.TypeCheque, 20000, false)

	comptes, total, err := FindComptes(CompteFilter{Search: "diallo"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, comptes, 2)
	for _, c := range comptes {
		assert.Contains(t, c.Titulaire, "Diallo")
	}
}

func TestFindComptesTypeFilterIsCaseInsensitive(t *testing.T) {
	setupTestDB()

	seedCompte(t, "Mamadou Diallo", models.TypeEpargne, 50000, false)
	seedCompte(t, "Awa Ndiaye", models.TypeCourant, 80000, false)

	comptes, total, err := FindComptes(CompteFilter{Type: "EPARGNE"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, models.TypeEpargne, comptes[0].TypeCompte)
}

func TestFindComptesSorting(t *testing.T) {
	setupTestDB()

	seedCompte(t, "A", models.TypeEpargne, 30000, false)
	seedCompte(t, "B", models.TypeEpargne, 10000, false)
	seedCompte(t, "C", models.TypeEpargne, 20000, false)

	comptes, _, err := FindComptes(CompteFilter{Sort: "solde", Order: "asc"})
	assert.NoError(t, err)
	assert.Equal(t, 10000.0, comptes[0].Solde)
	assert.Equal(t, 30000.0, comptes[2].Solde)
}

func TestFindComptesPagination(t *testing.T) {
	setupTestDB()

	for i := 0; i < 15; i++ {
		seedCompte(t, fmt.Sprintf("Client %02d", i), models.TypeEpargne, 10000, false)
	}

	page1, total, err := FindComptes(CompteFilter{Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, page1, 10)

	page2, _, err := FindComptes(CompteFilter{Page: 2, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, page2, 5)
}

func TestFindComptesRejectsBadFilters(t *testing.T) {
	setupTestDB()

	tests := []struct {
		name   string
		filter CompteFilter
	}{
		{"limit above max", CompteFilter{Limit: 150}},
		{"negative page", CompteFilter{Page: -1}},
		{"unknown sort", CompteFilter{Sort: "mot_de_passe"}},
		{"unknown order", CompteFilter{Order: "sideways"}},
		{"unknown statut", CompteFilter{Statut: "gelé"}},
		{"unknown type", CompteFilter{Type: "gold"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FindComptes(tt.filter)
			svcErr, ok := err.(*ServiceError)
			assert.True(t, ok)
			assert.Equal(t, ErrCodeValidation, svcErr.Code)
		})
	}
}

func TestFindComptesExcludesArchived(t *testing.T) {
	setupTestDB()

	seedCompte(t, "Actif", models.TypeEpargne, 10000, false)
	seedCompte(t, "Fermé", models.TypeEpargne, 10000, true)

	active, total, err := FindComptes(CompteFilter{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Actif", active[0].Titulaire)

	archived, archivedTotal, err := FindArchivedComptes(CompteFilter{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), archivedTotal)
	assert.Equal(t, "Fermé", archived[0].Titulaire)
	assert.NotNil(t, archived[0].DeletedAt)
}
