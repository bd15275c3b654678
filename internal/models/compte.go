package models

import (
	"time"

	"gorm.io/datatypes"
)

type TypeCompte string

const (
	TypeEpargne TypeCompte = "Epargne"
	TypeCourant TypeCompte = "Courant"
	TypeCheque  TypeCompte = "Cheque"
)

type CompteStatut string

const (
	CompteStatutActif    CompteStatut = "actif"
	CompteStatutInactif  CompteStatut = "inactif"
	CompteStatutBloque   CompteStatut = "bloque"
	CompteStatutSuspendu CompteStatut = "suspendu"
	// CompteStatutFerme only appears in API projections of archived comptes,
	// it is never stored.
	CompteStatutFerme CompteStatut = "ferme"
)

type StatutBlocage string

const (
	BlocageActif  StatutBlocage = "actif"
	BlocageBloque StatutBlocage = "bloque"
)

// Metadata keys maintained by the lifecycle operations.
const (
	MetaSoldeInitial         = "solde_initial"
	MetaDateCreation         = "date_creation"
	MetaDerniereModification = "derniereModification"
	MetaVersion              = "version"
)

// Compte is a bank account. DeletedAt is a plain nullable timestamp rather than
// gorm.DeletedAt: archival filtering is applied explicitly by the query scopes in
// the services package, so every query path states whether it wants archived rows.
type Compte struct {
	ID                  string             `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt           time.Time          `json:"dateCreation"`
	UpdatedAt           time.Time          `json:"-"`
	DeletedAt           *time.Time         `gorm:"index" json:"dateFermeture,omitempty"`
	NumeroCompte        string             `gorm:"uniqueIndex;not null" json:"numeroCompte"`
	ClientID            string             `gorm:"type:varchar(36);index;not null" json:"idClient"`
	Titulaire           string             `gorm:"not null" json:"titulaire"`
	TypeCompte          TypeCompte         `gorm:"type:varchar(20);not null" json:"type"`
	Solde               float64            `gorm:"type:decimal(15,2);not null" json:"solde"`
	Devise              string             `gorm:"type:varchar(3);not null" json:"devise"`
	Statut              CompteStatut       `gorm:"type:varchar(20);not null;default:'actif'" json:"statut"`
	StatutBlocage       StatutBlocage      `gorm:"type:varchar(20);not null;default:'actif'" json:"statutBlocage"`
	MotifBlocage        *string            `json:"motifBlocage,omitempty"`
	DateBlocage         *time.Time         `json:"dateBlocage,omitempty"`
	DateDeblocagePrevue *time.Time         `json:"dateDeblocagePrevue,omitempty"`
	Metadata            datatypes.JSONMap  `json:"metadata"`

	Client       Client        `gorm:"foreignKey:ClientID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:CompteID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsBlocked reports whether the blocking workflow currently holds the compte.
func (c *Compte) IsBlocked() bool {
	return c.StatutBlocage == BlocageBloque
}

// MetadataVersion reads the version counter out of the metadata map, tolerating
// the float64 that JSON round-trips produce.
func (c *Compte) MetadataVersion() int {
	switch v := c.Metadata[MetaVersion].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
