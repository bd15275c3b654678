package models

import "time"

type TransactionType string

const (
	TransactionDepot   TransactionType = "depot"
	TransactionRetrait TransactionType = "retrait"
	TransactionSalaire TransactionType = "salaire"
)

type TransactionStatut string

const (
	TransactionSuccess TransactionStatut = "success"
	TransactionEchec   TransactionStatut = "echec"
)

// Transaction is a passive ledger entry attached to a Compte. The core never
// mutates it beyond the cascade delete performed when a compte is archived.
type Transaction struct {
	ID              string            `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time         `gorm:"precision:3" json:"dateTransaction"`
	CompteID        string            `gorm:"type:varchar(36);index;not null" json:"idCompte"`
	TypeTransaction TransactionType   `gorm:"type:varchar(20);not null" json:"type"`
	Montant         float64           `gorm:"type:decimal(15,2);not null" json:"montant"`
	Statut          TransactionStatut `gorm:"type:varchar(20);not null;default:'success'" json:"statut"`
	Description     string            `gorm:"type:text" json:"description"`
}
