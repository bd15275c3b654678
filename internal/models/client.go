package models

import "time"

// Client is the banking profile of an account holder. It wraps a User identity
// and owns zero or more Comptes.
type Client struct {
	ID           string    `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time `json:"dateCreation"`
	UpdatedAt    time.Time `json:"-"`
	UserID       string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"idUser"`
	NCI          *string   `gorm:"type:varchar(13)" json:"nci"`
	Titulaire    string    `gorm:"not null" json:"titulaire"`
	Email        string    `gorm:"not null" json:"email"`
	Telephone    string    `gorm:"not null" json:"telephone"`
	Adresse      string    `gorm:"type:varchar(500)" json:"adresse"`
	Password     string    `json:"-"` // generated plaintext, kept for the welcome mail only
	Code         string    `gorm:"type:varchar(6)" json:"-"`
	SoldeInitial float64   `gorm:"type:decimal(15,2);default:0" json:"soldeInitial"`

	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Comptes []Compte `gorm:"foreignKey:ClientID" json:"-"`
}
