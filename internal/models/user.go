package models

import "time"

type Role string

const (
	RoleClient     Role = "client"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

type UserStatut string

const (
	UserStatutActif   UserStatut = "actif"
	UserStatutInactif UserStatut = "inactif"
)

// User is the base authenticatable identity. Every Client wraps exactly one User.
type User struct {
	ID         string     `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time  `json:"dateCreation"`
	UpdatedAt  time.Time  `json:"-"`
	Nom        string     `gorm:"not null" json:"nom"`
	Prenom     string     `json:"prenom"`
	Email      string     `gorm:"uniqueIndex;not null" json:"email"`
	Telephone  string     `gorm:"uniqueIndex;not null" json:"telephone"`
	Adresse    string     `gorm:"type:varchar(500)" json:"adresse"`
	MotDePasse string     `gorm:"not null" json:"-"`
	Role       Role       `gorm:"type:varchar(20);not null;default:'client'" json:"role"`
	Statut     UserStatut `gorm:"type:varchar(20);not null;default:'actif'" json:"statut"`
}
