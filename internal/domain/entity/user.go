package entity

import "time"

// Rôles applicatifs.
const (
	RoleAdmin        = "admin"
	RoleGestionnaire = "gestionnaire"
)

// User utilisateur du back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin, gestionnaire
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
