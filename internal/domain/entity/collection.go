package entity

import "time"

// Collection regroupement éditorial de produits (mis en avant sur l'accueil).
type Collection struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
