package entity

import "time"

// Category catégorie de produits (hiérarchique via ParentID).
type Category struct {
	ID          string
	ParentID    string // vide si racine
	Name        string
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
