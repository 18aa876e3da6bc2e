package entity

import "time"

// Customer client de la boutique.
type Customer struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
