package domain

import "time"

// Customer represents a customer record with its resolved division and country names
type Customer struct {
	ID         int64
	Name       string
	Address    string
	PostalCode string
	Phone      string
	DivisionID int64

	// Denormalized for display
	DivisionName string
	CountryName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
