package domain

import "time"

// User represents a staff member account able to log in and own appointments
type User struct {
	ID           int64
	Username     string
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
