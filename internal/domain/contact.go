package domain

// Contact represents a company contact assigned to appointments
type Contact struct {
	ID    int64
	Name  string
	Email string
}
