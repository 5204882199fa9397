package domain

// Country represents a country reference record
type Country struct {
	ID   int64
	Name string
}

// Division represents a first-level division (state, province) within a country
type Division struct {
	ID        int64
	Name      string
	CountryID int64
}
