package get_reference_data

import "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"

// ContactResponse контакт компании
type ContactResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CountryResponse страна
type CountryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DivisionResponse регион первого уровня
type DivisionResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"countryId"`
}

// ContactsResponse список контактов
type ContactsResponse struct {
	Contacts []*ContactResponse `json:"contacts"`
}

// CountriesResponse список стран
type CountriesResponse struct {
	Countries []*CountryResponse `json:"countries"`
}

// DivisionsResponse список регионов страны
type DivisionsResponse struct {
	Divisions []*DivisionResponse `json:"divisions"`
}

func fromDomainContacts(contacts []*domain.Contact) *ContactsResponse {
	result := make([]*ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, &ContactResponse{ID: c.ID, Name: c.Name, Email: c.Email})
	}
	return &ContactsResponse{Contacts: result}
}

func fromDomainCountries(countries []*domain.Country) *CountriesResponse {
	result := make([]*CountryResponse, 0, len(countries))
	for _, c := range countries {
		result = append(result, &CountryResponse{ID: c.ID, Name: c.Name})
	}
	return &CountriesResponse{Countries: result}
}

func fromDomainDivisions(divisions []*domain.Division) *DivisionsResponse {
	result := make([]*DivisionResponse, 0, len(divisions))
	for _, d := range divisions {
		result = append(result, &DivisionResponse{ID: d.ID, Name: d.Name, CountryID: d.CountryID})
	}
	return &DivisionsResponse{Divisions: result}
}
