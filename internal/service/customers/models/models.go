package models

import (
	"strings"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
)

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	DivisionID int64  `json:"divisionId"`
}

// Validate проверяет обязательные поля запроса
func (r *CreateCustomerRequest) Validate() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(r.PostalCode) == "" {
		missing = append(missing, "postalCode")
	}
	if strings.TrimSpace(r.Phone) == "" {
		missing = append(missing, "phone")
	}
	if r.DivisionID <= 0 {
		missing = append(missing, "divisionId")
	}
	return missing
}

// ToDomain конвертирует request в domain модель
func (r *CreateCustomerRequest) ToDomain() *domain.Customer {
	return &domain.Customer{
		Name:       r.Name,
		Address:    r.Address,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		DivisionID: r.DivisionID,
	}
}

// UpdateCustomerRequest запрос на обновление клиента
type UpdateCustomerRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	DivisionID int64  `json:"divisionId"`
}

// Validate проверяет обязательные поля запроса
func (r *UpdateCustomerRequest) Validate() []string {
	req := CreateCustomerRequest{
		Name:       r.Name,
		Address:    r.Address,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		DivisionID: r.DivisionID,
	}
	return req.Validate()
}

// ToDomain конвертирует request в domain модель с указанным ID
func (r *UpdateCustomerRequest) ToDomain(id int64) *domain.Customer {
	return &domain.Customer{
		ID:         id,
		Name:       r.Name,
		Address:    r.Address,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		DivisionID: r.DivisionID,
	}
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	PostalCode   string `json:"postalCode"`
	Phone        string `json:"phone"`
	DivisionID   int64  `json:"divisionId"`
	DivisionName string `json:"divisionName"`
	CountryName  string `json:"countryName"`
}

// ListResponse список клиентов
type ListResponse struct {
	Customers []*CustomerResponse `json:"customers"`
}

// DeleteResponse результат удаления клиента вместе с его встречами
type DeleteResponse struct {
	DeletedAppointments int64 `json:"deletedAppointments"`
}

// FromDomainCustomer конвертирует domain модель в response
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		PostalCode:   c.PostalCode,
		Phone:        c.Phone,
		DivisionID:   c.DivisionID,
		DivisionName: c.DivisionName,
		CountryName:  c.CountryName,
	}
}

// FromDomainCustomers конвертирует список domain моделей в responses
func FromDomainCustomers(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, FromDomainCustomer(c))
	}
	return result
}
