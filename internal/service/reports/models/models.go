package models

import "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"

// TypeMonthlyRow строка отчета по типу и месяцу
type TypeMonthlyRow struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// CustomerMonthlyRow строка отчета по клиенту и месяцу
type CustomerMonthlyRow struct {
	Year         int    `json:"year"`
	Month        string `json:"month"`
	CustomerID   int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	Count        int64  `json:"count"`
}

// ContactMonthlyRow строка отчета по контакту и месяцу
type ContactMonthlyRow struct {
	Year        int    `json:"year"`
	Month       string `json:"month"`
	ContactID   int64  `json:"contactId"`
	ContactName string `json:"contactName"`
	Count       int64  `json:"count"`
}

// TypeMonthlyResponse отчет по типу и месяцу
type TypeMonthlyResponse struct {
	Rows []*TypeMonthlyRow `json:"rows"`
}

// CustomerMonthlyResponse отчет по клиенту и месяцу
type CustomerMonthlyResponse struct {
	Rows []*CustomerMonthlyRow `json:"rows"`
}

// ContactMonthlyResponse отчет по контакту и месяцу
type ContactMonthlyResponse struct {
	Rows []*ContactMonthlyRow `json:"rows"`
}

// FromDomainTypeCounts конвертирует domain строки в response
func FromDomainTypeCounts(rows []*domain.TypeMonthlyCount) *TypeMonthlyResponse {
	result := make([]*TypeMonthlyRow, 0, len(rows))
	for _, r := range rows {
		result = append(result, &TypeMonthlyRow{Year: r.Year, Month: r.Month, Type: r.Type, Count: r.Count})
	}
	return &TypeMonthlyResponse{Rows: result}
}

// FromDomainCustomerCounts конвертирует domain строки в response
func FromDomainCustomerCounts(rows []*domain.CustomerMonthlyCount) *CustomerMonthlyResponse {
	result := make([]*CustomerMonthlyRow, 0, len(rows))
	for _, r := range rows {
		result = append(result, &CustomerMonthlyRow{
			Year:         r.Year,
			Month:        r.Month,
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			Count:        r.Count,
		})
	}
	return &CustomerMonthlyResponse{Rows: result}
}

// FromDomainContactCounts конвертирует domain строки в response
func FromDomainContactCounts(rows []*domain.ContactMonthlyCount) *ContactMonthlyResponse {
	result := make([]*ContactMonthlyRow, 0, len(rows))
	for _, r := range rows {
		result = append(result, &ContactMonthlyRow{
			Year:        r.Year,
			Month:       r.Month,
			ContactID:   r.ContactID,
			ContactName: r.ContactName,
			Count:       r.Count,
		})
	}
	return &ContactMonthlyResponse{Rows: result}
}
