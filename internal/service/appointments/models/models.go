package models

import (
	"time"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
)

// AppointmentResponse ответ с данными встречи.
// Start и End отдаются как наивное локальное время в поясе TimeZone.
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customerId"`
	UserID      int64  `json:"userId"`
	ContactID   int64  `json:"contactId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Start       string `json:"start"`
	End         string `json:"end"`
	TimeZone    string `json:"timeZone"`
}

// ListResponse список встреч
type ListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// ImminentResponse встречи, начинающиеся в ближайшие минуты после входа
type ImminentResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в response,
// форматируя время в указанном часовом поясе
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		UserID:      a.UserID,
		ContactID:   a.ContactID,
		Title:       a.Title,
		Description: a.Description,
		Location:    a.Location,
		Type:        a.Type,
		Start:       a.Start.In(loc).Format(domain.DateTimeFormat),
		End:         a.End.In(loc).Format(domain.DateTimeFormat),
		TimeZone:    loc.String(),
	}
}

// FromDomainAppointments конвертирует список domain моделей в responses
func FromDomainAppointments(appointments []*domain.Appointment, loc *time.Location) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, FromDomainAppointment(a, loc))
	}
	return result
}
