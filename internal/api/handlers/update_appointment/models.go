package update_appointment

import (
	"fmt"
	"time"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	updateAppointment "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model.
// Start и End - наивное локальное время в поясе TimeZone.
type UpdateAppointmentRequest struct {
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

// AppointmentResponse HTTP response model
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
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) (*updateAppointment.Request, error) {
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", r.TimeZone, err)
	}

	start, err := time.ParseInLocation(domain.DateTimeFormat, r.Start, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid start %q: %w", r.Start, err)
	}

	end, err := time.ParseInLocation(domain.DateTimeFormat, r.End, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid end %q: %w", r.End, err)
	}

	return &updateAppointment.Request{
		ID:          id,
		CustomerID:  r.CustomerID,
		UserID:      r.UserID,
		ContactID:   r.ContactID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Type:        r.Type,
		Start:       start,
		End:         end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Время форматируется в поясе запроса.
func FromUseCaseResponse(resp *updateAppointment.Response, zone string) (*AppointmentResponse, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}

	return &AppointmentResponse{
		ID:          resp.ID,
		CustomerID:  resp.CustomerID,
		UserID:      resp.UserID,
		ContactID:   resp.ContactID,
		Title:       resp.Title,
		Description: resp.Description,
		Location:    resp.Location,
		Type:        resp.Type,
		Start:       resp.Start.In(loc).Format(domain.DateTimeFormat),
		End:         resp.End.In(loc).Format(domain.DateTimeFormat),
		TimeZone:    zone,
		CreatedAt:   resp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}
