package create_appointment

import (
	"fmt"
	"time"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	createAppointment "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model.
// Start и End - наивное локальное время в поясе TimeZone.
type CreateAppointmentRequest struct {
	CustomerID  int64  `json:"customerId"`
	UserID      int64  `json:"userId"`
	ContactID   int64  `json:"contactId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Start       string `json:"start"`    // "2024-06-03T09:00"
	End         string `json:"end"`      // "2024-06-03T10:00"
	TimeZone    string `json:"timeZone"` // IANA имя, например "America/Chicago"
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

// ParseInterval разбирает Start и End в поясе TimeZone
func ParseInterval(startRaw, endRaw, zone string) (start, end time.Time, err error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown time zone %q: %w", zone, err)
	}

	start, err = time.ParseInLocation(domain.DateTimeFormat, startRaw, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start %q: %w", startRaw, err)
	}

	end, err = time.ParseInLocation(domain.DateTimeFormat, endRaw, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end %q: %w", endRaw, err)
	}

	return start, end, nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	start, end, err := ParseInterval(r.Start, r.End, r.TimeZone)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
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
func FromUseCaseResponse(resp *createAppointment.Response, zone string) (*AppointmentResponse, error) {
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
