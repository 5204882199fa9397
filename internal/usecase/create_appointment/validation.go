package create_appointment

import (
	"fmt"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/scheduling"
)

// validateRequest валидирует входные данные запроса.
// Содержимое полей и временной интервал проверяет Validator,
// здесь отсекаются только заведомо бессмысленные запросы.
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ContactID <= 0 {
		return fmt.Errorf("%w: contactID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}

	return nil
}

// toCandidate собирает кандидата для проверки правил планирования
func toCandidate(req *Request) scheduling.Candidate {
	return scheduling.Candidate{
		CustomerID:  req.CustomerID,
		UserID:      req.UserID,
		ContactID:   req.ContactID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		Start:       req.Start,
		End:         req.End,
	}
}

// toIntervals конвертирует встречи клиента в интервалы для проверки пересечений
func toIntervals(appointments []*domain.Appointment) []scheduling.Interval {
	intervals := make([]scheduling.Interval, 0, len(appointments))
	for _, a := range appointments {
		intervals = append(intervals, scheduling.Interval{
			AppointmentID: a.ID,
			CustomerID:    a.CustomerID,
			Start:         a.Start,
			End:           a.End,
		})
	}
	return intervals
}
