package appointments

import (
	"context"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
	GetByContact(ctx context.Context, contactID int64) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64, appointmentType string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
