package list_appointments

import (
	"context"
	"time"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса встреч
type AppointmentsService interface {
	List(ctx context.Context, view domain.AppointmentView, ref time.Time) (*models.ListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
