package update_appointment

import (
	"context"

	updateAppointment "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/usecase/update_appointment"
)

// UpdateAppointmentUseCase интерфейс use case обновления встречи
type UpdateAppointmentUseCase interface {
	Execute(ctx context.Context, req *updateAppointment.Request) (*updateAppointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
