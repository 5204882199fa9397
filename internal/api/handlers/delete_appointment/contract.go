package delete_appointment

import "context"

// AppointmentsService интерфейс сервиса встреч
type AppointmentsService interface {
	Delete(ctx context.Context, id int64, appointmentType string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
