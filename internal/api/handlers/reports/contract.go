package reports

import (
	"context"

	appointmentModels "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/appointments/models"
	reportModels "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/reports/models"
)

// ReportsService интерфейс сервиса отчетов
type ReportsService interface {
	ByTypeAndMonth(ctx context.Context) (*reportModels.TypeMonthlyResponse, error)
	ByCustomerAndMonth(ctx context.Context) (*reportModels.CustomerMonthlyResponse, error)
	ByContactAndMonth(ctx context.Context) (*reportModels.ContactMonthlyResponse, error)
}

// AppointmentsService интерфейс сервиса встреч для расписания контакта
type AppointmentsService interface {
	ContactSchedule(ctx context.Context, contactID int64) (*appointmentModels.ListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
