package reports

import (
	"context"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
)

// ReportRepository интерфейс репозитория отчетов
type ReportRepository interface {
	CountByTypeAndMonth(ctx context.Context) ([]*domain.TypeMonthlyCount, error)
	CountByCustomerAndMonth(ctx context.Context) ([]*domain.CustomerMonthlyCount, error)
	CountByContactAndMonth(ctx context.Context) ([]*domain.ContactMonthlyCount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
