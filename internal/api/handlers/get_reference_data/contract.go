package get_reference_data

import (
	"context"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
)

// ReferenceRepository интерфейс репозитория справочных данных
type ReferenceRepository interface {
	Contacts(ctx context.Context) ([]*domain.Contact, error)
	Countries(ctx context.Context) ([]*domain.Country, error)
	DivisionsByCountry(ctx context.Context, countryID int64) ([]*domain.Division, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
