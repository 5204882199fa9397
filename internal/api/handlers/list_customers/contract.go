package list_customers

import (
	"context"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers/models"
)

// CustomersService интерфейс сервиса клиентов
type CustomersService interface {
	List(ctx context.Context) (*models.ListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
