package delete_customer

import (
	"context"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers/models"
)

// CustomersService интерфейс сервиса клиентов
type CustomersService interface {
	Delete(ctx context.Context, id int64) (*models.DeleteResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
