package update_customer

import (
	"context"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers/models"
)

// CustomersService интерфейс сервиса клиентов
type CustomersService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
