package identity

import (
	"context"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ActivityRecorder пишет запись о попытке входа в журнал активности
type ActivityRecorder interface {
	Record(username string, success bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
