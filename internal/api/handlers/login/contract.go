package login

import (
	"context"
	"time"

	appointmentModels "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/appointments/models"
	identityModels "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/identity/models"
)

// IdentityService интерфейс сервиса аутентификации
type IdentityService interface {
	Login(ctx context.Context, req *identityModels.LoginRequest) (*identityModels.LoginResponse, error)
}

// AppointmentsService интерфейс сервиса встреч для проверки скорых встреч
type AppointmentsService interface {
	ImminentWithin(ctx context.Context, now time.Time, window time.Duration) (*appointmentModels.ImminentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
