package identity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/user"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/identity/models"
)

// Service сервис аутентификации пользователей
type Service struct {
	userRepo UserRepository
	activity ActivityRecorder
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, activity ActivityRecorder, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		activity: activity,
		logger:   logger,
	}
}

// Login проверяет логин и пароль. Каждая попытка входа фиксируется
// в журнале активности независимо от результата.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.recordActivity(req.Username, false)
			s.logger.Warn("Login: unknown username %q", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordActivity(req.Username, false)
		s.logger.Warn("Login: invalid password for username %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	s.recordActivity(req.Username, true)
	s.logger.Info("Login: user %q logged in, id=%d", user.Username, user.ID)

	return &models.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// recordActivity пишет попытку входа в журнал. Ошибка журнала не влияет
// на результат входа.
func (s *Service) recordActivity(username string, success bool) {
	if err := s.activity.Record(username, success); err != nil {
		s.logger.Error("Login: failed to record activity for %q: %v", username, err)
	}
}
