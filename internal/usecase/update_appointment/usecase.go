package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	appointmentRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/appointment"
	customerRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/customer"
	contactRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/reference"
	userRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/user"
)

// UseCase use case для обновления встречи
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	contactRepo     ContactRepository
	userRepo        UserRepository
	validator       Validator
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	contactRepo ContactRepository,
	userRepo UserRepository,
	validator Validator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		contactRepo:     contactRepo,
		userRepo:        userRepo,
		validator:       validator,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления встречи.
// Обновляемая встреча исключается из проверки пересечений по своему ID,
// иначе она конфликтовала бы сама с собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, customer=%d, start=%s",
		req.ID, req.CustomerID, req.Start.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование встречи
	if _, err := uc.appointmentRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("UpdateAppointment: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Проверяем существование контакта
	if _, err := uc.contactRepo.GetContact(ctx, req.ContactID); err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			uc.logger.Warn("UpdateAppointment: contact id=%d not found", req.ContactID)
			return nil, ErrContactNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get contact id=%d: %v", req.ContactID, err)
		return nil, fmt.Errorf("%w: failed to get contact: %v", ErrInternal, err)
	}

	// 5. Проверяем существование сотрудника
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("UpdateAppointment: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	updated := &domain.Appointment{
		ID:          req.ID,
		CustomerID:  req.CustomerID,
		UserID:      req.UserID,
		ContactID:   req.ContactID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		Start:       req.Start,
		End:         req.End,
	}

	// 6. Проверка правил и обновление в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Загружаем существующие встречи клиента с блокировкой строк
		existing, err := uc.appointmentRepo.GetByCustomer(txCtx, req.CustomerID)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get customer appointments: %v", err)
			return fmt.Errorf("%w: failed to get customer appointments: %v", ErrInternal, err)
		}

		// 6.2. Прогоняем кандидата через правила планирования
		validation := uc.validator.Validate(toCandidate(req), toIntervals(existing))
		if !validation.Valid {
			uc.logger.Warn("UpdateAppointment: rejected with %d violations", len(validation.Violations))
			return &ValidationError{Result: validation}
		}

		// 6.3. Обновляем встречу
		if err := uc.appointmentRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: updated appointment id=%d", req.ID)

	return &Response{
		ID:          updated.ID,
		CustomerID:  updated.CustomerID,
		UserID:      updated.UserID,
		ContactID:   updated.ContactID,
		Title:       updated.Title,
		Description: updated.Description,
		Location:    updated.Location,
		Type:        updated.Type,
		Start:       updated.Start,
		End:         updated.End,
		CreatedAt:   updated.CreatedAt,
		UpdatedAt:   updated.UpdatedAt,
	}, nil
}
