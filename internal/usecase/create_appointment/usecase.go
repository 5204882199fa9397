package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	customerRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/customer"
	contactRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/reference"
	userRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/user"
)

// UseCase use case для создания встречи
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

// Execute выполняет use case создания встречи.
// Проверка пересечений и вставка идут в сериализуемой транзакции,
// чтобы два конкурирующих запроса не создали пересекающиеся встречи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, user=%d, contact=%d, start=%s",
		req.CustomerID, req.UserID, req.ContactID, req.Start.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Проверяем существование контакта
	if _, err := uc.contactRepo.GetContact(ctx, req.ContactID); err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			uc.logger.Warn("CreateAppointment: contact id=%d not found", req.ContactID)
			return nil, ErrContactNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get contact id=%d: %v", req.ContactID, err)
		return nil, fmt.Errorf("%w: failed to get contact: %v", ErrInternal, err)
	}

	// 4. Проверяем существование сотрудника
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 5. Проверка правил и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Загружаем существующие встречи клиента с блокировкой строк
		existing, err := uc.appointmentRepo.GetByCustomer(txCtx, req.CustomerID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get customer appointments: %v", err)
			return fmt.Errorf("%w: failed to get customer appointments: %v", ErrInternal, err)
		}

		// 5.2. Прогоняем кандидата через правила планирования.
		// Сбой загрузки выше - это ошибка, а не пустой список: валидация
		// на неполных данных пропустила бы пересечение.
		validation := uc.validator.Validate(toCandidate(req), toIntervals(existing))
		if !validation.Valid {
			uc.logger.Warn("CreateAppointment: rejected with %d violations", len(validation.Violations))
			return &ValidationError{Result: validation}
		}

		// 5.3. Создаем встречу
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerID:  req.CustomerID,
			UserID:      req.UserID,
			ContactID:   req.ContactID,
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			Type:        req.Type,
			Start:       req.Start,
			End:         req.End,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		CustomerID:  result.CustomerID,
		UserID:      result.UserID,
		ContactID:   result.ContactID,
		Title:       result.Title,
		Description: result.Description,
		Location:    result.Location,
		Type:        result.Type,
		Start:       result.Start,
		End:         result.End,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
