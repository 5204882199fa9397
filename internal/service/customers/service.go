package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	customerRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/customer"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers/models"
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// List получает список всех клиентов
func (s *Service) List(ctx context.Context) (*models.ListResponse, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.ListResponse{Customers: models.FromDomainCustomers(customers)}, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	if missing := req.Validate(); len(missing) > 0 {
		s.logger.Warn("Create: missing required fields: %v", missing)
		return nil, fmt.Errorf("%w: missing fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	created, err := s.customerRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Перечитываем, чтобы вернуть названия региона и страны
	customer, err := s.customerRepo.GetByID(ctx, created.ID)
	if err != nil {
		s.logger.Error("Create: failed to reload customer id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Create - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created customer id=%d", customer.ID)
	return models.FromDomainCustomer(customer), nil
}

// Update обновляет данные клиента
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	if missing := req.Validate(); len(missing) > 0 {
		s.logger.Warn("Update: missing required fields: %v", missing)
		return nil, fmt.Errorf("%w: missing fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	if err := s.customerRepo.Update(ctx, req.ToDomain(id)); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated customer id=%d", id)
	return models.FromDomainCustomer(customer), nil
}

// Delete удаляет клиента вместе со всеми его встречами в одной транзакции
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteResponse, error) {
	s.logger.Info("Delete: deleting customer id=%d with appointments", id)

	var deletedAppointments int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Сначала удаляем встречи клиента, иначе нарушится внешний ключ
		count, err := s.appointmentRepo.DeleteByCustomer(ctx, id)
		if err != nil {
			return fmt.Errorf("delete appointments: %w", err)
		}
		deletedAppointments = count

		// 2. Удаляем самого клиента
		if err := s.customerRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Delete: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Delete: transaction failed for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted customer id=%d and %d appointments", id, deletedAppointments)
	return &models.DeleteResponse{DeletedAppointments: deletedAppointments}, nil
}
