package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	appointmentRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/appointment"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/appointments/models"
)

// Service сервис для работы со встречами
type Service struct {
	appointmentRepo AppointmentRepository
	businessLoc     *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса встреч.
// businessLoc - часовой пояс бизнеса, в нем считаются границы недели и месяца.
func NewService(appointmentRepo AppointmentRepository, businessLoc *time.Location, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		businessLoc:     businessLoc,
		logger:          logger,
	}
}

// List получает список встреч с фильтром отображения.
// ref - опорная дата фильтра, обычно текущий момент.
func (s *Service) List(ctx context.Context, view domain.AppointmentView, ref time.Time) (*models.ListResponse, error) {
	if !view.Valid() {
		s.logger.Warn("List: unknown view %q", view)
		return nil, fmt.Errorf("%w: %q", ErrInvalidView, view)
	}

	s.logger.Info("List: fetching appointments view=%s", view)

	appointments, err := s.appointmentRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	filtered := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if matchesView(a, view, ref, s.businessLoc) {
			filtered = append(filtered, a)
		}
	}

	s.logger.Info("List: view=%s matched %d of %d appointments", view, len(filtered), len(appointments))
	return &models.ListResponse{
		Appointments: models.FromDomainAppointments(filtered, s.businessLoc),
	}, nil
}

// GetByID получает встречу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment, s.businessLoc), nil
}

// Delete удаляет встречу. Указанный тип должен совпадать с типом встречи,
// иначе удаление отклоняется.
func (s *Service) Delete(ctx context.Context, id int64, appointmentType string) error {
	s.logger.Info("Delete: deleting appointment id=%d type=%q", id, appointmentType)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if appointment.Type != appointmentType {
		s.logger.Warn("Delete: type mismatch for appointment id=%d: have %q, got %q", id, appointment.Type, appointmentType)
		return fmt.Errorf("%w: appointment id=%d has type %q", ErrTypeMismatch, id, appointment.Type)
	}

	if err := s.appointmentRepo.Delete(ctx, id, appointmentType); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// ContactSchedule получает расписание встреч контакта
func (s *Service) ContactSchedule(ctx context.Context, contactID int64) (*models.ListResponse, error) {
	s.logger.Info("ContactSchedule: fetching schedule for contact id=%d", contactID)

	appointments, err := s.appointmentRepo.GetByContact(ctx, contactID)
	if err != nil {
		s.logger.Error("ContactSchedule: repository error for contact id=%d: %v", contactID, err)
		return nil, fmt.Errorf("%w: ContactSchedule - repository error: %v", ErrInternal, err)
	}

	return &models.ListResponse{
		Appointments: models.FromDomainAppointments(appointments, s.businessLoc),
	}, nil
}

// ImminentWithin находит встречи, начинающиеся строго в интервале (now, now+window).
// Используется на входе в систему для предупреждения о скорых встречах.
func (s *Service) ImminentWithin(ctx context.Context, now time.Time, window time.Duration) (*models.ImminentResponse, error) {
	appointments, err := s.appointmentRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ImminentWithin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ImminentWithin - repository error: %v", ErrInternal, err)
	}

	imminent := make([]*domain.Appointment, 0)
	for _, a := range appointments {
		if a.StartsWithin(now, window) {
			imminent = append(imminent, a)
		}
	}

	s.logger.Info("ImminentWithin: %d appointments start within %s", len(imminent), window)
	return &models.ImminentResponse{
		Appointments: models.FromDomainAppointments(imminent, s.businessLoc),
	}, nil
}
