package reports

import (
	"context"
	"fmt"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/reports/models"
)

// Service сервис агрегированных отчетов
type Service struct {
	reportRepo ReportRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(reportRepo ReportRepository, logger Logger) *Service {
	return &Service{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// ByTypeAndMonth возвращает количество встреч по типу и месяцу
func (s *Service) ByTypeAndMonth(ctx context.Context) (*models.TypeMonthlyResponse, error) {
	rows, err := s.reportRepo.CountByTypeAndMonth(ctx)
	if err != nil {
		s.logger.Error("ByTypeAndMonth: repository error: %v", err)
		return nil, fmt.Errorf("%w: ByTypeAndMonth - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ByTypeAndMonth: %d rows", len(rows))
	return models.FromDomainTypeCounts(rows), nil
}

// ByCustomerAndMonth возвращает количество встреч по клиенту и месяцу
func (s *Service) ByCustomerAndMonth(ctx context.Context) (*models.CustomerMonthlyResponse, error) {
	rows, err := s.reportRepo.CountByCustomerAndMonth(ctx)
	if err != nil {
		s.logger.Error("ByCustomerAndMonth: repository error: %v", err)
		return nil, fmt.Errorf("%w: ByCustomerAndMonth - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ByCustomerAndMonth: %d rows", len(rows))
	return models.FromDomainCustomerCounts(rows), nil
}

// ByContactAndMonth возвращает количество встреч по контакту и месяцу
func (s *Service) ByContactAndMonth(ctx context.Context) (*models.ContactMonthlyResponse, error) {
	rows, err := s.reportRepo.CountByContactAndMonth(ctx)
	if err != nil {
		s.logger.Error("ByContactAndMonth: repository error: %v", err)
		return nil, fmt.Errorf("%w: ByContactAndMonth - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ByContactAndMonth: %d rows", len(rows))
	return models.FromDomainContactCounts(rows), nil
}
