package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	appointmentRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/appointment"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/scheduling"
)

type fakeAppointmentRepo struct {
	byID     map[int64]*domain.Appointment
	existing []*domain.Appointment
	updated  *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeAppointmentRepo) GetByCustomer(_ context.Context, _ int64) ([]*domain.Appointment, error) {
	return f.existing, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	if _, ok := f.byID[a.ID]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.updated = a
	return nil
}

type fakeCustomerRepo struct{}

func (fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	return &domain.Customer{ID: id}, nil
}

type fakeContactRepo struct{}

func (fakeContactRepo) GetContact(_ context.Context, id int64) (*domain.Contact, error) {
	return &domain.Contact{ID: id}, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestValidator(t *testing.T) Validator {
	t.Helper()
	hours, err := scheduling.NewBusinessHours(domain.DefaultBusinessTimeZone, domain.DefaultOpeningTime, domain.DefaultOperatingHours)
	require.NoError(t, err)
	return scheduling.NewValidator(hours, domain.DefaultMaxAppointmentHours)
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	ts, err := time.ParseInLocation(domain.DateTimeFormat, value, ny)
	require.NoError(t, err)
	return ts
}

func storedAppointment(t *testing.T) *domain.Appointment {
	t.Helper()
	return &domain.Appointment{
		ID:          7,
		CustomerID:  1,
		UserID:      1,
		ContactID:   1,
		Title:       "Planning",
		Description: "Quarterly planning session",
		Location:    "Main office",
		Type:        "Planning Session",
		Start:       at(t, "2024-06-03T09:00"),
		End:         at(t, "2024-06-03T10:00"),
	}
}

func updateRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		ID:          7,
		CustomerID:  1,
		UserID:      1,
		ContactID:   1,
		Title:       "Planning",
		Description: "Quarterly planning session",
		Location:    "Main office",
		Type:        "Planning Session",
		Start:       at(t, "2024-06-03T09:30"),
		End:         at(t, "2024-06-03T10:30"),
	}
}

func newUseCase(repo *fakeAppointmentRepo, v Validator) *UseCase {
	return NewUseCase(repo, fakeCustomerRepo{}, fakeContactRepo{}, fakeUserRepo{}, v, fakeTxManager{}, nopLogger{})
}

func TestExecuteExcludesOwnAppointmentFromOverlap(t *testing.T) {
	stored := storedAppointment(t)
	repo := &fakeAppointmentRepo{
		byID:     map[int64]*domain.Appointment{7: stored},
		existing: []*domain.Appointment{stored},
	}
	uc := newUseCase(repo, newTestValidator(t))

	// Сдвигаем встречу на полчаса - новый интервал пересекается
	// только с ее же старым интервалом
	resp, err := uc.Execute(context.Background(), updateRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	require.NotNil(t, repo.updated)
	assert.Equal(t, at(t, "2024-06-03T09:30"), repo.updated.Start)
}

func TestExecuteRejectsOverlapWithOtherAppointment(t *testing.T) {
	stored := storedAppointment(t)
	other := storedAppointment(t)
	other.ID = 8
	other.Start = at(t, "2024-06-03T10:00")
	other.End = at(t, "2024-06-03T11:00")

	repo := &fakeAppointmentRepo{
		byID:     map[int64]*domain.Appointment{7: stored, 8: other},
		existing: []*domain.Appointment{stored, other},
	}
	uc := newUseCase(repo, newTestValidator(t))

	_, err := uc.Execute(context.Background(), updateRequest(t))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, scheduling.KindOverlap, validationErr.Result.Violations[0].Kind)
	assert.Nil(t, repo.updated)
}

func TestExecuteAppointmentNotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}
	uc := newUseCase(repo, newTestValidator(t))

	_, err := uc.Execute(context.Background(), updateRequest(t))
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}
	uc := newUseCase(repo, newTestValidator(t))

	req := updateRequest(t)
	req.ID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
