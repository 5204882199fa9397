package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	customerRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/customer"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/scheduling"
)

type fakeAppointmentRepo struct {
	existing   []*domain.Appointment
	getErr     error
	created    *domain.Appointment
	nextID     int64
	createErr  error
	createCall int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	f.createCall++
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = f.nextID
	f.created = a
	return a, nil
}

func (f *fakeAppointmentRepo) GetByCustomer(_ context.Context, _ int64) ([]*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

type fakeCustomerRepo struct {
	err error
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Customer{ID: id}, nil
}

type fakeContactRepo struct {
	err error
}

func (f *fakeContactRepo) GetContact(_ context.Context, id int64) (*domain.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Contact{ID: id}, nil
}

type fakeUserRepo struct {
	err error
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: id}, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
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

func newUseCase(repo *fakeAppointmentRepo, customers *fakeCustomerRepo, contacts *fakeContactRepo, users *fakeUserRepo, v Validator) *UseCase {
	return NewUseCase(repo, customers, contacts, users, v, &fakeTxManager{}, nopLogger{})
}

func TestExecuteCreatesAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 42}
	uc := newUseCase(repo, &fakeCustomerRepo{}, &fakeContactRepo{}, &fakeUserRepo{}, newTestValidator(t))

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Planning", resp.Title)
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(1), repo.created.CustomerID)
}

func TestExecuteRejectsOverlap(t *testing.T) {
	repo := &fakeAppointmentRepo{
		nextID: 42,
		existing: []*domain.Appointment{
			{ID: 7, CustomerID: 1, Start: at(t, "2024-06-03T09:30"), End: at(t, "2024-06-03T10:30")},
		},
	}
	uc := newUseCase(repo, &fakeCustomerRepo{}, &fakeContactRepo{}, &fakeUserRepo{}, newTestValidator(t))

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Result.Violations, 1)
	assert.Equal(t, scheduling.KindOverlap, validationErr.Result.Violations[0].Kind)
	assert.Zero(t, repo.createCall, "appointment must not be created on validation failure")
}

func TestExecuteRejectsOutsideBusinessHours(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 1}
	uc := newUseCase(repo, &fakeCustomerRepo{}, &fakeContactRepo{}, &fakeUserRepo{}, newTestValidator(t))

	req := validRequest(t)
	req.Start = at(t, "2024-06-03T06:00")
	req.End = at(t, "2024-06-03T07:00")

	_, err := uc.Execute(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, scheduling.KindOutsideBusinessHours, validationErr.Result.Violations[0].Kind)
}

func TestExecuteCustomerNotFound(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeCustomerRepo{err: customerRepo.ErrCustomerNotFound},
		&fakeContactRepo{},
		&fakeUserRepo{},
		newTestValidator(t),
	)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecuteFetchFailureIsInternal(t *testing.T) {
	// Сбой загрузки существующих встреч - это внутренняя ошибка,
	// а не пустой список для валидации
	repo := &fakeAppointmentRepo{getErr: errors.New("connection reset")}
	uc := newUseCase(repo, &fakeCustomerRepo{}, &fakeContactRepo{}, &fakeUserRepo{}, newTestValidator(t))

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.Zero(t, repo.createCall)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCustomerRepo{}, &fakeContactRepo{}, &fakeUserRepo{}, newTestValidator(t))

	req := validRequest(t)
	req.CustomerID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
