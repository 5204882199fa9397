package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	customerRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/customer"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers/models"
)

type fakeCustomerRepo struct {
	byID    map[int64]*domain.Customer
	deleted []int64
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	c.ID = 1
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetAll(_ context.Context) ([]*domain.Customer, error) {
	result := make([]*domain.Customer, 0, len(f.byID))
	for _, c := range f.byID {
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	if _, ok := f.byID[c.ID]; !ok {
		return customerRepo.ErrCustomerNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return customerRepo.ErrCustomerNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAppointmentRepo struct {
	byCustomer map[int64]int64
	order      []string
}

func (f *fakeAppointmentRepo) DeleteByCustomer(_ context.Context, customerID int64) (int64, error) {
	f.order = append(f.order, "appointments")
	return f.byCustomer[customerID], nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seededRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: map[int64]*domain.Customer{
		1: {ID: 1, Name: "Daddy Warbucks", Address: "1919 Boardwalk", PostalCode: "01291", Phone: "869-908-1875", DivisionID: 29},
	}}
}

func TestDeleteCascadesAppointmentsInOneTransaction(t *testing.T) {
	customers := seededRepo()
	appointments := &fakeAppointmentRepo{byCustomer: map[int64]int64{1: 3}}
	tx := &fakeTxManager{}
	svc := NewService(customers, appointments, tx, nopLogger{})

	resp, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.DeletedAppointments)
	assert.Equal(t, []int64{1}, customers.deleted)
	assert.Equal(t, []string{"appointments"}, appointments.order, "appointments must be removed before the customer")
	assert.Equal(t, 1, tx.calls)
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(seededRepo(), &fakeAppointmentRepo{byCustomer: map[int64]int64{}}, &fakeTxManager{}, nopLogger{})

	_, err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := NewService(seededRepo(), &fakeAppointmentRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name:    "  ",
		Address: "1919 Boardwalk",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(seededRepo(), &fakeAppointmentRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateCustomerRequest{
		Name:       "Daddy Warbucks",
		Address:    "1919 Boardwalk",
		PostalCode: "01291",
		Phone:      "869-908-1875",
		DivisionID: 29,
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetByID(t *testing.T) {
	svc := NewService(seededRepo(), &fakeAppointmentRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Daddy Warbucks", resp.Name)
}
