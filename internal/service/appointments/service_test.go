package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	appointmentRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/appointment"
)

type fakeRepo struct {
	all       []*domain.Appointment
	byContact []*domain.Appointment
	deleted   []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, a := range f.all {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeRepo) GetAll(_ context.Context) ([]*domain.Appointment, error) {
	return f.all, nil
}

func (f *fakeRepo) GetByContact(_ context.Context, _ int64) ([]*domain.Appointment, error) {
	return f.byContact, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64, _ string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func nyLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation(domain.DateTimeFormat, value, nyLoc(t))
	require.NoError(t, err)
	return ts
}

func appt(t *testing.T, id int64, start, end string) *domain.Appointment {
	t.Helper()
	return &domain.Appointment{
		ID:         id,
		CustomerID: 1,
		Type:       "Planning Session",
		Start:      at(t, start),
		End:        at(t, end),
	}
}

func newTestService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	return NewService(repo, nyLoc(t), nopLogger{})
}

func TestListViews(t *testing.T) {
	repo := &fakeRepo{all: []*domain.Appointment{
		appt(t, 1, "2024-06-03T09:00", "2024-06-03T10:00"), // понедельник опорной недели
		appt(t, 2, "2024-06-12T09:00", "2024-06-12T10:00"), // тот же месяц, следующая неделя
		appt(t, 3, "2024-07-01T09:00", "2024-07-01T10:00"), // следующий месяц
	}}
	svc := newTestService(t, repo)
	ref := at(t, "2024-06-03T08:00")

	tests := []struct {
		name    string
		view    domain.AppointmentView
		wantIDs []int64
	}{
		{"all returns everything", domain.ViewAll, []int64{1, 2, 3}},
		{"week keeps the next seven days", domain.ViewWeek, []int64{1}},
		{"month keeps the calendar month", domain.ViewMonth, []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(context.Background(), tt.view, ref)
			require.NoError(t, err)

			gotIDs := make([]int64, 0, len(resp.Appointments))
			for _, a := range resp.Appointments {
				gotIDs = append(gotIDs, a.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestListRejectsUnknownView(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.List(context.Background(), domain.AppointmentView("yearly"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestDeleteRequiresMatchingType(t *testing.T) {
	repo := &fakeRepo{all: []*domain.Appointment{appt(t, 5, "2024-06-03T09:00", "2024-06-03T10:00")}}
	svc := newTestService(t, repo)

	err := svc.Delete(context.Background(), 5, "De-Briefing")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Empty(t, repo.deleted)

	err = svc.Delete(context.Background(), 5, "Planning Session")
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestDeleteNotFound(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	err := svc.Delete(context.Background(), 99, "Planning Session")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestImminentWithin(t *testing.T) {
	now := at(t, "2024-06-03T08:50")
	repo := &fakeRepo{all: []*domain.Appointment{
		appt(t, 1, "2024-06-03T09:00", "2024-06-03T10:00"), // через 10 минут
		appt(t, 2, "2024-06-03T09:30", "2024-06-03T10:30"), // через 40 минут
		appt(t, 3, "2024-06-03T08:00", "2024-06-03T09:00"), // уже началась
	}}
	svc := newTestService(t, repo)

	resp, err := svc.ImminentWithin(context.Background(), now, 15*time.Minute)
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
}

func TestContactSchedule(t *testing.T) {
	repo := &fakeRepo{byContact: []*domain.Appointment{
		appt(t, 1, "2024-06-03T09:00", "2024-06-03T10:00"),
	}}
	svc := newTestService(t, repo)

	resp, err := svc.ContactSchedule(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "2024-06-03T09:00", resp.Appointments[0].Start)
	assert.Equal(t, "America/New_York", resp.Appointments[0].TimeZone)
}
