package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
	userRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/user"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/identity/models"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type recordedAttempt struct {
	username string
	success  bool
}

type fakeActivityRecorder struct {
	attempts []recordedAttempt
}

func (f *fakeActivityRecorder) Record(username string, success bool) error {
	f.attempts = append(f.attempts, recordedAttempt{username: username, success: success})
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *fakeActivityRecorder) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("test"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*domain.User{
		"test": {ID: 1, Username: "test", PasswordHash: string(hash)},
	}}
	activity := &fakeActivityRecorder{}
	return NewService(repo, activity, nopLogger{}), activity
}

func TestLoginSuccess(t *testing.T) {
	svc, activity := newTestService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: "test", Password: "test"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "test", resp.Username)
	require.Len(t, activity.attempts, 1)
	assert.True(t, activity.attempts[0].success)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, activity := newTestService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "test", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.Len(t, activity.attempts, 1)
	assert.False(t, activity.attempts[0].success)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, activity := newTestService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "nobody", Password: "test"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Неудачная попытка с неизвестным именем тоже попадает в журнал
	require.Len(t, activity.attempts, 1)
	assert.Equal(t, "nobody", activity.attempts[0].username)
	assert.False(t, activity.attempts[0].success)
}
