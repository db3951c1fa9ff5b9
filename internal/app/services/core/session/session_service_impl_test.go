package session

import (
	"context"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
	"hospital-booking-service/internal/pkg/utils"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *mockRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *mockRedisRepository) CompareAndExpire(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.AppJWT{Secret: "test-secret", SessionExpTimeInHours: 2},
	}
}

func TestSessionService_CreateSession(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRedisRepository)
	repo.On("Set", ctx, mock.MatchedBy(func(key string) bool {
		return len(key) > len(constvars.RedisKeyPrefixSession)
	}), mock.AnythingOfType("*models.Session"), 2*time.Hour).Return(nil)

	svc := NewSessionService(repo, testConfig(), zap.NewNop())
	session := &models.Session{Role: constvars.RoleTypeDoctor, DoctorID: "doc-1"}

	token, err := svc.CreateSession(ctx, session)
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)

	sessionID, err := utils.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, sessionID, "token should carry the stored session id")
	repo.AssertCalled(t, "Set", ctx, constvars.RedisKeyPrefixSession+session.SessionID, session, 2*time.Hour)
}

func TestSessionService_LookupSessionData(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "session:abc").Return(`{"session_id":"abc","role":"patient"}`, nil)

		svc := NewSessionService(repo, testConfig(), zap.NewNop())
		data, err := svc.LookupSessionData(ctx, "abc")
		require.NoError(t, err)

		session, err := svc.ParseSessionData(ctx, data)
		require.NoError(t, err)
		assert.True(t, session.IsPatient())
	})

	t.Run("expired session is unauthorized", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "session:gone").Return("", nil)

		_, err := NewSessionService(repo, testConfig(), zap.NewNop()).LookupSessionData(ctx, "gone")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCodeOf(err))
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRedisRepository)
	repo.On("Delete", ctx, "session:abc").Return(nil)

	err := NewSessionService(repo, testConfig(), zap.NewNop()).DeleteSession(ctx, "abc")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
