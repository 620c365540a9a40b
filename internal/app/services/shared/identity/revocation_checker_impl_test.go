package identity

import (
	"context"
	"errors"
	"practicare-service/internal/app/config"
	"practicare-service/internal/app/contracts"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test-jwt-secret"

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	args := m.Called(ctx, key, values)
	return args.Error(0)
}

func (m *MockRedisRepository) IsSetMember(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: testSecret},
	}
}

func TestRevocationChecker_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("token absent from the revoked set is valid", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("IsSetMember", mock.Anything, RevokedTokenSetKey, "jti-1").Return(false, nil)

		checker := NewRevocationChecker(zap.NewNop(), redisRepository, testInternalConfig())
		token := signTestToken(t, jwt.MapClaims{"jti": "jti-1", "sub": "o1-id", "role": "Owner"})

		state, err := checker.Check(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, contracts.TokenValid, state)
	})

	t.Run("token in the revoked set is revoked", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("IsSetMember", mock.Anything, RevokedTokenSetKey, "jti-2").Return(true, nil)

		checker := NewRevocationChecker(zap.NewNop(), redisRepository, testInternalConfig())
		token := signTestToken(t, jwt.MapClaims{"jti": "jti-2", "sub": "o1-id", "role": "Owner"})

		state, err := checker.Check(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, contracts.TokenRevoked, state)
	})

	t.Run("lookup failure is invalid, never valid", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("IsSetMember", mock.Anything, RevokedTokenSetKey, "jti-3").
			Return(false, errors.New("redis unavailable"))

		checker := NewRevocationChecker(zap.NewNop(), redisRepository, testInternalConfig())
		token := signTestToken(t, jwt.MapClaims{"jti": "jti-3", "sub": "o1-id", "role": "Owner"})

		state, err := checker.Check(ctx, token)
		assert.Error(t, err)
		assert.Equal(t, contracts.TokenInvalid, state)
	})

	t.Run("token without jti is invalid", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)

		checker := NewRevocationChecker(zap.NewNop(), redisRepository, testInternalConfig())
		token := signTestToken(t, jwt.MapClaims{"sub": "o1-id", "role": "Owner"})

		state, err := checker.Check(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, contracts.TokenInvalid, state)
		redisRepository.AssertNotCalled(t, "IsSetMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("tampered token is invalid", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)

		checker := NewRevocationChecker(zap.NewNop(), redisRepository, testInternalConfig())
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"jti": "jti-4"})
		signed, err := token.SignedString([]byte("some-other-secret"))
		assert.NoError(t, err)

		state, err := checker.Check(ctx, signed)
		assert.Error(t, err)
		assert.Equal(t, contracts.TokenInvalid, state)
	})
}
