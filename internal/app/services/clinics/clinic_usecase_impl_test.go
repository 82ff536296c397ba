package clinics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type MockClinicRepository struct {
	mock.Mock
}

func (m *MockClinicRepository) FindAllClinics(ctx context.Context, city string) ([]models.Clinic, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Clinic), args.Error(1)
}

func (m *MockClinicRepository) FindClinicByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Clinic), args.Error(1)
}

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

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func newTestClinicUsecase(clinicRepository *MockClinicRepository, redisRepository *MockRedisRepository) *clinicUsecase {
	internalConfig := &config.InternalConfig{
		App: config.App{CacheTTLInMinutes: 5},
	}
	return NewClinicUsecase(clinicRepository, redisRepository, internalConfig, zap.NewNop()).(*clinicUsecase)
}

func TestClinicUsecase_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache Miss Loads From Repository And Caches", func(t *testing.T) {
		clinicRepository := new(MockClinicRepository)
		redisRepository := new(MockRedisRepository)

		redisRepository.On("Get", mock.Anything, constvars.CacheKeyClinicList).Return("", nil)
		clinicRepository.On("FindAllClinics", mock.Anything, "").
			Return([]models.Clinic{{ID: "clinic-1", Name: "Kilimani Health Centre", City: "Nairobi"}}, nil)
		redisRepository.On("Set", mock.Anything, constvars.CacheKeyClinicList, mock.Anything, 5*time.Minute).Return(nil)

		usecase := newTestClinicUsecase(clinicRepository, redisRepository)

		response, err := usecase.FindAll(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, response, 1)
		assert.Equal(t, "Kilimani Health Centre", response[0].Name)
		redisRepository.AssertExpectations(t)
	})

	t.Run("Cache Hit Skips The Repository", func(t *testing.T) {
		clinicRepository := new(MockClinicRepository)
		redisRepository := new(MockRedisRepository)

		cached, _ := json.Marshal([]responses.Clinic{{ID: "clinic-1", Name: "Kilimani Health Centre"}})
		redisRepository.On("Get", mock.Anything, constvars.CacheKeyClinicList).Return(string(cached), nil)

		usecase := newTestClinicUsecase(clinicRepository, redisRepository)

		response, err := usecase.FindAll(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, response, 1)
		clinicRepository.AssertNotCalled(t, "FindAllClinics")
	})

	t.Run("City Filter Uses Its Own Cache Key", func(t *testing.T) {
		clinicRepository := new(MockClinicRepository)
		redisRepository := new(MockRedisRepository)

		redisRepository.On("Get", mock.Anything, constvars.CacheKeyClinicList+":Nairobi").Return("", nil)
		clinicRepository.On("FindAllClinics", mock.Anything, "Nairobi").Return([]models.Clinic{}, nil)
		redisRepository.On("Set", mock.Anything, constvars.CacheKeyClinicList+":Nairobi", mock.Anything, mock.Anything).Return(nil)

		usecase := newTestClinicUsecase(clinicRepository, redisRepository)

		_, err := usecase.FindAll(ctx, "Nairobi")

		assert.NoError(t, err)
		redisRepository.AssertExpectations(t)
	})

	t.Run("Cache Write Failure Does Not Fail The Read", func(t *testing.T) {
		clinicRepository := new(MockClinicRepository)
		redisRepository := new(MockRedisRepository)

		redisRepository.On("Get", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
		clinicRepository.On("FindAllClinics", mock.Anything, "").Return([]models.Clinic{}, nil)
		redisRepository.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("connection refused"))

		usecase := newTestClinicUsecase(clinicRepository, redisRepository)

		response, err := usecase.FindAll(ctx, "")

		assert.NoError(t, err)
		assert.NotNil(t, response)
	})
}

func TestClinicUsecase_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Known Clinic Is Returned", func(t *testing.T) {
		clinicRepository := new(MockClinicRepository)
		redisRepository := new(MockRedisRepository)

		clinicRepository.On("FindClinicByID", mock.Anything, "clinic-1").
			Return(&models.Clinic{ID: "clinic-1", Name: "Kilimani Health Centre"}, nil)

		usecase := newTestClinicUsecase(clinicRepository, redisRepository)

		response, err := usecase.FindByID(ctx, "clinic-1")

		assert.NoError(t, err)
		assert.Equal(t, "Kilimani Health Centre", response.Name)
	})

	t.Run("Unknown Clinic Is Not Found", func(t *testing.T) {
		clinicRepository := new(MockClinicRepository)
		redisRepository := new(MockRedisRepository)

		clinicRepository.On("FindClinicByID", mock.Anything, "missing").Return(nil, nil)

		usecase := newTestClinicUsecase(clinicRepository, redisRepository)

		response, err := usecase.FindByID(ctx, "missing")

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
