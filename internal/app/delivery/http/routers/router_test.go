package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/middlewares"
	"github.com/r-weda/my-afya-link/internal/app/services/triage"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, userID, bearerToken string, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	args := m.Called(ctx, userID, bearerToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreateAppointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindAllByUser(ctx context.Context, userID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, userID, appointmentID string) error {
	args := m.Called(ctx, userID, appointmentID)
	return args.Error(0)
}

type MockClinicUsecase struct {
	mock.Mock
}

func (m *MockClinicUsecase) FindAll(ctx context.Context, city string) ([]responses.Clinic, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Clinic), args.Error(1)
}

func (m *MockClinicUsecase) FindByID(ctx context.Context, clinicID string) (*responses.Clinic, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Clinic), args.Error(1)
}

type MockArticleUsecase struct {
	mock.Mock
}

func (m *MockArticleUsecase) FindAll(ctx context.Context) ([]responses.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Article), args.Error(1)
}

func (m *MockArticleUsecase) FindByID(ctx context.Context, articleID string) (*responses.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Article), args.Error(1)
}

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) FindByUserID(ctx context.Context, userID string) (*responses.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Profile), args.Error(1)
}

func (m *MockProfileUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.Profile, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Profile), args.Error(1)
}

type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func newTestRouter(identityService *MockIdentityService) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:          "api",
			Version:                 "v1",
			MaxRequests:             100,
			RequestTimeoutInSeconds: 5,
		},
		SMS: config.AppSMS{RequestTimeoutInSeconds: 5},
	}

	middlewareInstance := middlewares.NewMiddlewares(identityService, internalConfig, logger)

	triageUsecase := triage.NewTriageUsecase()

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewareInstance,
		controllers.NewTriageController(logger, triageUsecase),
		controllers.NewReminderController(logger, new(MockReminderUsecase), internalConfig),
		controllers.NewAppointmentController(logger, new(MockAppointmentUsecase), internalConfig),
		controllers.NewClinicController(logger, new(MockClinicUsecase), internalConfig),
		controllers.NewArticleController(logger, new(MockArticleUsecase), internalConfig),
		controllers.NewProfileController(logger, new(MockProfileUsecase), internalConfig),
	)
	return router
}

func TestRouter_CORSPreflight(t *testing.T) {
	identityService := new(MockIdentityService)
	router := newTestRouter(identityService)

	req := httptest.NewRequest("OPTIONS", "/api/v1/reminders", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "authorization, content-type, x-client-info, apikey")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	// Preflight never reaches the dispatcher, so no auth failure can occur.
	identityService.AssertNotCalled(t, "VerifyToken")
}

func TestRouter_SymptomEndpoints(t *testing.T) {
	t.Run("Catalog Is Public", func(t *testing.T) {
		router := newTestRouter(new(MockIdentityService))

		req := httptest.NewRequest("GET", "/api/v1/symptoms", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, true, payload["success"])
		assert.Len(t, payload["data"], 12)
	})

	t.Run("Empty Symptom Set Is A Bad Request", func(t *testing.T) {
		router := newTestRouter(new(MockIdentityService))

		body, _ := json.Marshal(requests.SymptomCheck{Symptoms: []string{}})
		req := httptest.NewRequest("POST", "/api/v1/symptom-checks", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, false, payload["success"])
	})

	t.Run("Urgent Symptoms Classify High", func(t *testing.T) {
		router := newTestRouter(new(MockIdentityService))

		body, _ := json.Marshal(requests.SymptomCheck{Symptoms: []string{"Chest pain"}})
		req := httptest.NewRequest("POST", "/api/v1/symptom-checks", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var payload struct {
			Success bool                     `json:"success"`
			Data    responses.Recommendation `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.True(t, payload.Success)
		assert.Equal(t, "high", payload.Data.Severity)
		assert.Equal(t, "Call 999 or 112 for emergencies", payload.Data.Action)
	})
}

func TestRouter_ProtectedEndpointsRequireAuth(t *testing.T) {
	router := newTestRouter(new(MockIdentityService))

	for _, target := range []struct{ method, path string }{
		{"GET", "/api/v1/profile"},
		{"GET", "/api/v1/appointments"},
		{"POST", "/api/v1/appointments"},
		{"PATCH", "/api/v1/appointments/appt-1/cancel"},
	} {
		req := httptest.NewRequest(target.method, target.path, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "%s %s", target.method, target.path)
	}
}
