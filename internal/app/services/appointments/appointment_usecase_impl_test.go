package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	args := m.Called(ctx, appointmentID, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) MarkReminderSent(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

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

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type MockReminderUsecase struct {
	mock.Mock
}

func (m *MockReminderUsecase) SendReminder(ctx context.Context, authorizationHeader string, request *requests.SendReminder) (*responses.SendReminder, error) {
	args := m.Called(ctx, authorizationHeader, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SendReminder), args.Error(1)
}

func validCreateRequest() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		ClinicID:        "clinic-1",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:30",
		Notes:           "first visit",
	}
}

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Booking Dispatches Reminder When Phone On File", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		clinicRepository.On("FindClinicByID", mock.Anything, "clinic-1").
			Return(&models.Clinic{ID: "clinic-1", Name: "Kilimani Health Centre"}, nil)
		appointmentRepository.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Return("appt-1", nil)
		profileRepository.On("FindProfileByUserID", mock.Anything, "user-1").
			Return(&models.Profile{UserID: "user-1", FirstName: "Jane", PhoneNumber: "+254712345678"}, nil)
		reminderUsecase.On("SendReminder", mock.Anything, "Bearer good-token", mock.MatchedBy(func(r *requests.SendReminder) bool {
			return r.AppointmentID == "appt-1" &&
				r.PhoneNumber == "+254712345678" &&
				r.PatientName == "Jane" &&
				r.ClinicName == "Kilimani Health Centre"
		})).Return(&responses.SendReminder{Success: true}, nil)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		response, err := usecase.CreateAppointment(ctx, "user-1", "Bearer good-token", validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "appt-1", response.ID)
		assert.Equal(t, constvars.AppointmentStatusBooked, response.Status)
		assert.True(t, response.ReminderAttempted)
		reminderUsecase.AssertExpectations(t)
	})

	t.Run("Booking Without Phone Skips Reminder", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		clinicRepository.On("FindClinicByID", mock.Anything, "clinic-1").
			Return(&models.Clinic{ID: "clinic-1", Name: "Kilimani Health Centre"}, nil)
		appointmentRepository.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Return("appt-1", nil)
		profileRepository.On("FindProfileByUserID", mock.Anything, "user-1").
			Return(&models.Profile{UserID: "user-1", FirstName: "Jane"}, nil)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		response, err := usecase.CreateAppointment(ctx, "user-1", "Bearer good-token", validCreateRequest())

		assert.NoError(t, err)
		assert.False(t, response.ReminderAttempted)
		reminderUsecase.AssertNotCalled(t, "SendReminder")
	})

	t.Run("Failed Reminder Does Not Fail The Booking", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		clinicRepository.On("FindClinicByID", mock.Anything, "clinic-1").
			Return(&models.Clinic{ID: "clinic-1", Name: "Kilimani Health Centre"}, nil)
		appointmentRepository.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Return("appt-1", nil)
		profileRepository.On("FindProfileByUserID", mock.Anything, "user-1").
			Return(&models.Profile{UserID: "user-1", PhoneNumber: "+254712345678"}, nil)
		reminderUsecase.On("SendReminder", mock.Anything, mock.Anything, mock.AnythingOfType("*requests.SendReminder")).
			Return(nil, exceptions.ErrSMSProviderRejected(500, "gateway down"))

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		response, err := usecase.CreateAppointment(ctx, "user-1", "Bearer good-token", validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "appt-1", response.ID)
		assert.True(t, response.ReminderAttempted)
	})

	t.Run("Unknown Clinic Rejects The Booking", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		clinicRepository.On("FindClinicByID", mock.Anything, "clinic-1").Return(nil, nil)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		response, err := usecase.CreateAppointment(ctx, "user-1", "Bearer good-token", validCreateRequest())

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		appointmentRepository.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("Invalid Date Format Rejects The Booking", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		request := validCreateRequest()
		request.AppointmentDate = "15/09/2026"
		response, err := usecase.CreateAppointment(ctx, "user-1", "Bearer good-token", request)

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		clinicRepository.AssertNotCalled(t, "FindClinicByID")
	})
}

func TestAppointmentUsecase_FindAllByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Appointments Are Joined With Clinic Details", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		appointmentRepository.On("FindAppointmentsByUserID", mock.Anything, "user-1").
			Return([]models.Appointment{
				{ID: "appt-1", ClinicID: "clinic-1", Status: constvars.AppointmentStatusBooked},
			}, nil)
		clinicRepository.On("FindClinicByID", mock.Anything, "clinic-1").
			Return(&models.Clinic{ID: "clinic-1", Name: "Kilimani Health Centre", Address: "Argwings Kodhek Rd", City: "Nairobi"}, nil)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		response, err := usecase.FindAllByUser(ctx, "user-1")

		assert.NoError(t, err)
		assert.Len(t, response, 1)
		assert.Equal(t, "Kilimani Health Centre", response[0].ClinicName)
		assert.Equal(t, "Nairobi", response[0].ClinicCity)
	})

	t.Run("No Appointments Yields Empty List", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		appointmentRepository.On("FindAppointmentsByUserID", mock.Anything, "user-1").
			Return([]models.Appointment{}, nil)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		response, err := usecase.FindAllByUser(ctx, "user-1")

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Empty(t, response)
	})
}

func TestAppointmentUsecase_CancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Can Cancel", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		appointmentRepository.On("FindAppointmentByID", mock.Anything, "appt-1").
			Return(&models.Appointment{ID: "appt-1", UserID: "user-1"}, nil)
		appointmentRepository.On("UpdateAppointmentStatus", mock.Anything, "appt-1", constvars.AppointmentStatusCancelled).
			Return(nil)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		err := usecase.CancelAppointment(ctx, "user-1", "appt-1")

		assert.NoError(t, err)
		appointmentRepository.AssertExpectations(t)
	})

	t.Run("Foreign Appointment Cannot Be Cancelled", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		appointmentRepository.On("FindAppointmentByID", mock.Anything, "appt-1").
			Return(&models.Appointment{ID: "appt-1", UserID: "someone-else"}, nil)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		err := usecase.CancelAppointment(ctx, "user-1", "appt-1")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		appointmentRepository.AssertNotCalled(t, "UpdateAppointmentStatus")
	})

	t.Run("Unknown Appointment Is Not Found", func(t *testing.T) {
		appointmentRepository := new(MockAppointmentRepository)
		clinicRepository := new(MockClinicRepository)
		profileRepository := new(MockProfileRepository)
		reminderUsecase := new(MockReminderUsecase)

		appointmentRepository.On("FindAppointmentByID", mock.Anything, "appt-1").Return(nil, nil)

		usecase := NewAppointmentUsecase(appointmentRepository, clinicRepository, profileRepository, reminderUsecase, zap.NewNop())

		err := usecase.CancelAppointment(ctx, "user-1", "appt-1")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
