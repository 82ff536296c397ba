package appointments

import (
	"context"

	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	ClinicRepository      contracts.ClinicRepository
	ProfileRepository     contracts.ProfileRepository
	ReminderUsecase       contracts.ReminderUsecase
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	clinicRepository contracts.ClinicRepository,
	profileRepository contracts.ProfileRepository,
	reminderUsecase contracts.ReminderUsecase,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		ClinicRepository:      clinicRepository,
		ProfileRepository:     profileRepository,
		ReminderUsecase:       reminderUsecase,
		Log:                   logger,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, userID, authorizationHeader string, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	u.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	clinic, err := u.ClinicRepository.FindClinicByID(ctx, request.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	appointment := &models.Appointment{
		UserID:          userID,
		ClinicID:        request.ClinicID,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          constvars.AppointmentStatusBooked,
		Notes:           request.Notes,
	}

	appointmentID, err := u.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	// An SMS reminder goes out right after booking when the patient has a
	// phone number on file. The booking already succeeded, so a failed
	// dispatch is logged and swallowed.
	reminderAttempted := u.dispatchBookingReminder(ctx, userID, authorizationHeader, appointmentID, clinic.Name, request)

	u.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	return &responses.CreateAppointment{
		ID:                appointmentID,
		Status:            constvars.AppointmentStatusBooked,
		ReminderAttempted: reminderAttempted,
	}, nil
}

func (u *appointmentUsecase) dispatchBookingReminder(ctx context.Context, userID, authorizationHeader, appointmentID, clinicName string, request *requests.CreateAppointment) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	profile, err := u.ProfileRepository.FindProfileByUserID(ctx, userID)
	if err != nil || profile == nil || profile.PhoneNumber == "" {
		return false
	}

	_, err = u.ReminderUsecase.SendReminder(ctx, authorizationHeader, &requests.SendReminder{
		AppointmentID:   appointmentID,
		PhoneNumber:     profile.PhoneNumber,
		PatientName:     profile.FirstName,
		ClinicName:      clinicName,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
	})
	if err != nil {
		u.Log.Warn("appointmentUsecase.CreateAppointment reminder dispatch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
	return true
}

func (u *appointmentUsecase) FindAllByUser(ctx context.Context, userID string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	u.Log.Info("appointmentUsecase.FindAllByUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	appointments, err := u.AppointmentRepository.FindAppointmentsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		item := responses.Appointment{
			ID:              appointment.ID,
			ClinicID:        appointment.ClinicID,
			AppointmentDate: appointment.AppointmentDate,
			AppointmentTime: appointment.AppointmentTime,
			Status:          appointment.Status,
			Notes:           appointment.Notes,
			ReminderSent:    appointment.ReminderSent,
		}
		clinic, err := u.ClinicRepository.FindClinicByID(ctx, appointment.ClinicID)
		if err == nil && clinic != nil {
			item.ClinicName = clinic.Name
			item.ClinicAddress = clinic.Address
			item.ClinicCity = clinic.City
		}
		response = append(response, item)
	}
	return response, nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, userID, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	u.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := u.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.UserID != userID {
		return exceptions.ErrAppointmentNotOwned(nil)
	}

	return u.AppointmentRepository.UpdateAppointmentStatus(ctx, appointmentID, constvars.AppointmentStatusCancelled)
}
