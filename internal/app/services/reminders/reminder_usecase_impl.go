package reminders

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/services/shared/ratelimiter"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

type reminderUsecase struct {
	SMSService            contracts.SMSService
	IdentityService       contracts.IdentityService
	AppointmentRepository contracts.AppointmentRepository
	DispatchLimiter       *ratelimiter.DispatchLimiter
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewReminderUsecase(
	smsService contracts.SMSService,
	identityService contracts.IdentityService,
	appointmentRepository contracts.AppointmentRepository,
	dispatchLimiter *ratelimiter.DispatchLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReminderUsecase {
	return &reminderUsecase{
		SMSService:            smsService,
		IdentityService:       identityService,
		AppointmentRepository: appointmentRepository,
		DispatchLimiter:       dispatchLimiter,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// SendReminder executes the dispatch pipeline in order. Each stage either
// passes or terminates the request with a typed error; nothing after a
// failed stage runs, so no provider call happens for rejected requests.
func (u *reminderUsecase) SendReminder(ctx context.Context, authorizationHeader string, request *requests.SendReminder) (*responses.SendReminder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	u.Log.Info("reminderUsecase.SendReminder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	// Preflight: provider credentials must be configured.
	if u.InternalConfig.SMS.ApiKey == "" {
		return nil, exceptions.ErrSMSConfigMissing("AFRICASTALKING_API_KEY")
	}
	if u.InternalConfig.SMS.Username == "" {
		return nil, exceptions.ErrSMSConfigMissing("AFRICASTALKING_USERNAME")
	}

	// Authenticate: a bearer credential is required.
	if !strings.HasPrefix(authorizationHeader, constvars.BearerTokenPrefix) {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	token := strings.TrimPrefix(authorizationHeader, constvars.BearerTokenPrefix)

	subject, err := u.IdentityService.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	// Authorize: when an appointment is referenced, the caller must own it.
	if request.AppointmentID != "" {
		appointment, err := u.AppointmentRepository.FindAppointmentByID(ctx, request.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, exceptions.ErrAppointmentNotFound(nil)
		}
		if appointment.UserID != subject {
			u.Log.Warn("reminderUsecase.SendReminder ownership mismatch",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
				zap.String(constvars.LoggingUserIDKey, subject),
			)
			return nil, exceptions.ErrAppointmentNotOwned(nil)
		}
	} else {
		// Without an appointment reference there is nothing to check
		// ownership against; the caller is trusted to have verified the
		// contact details belong to the subject. Logged so the gap is
		// auditable.
		u.Log.Warn("reminderUsecase.SendReminder ownership check skipped, no appointment reference",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, subject),
		)
	}

	// Input validation: name every missing field at once.
	var missingFields []string
	if request.PhoneNumber == "" {
		missingFields = append(missingFields, "phoneNumber")
	}
	if request.ClinicName == "" {
		missingFields = append(missingFields, "clinicName")
	}
	if request.AppointmentDate == "" {
		missingFields = append(missingFields, "appointmentDate")
	}
	if request.AppointmentTime == "" {
		missingFields = append(missingFields, "appointmentTime")
	}
	if len(missingFields) > 0 {
		return nil, exceptions.ErrReminderMissingFields(strings.Join(missingFields, ", "))
	}

	patientName := request.PatientName
	if patientName == "" {
		patientName = constvars.ReminderDefaultGreeting
	}
	message := fmt.Sprintf(constvars.ReminderMessageTemplate,
		patientName,
		request.ClinicName,
		request.AppointmentDate,
		request.AppointmentTime,
	)

	destination := utils.NormalizePhoneNumber(request.PhoneNumber)

	limiterResult, err := u.DispatchLimiter.ApplyDispatchLimiter(ctx, &ratelimiter.ApplyDispatchLimiterInput{
		Destination:       destination,
		WindowDurationSec: u.InternalConfig.SMS.SendWindowInSeconds,
		MaxQuota:          u.InternalConfig.SMS.MaxSendsPerWindow,
	})
	if err != nil {
		return nil, err
	}
	if !limiterResult.Allowed {
		return nil, exceptions.ErrReminderRateLimited(limiterResult.RetryAfterSecs)
	}

	// Dispatch: one synchronous provider call, no retries.
	providerResult, err := u.SMSService.SendSMS(ctx, destination, message)
	if err != nil {
		return nil, err
	}

	// Post-update: best effort. The SMS already left, so a failed flag
	// write never turns the response into a failure.
	if request.AppointmentID != "" {
		if err := u.AppointmentRepository.MarkReminderSent(ctx, request.AppointmentID); err != nil {
			u.Log.Error("reminderUsecase.SendReminder failed to mark reminder as sent",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
				zap.Error(err),
			)
		}
	}

	u.Log.Info("reminderUsecase.SendReminder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	return &responses.SendReminder{
		Success: true,
		Result:  providerResult,
	}, nil
}
