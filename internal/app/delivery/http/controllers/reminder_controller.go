package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

type ReminderController struct {
	Log             *zap.Logger
	ReminderUsecase contracts.ReminderUsecase
	RequestTimeout  time.Duration
}

func NewReminderController(logger *zap.Logger, reminderUsecase contracts.ReminderUsecase, internalConfig *config.InternalConfig) *ReminderController {
	return &ReminderController{
		Log:             logger,
		ReminderUsecase: reminderUsecase,
		RequestTimeout:  time.Duration(internalConfig.App.RequestTimeoutInSeconds+internalConfig.SMS.RequestTimeoutInSeconds) * time.Second,
	}
}

// SendReminder owns its authentication handling instead of sitting behind
// the Authenticate middleware: the dispatcher pipeline decides the order of
// its own failure stages, and the emitted wire format matches what the
// booking client already consumes.
func (ctrl *ReminderController) SendReminder(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctrl.Log.Info("ReminderController.SendReminder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.SendReminder
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		ctrl.respondError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ReminderUsecase.SendReminder(ctx, r.Header.Get(constvars.HeaderAuthorization), &request)
	if err != nil {
		ctrl.Log.Error("Error in ReminderUsecase.SendReminder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			ctrl.respondError(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.respondError(w, err)
		return
	}

	ctrl.Log.Info("ReminderController.SendReminder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// respondError keeps the reminder endpoint's error wire format: client
// validation and authorization short-circuits answer {"error": ...}, while
// configuration and provider failures answer {"success": false, "error": ...}
// carrying the diagnostic detail (provider status and body, or the missing
// setting name) so a failed dispatch can be debugged from the response.
func (ctrl *ReminderController) respondError(w http.ResponseWriter, err error) {
	statusCode := constvars.StatusInternalServerError
	message := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		statusCode = customErr.StatusCode
		message = customErr.ClientMessage
		for _, location := range customErr.Locations {
			ctrl.Log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else {
		ctrl.Log.Error(err.Error())
	}

	payload := map[string]interface{}{"error": message}
	if statusCode >= constvars.StatusInternalServerError {
		payload["success"] = false
		if customErr != nil && customErr.DevMessage != "" {
			payload["error"] = customErr.DevMessage
		}
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
