package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	RequestTimeout     time.Duration
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		RequestTimeout:     time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.Create userID not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingUserID(nil))
		return
	}
	authHeader, _ := r.Context().Value(constvars.CONTEXT_AUTH_TOKEN_KEY).(string)

	var request requests.CreateAppointment
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, userID, authHeader, &request)
	if err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, response)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingUserID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAllByUser(ctx, userID)
	if err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.FindAllByUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentGetSuccess, response)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingUserID(nil))
		return
	}

	appointmentID := chi.URLParam(r, "appointment_id")

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	if err := ctrl.AppointmentUsecase.CancelAppointment(ctx, userID, appointmentID); err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.CancelAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, nil)
}
