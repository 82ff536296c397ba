package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

type ClinicController struct {
	Log            *zap.Logger
	ClinicUsecase  contracts.ClinicUsecase
	RequestTimeout time.Duration
}

func NewClinicController(logger *zap.Logger, clinicUsecase contracts.ClinicUsecase, internalConfig *config.InternalConfig) *ClinicController {
	return &ClinicController{
		Log:            logger,
		ClinicUsecase:  clinicUsecase,
		RequestTimeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *ClinicController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ClinicUsecase.FindAll(ctx, r.URL.Query().Get("city"))
	if err != nil {
		ctrl.Log.Error("Error in ClinicUsecase.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClinicGetSuccess, response)
}

func (ctrl *ClinicController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	clinicID := chi.URLParam(r, "clinic_id")

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ClinicUsecase.FindByID(ctx, clinicID)
	if err != nil {
		ctrl.Log.Error("Error in ClinicUsecase.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClinicGetSuccess, response)
}
