package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
	RequestTimeout time.Duration
}

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase, internalConfig *config.InternalConfig) *ProfileController {
	return &ProfileController{
		Log:            logger,
		ProfileUsecase: profileUsecase,
		RequestTimeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *ProfileController) Find(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingUserID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ProfileUsecase.FindByUserID(ctx, userID)
	if err != nil {
		ctrl.Log.Error("Error in ProfileUsecase.FindByUserID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, response)
}

func (ctrl *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingUserID(nil))
		return
	}

	var request requests.UpdateProfile
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ProfileUsecase.UpdateProfile(ctx, userID, &request)
	if err != nil {
		ctrl.Log.Error("Error in ProfileUsecase.UpdateProfile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProfileController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, response)
}
