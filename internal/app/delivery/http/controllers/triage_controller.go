package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

type TriageController struct {
	Log           *zap.Logger
	TriageUsecase contracts.TriageUsecase
}

func NewTriageController(logger *zap.Logger, triageUsecase contracts.TriageUsecase) *TriageController {
	return &TriageController{
		Log:           logger,
		TriageUsecase: triageUsecase,
	}
}

func (ctrl *TriageController) Catalog(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SymptomCatalogGetSuccess, ctrl.TriageUsecase.Catalog())
}

func (ctrl *TriageController) CheckSymptoms(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var request requests.SymptomCheck
	if err := utils.DecodeJSONBody(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// The classifier itself is total over non-empty sets; the HTTP layer
	// owns the non-empty gate the client UI normally enforces.
	if len(request.Symptoms) == 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSymptomsRequired())
		return
	}

	recommendation := ctrl.TriageUsecase.Classify(request.Symptoms)

	ctrl.Log.Info("TriageController.CheckSymptoms succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSeverityKey, recommendation.Severity),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SymptomCheckSuccess, recommendation)
}
