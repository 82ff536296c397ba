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

type ArticleController struct {
	Log            *zap.Logger
	ArticleUsecase contracts.ArticleUsecase
	RequestTimeout time.Duration
}

func NewArticleController(logger *zap.Logger, articleUsecase contracts.ArticleUsecase, internalConfig *config.InternalConfig) *ArticleController {
	return &ArticleController{
		Log:            logger,
		ArticleUsecase: articleUsecase,
		RequestTimeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *ArticleController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ArticleUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("Error in ArticleUsecase.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ArticleGetSuccess, response)
}

func (ctrl *ArticleController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	articleID := chi.URLParam(r, "article_id")

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ArticleUsecase.FindByID(ctx, articleID)
	if err != nil {
		ctrl.Log.Error("Error in ArticleUsecase.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingArticleIDKey, articleID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ArticleGetSuccess, response)
}
