package middlewares

import (
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
)

type Middlewares struct {
	Log             *zap.Logger
	IdentityService contracts.IdentityService
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(identityService contracts.IdentityService, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		Log:             logger,
		IdentityService: identityService,
		InternalConfig:  internalConfig,
	}
}
