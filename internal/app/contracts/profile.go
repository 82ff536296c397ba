package contracts

import (
	"context"

	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

type ProfileUsecase interface {
	FindByUserID(ctx context.Context, userID string) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.Profile, error)
}

type ProfileRepository interface {
	FindProfileByUserID(ctx context.Context, userID string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) error
}
