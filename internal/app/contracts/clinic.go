package contracts

import (
	"context"

	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

type ClinicUsecase interface {
	FindAll(ctx context.Context, city string) ([]responses.Clinic, error)
	FindByID(ctx context.Context, clinicID string) (*responses.Clinic, error)
}

type ClinicRepository interface {
	FindAllClinics(ctx context.Context, city string) ([]models.Clinic, error)
	FindClinicByID(ctx context.Context, clinicID string) (*models.Clinic, error)
}
