package clinics

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type clinicUsecase struct {
	ClinicRepository contracts.ClinicRepository
	RedisRepository  contracts.RedisRepository
	CacheTTL         time.Duration
	Log              *zap.Logger
}

func NewClinicUsecase(
	clinicRepository contracts.ClinicRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ClinicUsecase {
	return &clinicUsecase{
		ClinicRepository: clinicRepository,
		RedisRepository:  redisRepository,
		CacheTTL:         time.Duration(internalConfig.App.CacheTTLInMinutes) * time.Minute,
		Log:              logger,
	}
}

func (u *clinicUsecase) FindAll(ctx context.Context, city string) ([]responses.Clinic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cacheKey := constvars.CacheKeyClinicList
	if city != "" {
		cacheKey = fmt.Sprintf("%s:%s", constvars.CacheKeyClinicList, city)
	}

	if cached, err := u.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var response []responses.Clinic
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return response, nil
		}
	}

	clinics, err := u.ClinicRepository.FindAllClinics(ctx, city)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Clinic, 0, len(clinics))
	for _, clinic := range clinics {
		response = append(response, mapClinicResponse(&clinic))
	}

	if err := u.RedisRepository.Set(ctx, cacheKey, response, u.CacheTTL); err != nil {
		u.Log.Warn("clinicUsecase.FindAll failed to cache clinic list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return response, nil
}

func (u *clinicUsecase) FindByID(ctx context.Context, clinicID string) (*responses.Clinic, error) {
	clinic, err := u.ClinicRepository.FindClinicByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	response := mapClinicResponse(clinic)
	return &response, nil
}

func mapClinicResponse(clinic *models.Clinic) responses.Clinic {
	return responses.Clinic{
		ID:             clinic.ID,
		Name:           clinic.Name,
		Address:        clinic.Address,
		City:           clinic.City,
		PhoneNumber:    clinic.PhoneNumber,
		OperatingHours: clinic.OperatingHours,
		Services:       clinic.Services,
		IsVerified:     clinic.IsVerified,
		Latitude:       clinic.Latitude,
		Longitude:      clinic.Longitude,
	}
}
