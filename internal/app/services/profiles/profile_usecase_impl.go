package profiles

import (
	"context"

	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

type profileUsecase struct {
	ProfileRepository contracts.ProfileRepository
	Log               *zap.Logger
}

func NewProfileUsecase(profileRepository contracts.ProfileRepository, logger *zap.Logger) contracts.ProfileUsecase {
	return &profileUsecase{
		ProfileRepository: profileRepository,
		Log:               logger,
	}
}

func (u *profileUsecase) FindByUserID(ctx context.Context, userID string) (*responses.Profile, error) {
	profile, err := u.ProfileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// A signed-in user without a stored profile gets an empty one
		// rather than an error; the client treats it as a blank form.
		return &responses.Profile{}, nil
	}

	return &responses.Profile{
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		PhoneNumber: profile.PhoneNumber,
	}, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	u.Log.Info("profileUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	profile := &models.Profile{
		UserID:      userID,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		PhoneNumber: utils.NormalizePhoneNumber(request.PhoneNumber),
	}

	if err := u.ProfileRepository.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}

	return &responses.Profile{
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		PhoneNumber: profile.PhoneNumber,
	}, nil
}
