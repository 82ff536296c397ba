package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type identityService struct {
	BaseUrl   string
	JWTSecret string
	Log       *zap.Logger
}

func NewIdentityService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.IdentityService {
	return &identityService{
		BaseUrl:   internalConfig.Identity.BaseUrl,
		JWTSecret: internalConfig.Identity.JWTSecret,
		Log:       logger,
	}
}

// VerifyToken checks the access token the identity provider issued and
// returns its subject claim. Tokens are HS256-signed with the provider's
// project secret, so verification happens locally without a network call.
// The issuer claim must be rooted at the provider's project URL; tokens
// minted for another project share no secret, but the check keeps a
// misconfigured secret from accepting them silently.
func (s *identityService) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(s.JWTSecret), nil
	})
	if err != nil {
		s.Log.Warn("identityService.VerifyToken token rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	if s.BaseUrl != "" {
		issuer, _ := claims["iss"].(string)
		if !strings.HasPrefix(issuer, s.BaseUrl) {
			s.Log.Warn("identityService.VerifyToken issuer mismatch",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("issuer", issuer),
			)
			return "", exceptions.ErrTokenInvalidOrExpired(nil)
		}
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", exceptions.ErrTokenSubjectMissing(nil)
	}

	return subject, nil
}
