package sms

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

var (
	smsServiceInstance contracts.SMSService
	onceSMSService     sync.Once
)

type africasTalkingService struct {
	BaseUrl  string
	Username string
	ApiKey   string
	Client   *http.Client
	Log      *zap.Logger
}

// NewAfricasTalkingService selects the provider environment from the
// configured account username: the sandbox sentinel routes every dispatch to
// the provider's test endpoint.
func NewAfricasTalkingService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SMSService {
	onceSMSService.Do(func() {
		smsServiceInstance = &africasTalkingService{
			BaseUrl:  providerBaseUrl(internalConfig.SMS.Username),
			Username: internalConfig.SMS.Username,
			ApiKey:   internalConfig.SMS.ApiKey,
			Client: &http.Client{
				Timeout: time.Duration(internalConfig.SMS.RequestTimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
	})
	return smsServiceInstance
}

func providerBaseUrl(username string) string {
	if username == constvars.SMSProviderSandboxUsername {
		return constvars.SMSProviderSandboxBaseUrl
	}
	return constvars.SMSProviderProductionBaseUrl
}

func (s *africasTalkingService) SendSMS(ctx context.Context, to, message string) (interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("africasTalkingService.SendSMS called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	formData := url.Values{}
	formData.Set(constvars.SMSFormFieldUsername, s.Username)
	formData.Set(constvars.SMSFormFieldTo, to)
	formData.Set(constvars.SMSFormFieldMessage, message)

	endpoint := s.BaseUrl + constvars.SMSProviderMessagingPath
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		s.Log.Error("africasTalkingService.SendSMS error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.Header.Set(constvars.SMSProviderApiKeyHeader, s.ApiKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("africasTalkingService.SendSMS error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		s.Log.Error("africasTalkingService.SendSMS error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.Log.Error("africasTalkingService.SendSMS provider rejected message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingProviderStatusKey, resp.StatusCode),
		)
		return nil, exceptions.ErrSMSProviderRejected(resp.StatusCode, string(bodyBytes))
	}

	var result interface{}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		// The provider promised JSON; fall back to the raw body rather
		// than failing a send that already went through.
		result = string(bodyBytes)
	}

	s.Log.Info("africasTalkingService.SendSMS succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProviderStatusKey, resp.StatusCode),
	)

	return result, nil
}
