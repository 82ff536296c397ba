package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingUserIDKey         = "user_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseLengthKey = "response_length"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingClinicIDKey       = "clinic_id"
	LoggingArticleIDKey      = "article_id"
	LoggingSeverityKey       = "severity"
	LoggingProviderStatusKey = "provider_status"
)
