package constvars

// Client-facing messages. Kept deliberately vague for anything that could
// leak internals; field-level detail only for validation errors.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientNotAppointmentOwner           = "forbidden: you do not own this appointment"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientClinicNotFound                = "clinic not found"
	ErrClientArticleNotFound               = "article not found"
	ErrClientProfileNotFound               = "profile not found"
	ErrClientReminderNotSent               = "reminder could not be sent"
	ErrClientSymptomsRequired              = "select at least one symptom"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientTooManyReminders              = "too many reminder requests, try again later"
)

// Developer-facing messages, surfaced only outside production.
const (
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthSubjectMissing        = "token has no subject claim"
	ErrDevMissingRequestID          = "request id not found in request context"
	ErrDevMissingUserID             = "user id not found in request context"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON payload"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON payload"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response body"
	ErrDevSMSProviderRejected      = "SMS provider returned status %d: %s"
	ErrDevSMSConfigMissing         = "%s is not configured"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevDBFailedToFindDocument   = "database failed to find document"
	ErrDevDBFailedToInsertDocument = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument = "database failed to update document"
	ErrDevDBFailedToDeleteDocument = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevRedisSet                   = "redis failed to set key"
	ErrDevRedisGet                   = "redis failed to get key %s"
	ErrDevRedisDelete                = "redis failed to delete key"
	ErrDevRedisIncrement             = "redis failed to increment key"
	ErrDevAppointmentNotOwned        = "appointment owner does not match authenticated subject"
	ErrDevAppointmentNotFound        = "appointment does not exist"
	ErrDevReminderRateLimited        = "reminder dispatch quota exceeded"
)
