package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_AUTH_TOKEN_KEY           ContextKey = "auth_token"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "AFYA_SVC_"
)

const (
	ResourceAppointments = "appointments"
	ResourceClinics      = "clinics"
	ResourceArticles     = "articles"
	ResourceProfiles     = "profiles"
	ResourceReminders    = "reminders"
	ResourceSymptoms     = "symptoms"
)

const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusCancelled = "cancelled"
)

const (
	CacheKeyClinicList   = "cache:clinics"
	CacheKeyArticleList  = "cache:articles"
	CacheKeyClinicByID   = "cache:clinics:%s"
	CacheKeyArticleByID  = "cache:articles:%s"
	CacheListTTLInMinute = 5
)
