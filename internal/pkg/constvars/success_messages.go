package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Triage messages
	SymptomCatalogGetSuccess = "get symptom catalog successfully"
	SymptomCheckSuccess      = "symptoms checked successfully"

	// Reminder messages
	ReminderSentSuccess = "reminder sent successfully"

	// Appointment messages
	AppointmentCreatedSuccess   = "appointment booked successfully"
	AppointmentGetSuccess       = "get appointments successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"

	// Clinic and article messages
	ClinicGetSuccess  = "get clinics successfully"
	ArticleGetSuccess = "get articles successfully"

	// Profile messages
	ProfileGetSuccess     = "get profile successfully"
	ProfileUpdatedSuccess = "profile updated successfully"
)
