package constvars

const (
	SMSProviderProductionBaseUrl = "https://api.africastalking.com"
	SMSProviderSandboxBaseUrl    = "https://api.sandbox.africastalking.com"
	SMSProviderMessagingPath     = "/version1/messaging"

	// SMSProviderSandboxUsername routes dispatches to the provider's test
	// environment when configured as the account username.
	SMSProviderSandboxUsername = "sandbox"

	SMSProviderApiKeyHeader = "apiKey"

	SMSFormFieldUsername = "username"
	SMSFormFieldTo       = "to"
	SMSFormFieldMessage  = "message"

	// ReminderMessageTemplate expects patient name, clinic name, date, time.
	ReminderMessageTemplate = "Hi %s! This is a reminder for your appointment at %s on %s at %s. Please arrive 10 minutes early. - AfyaConnect"
	ReminderDefaultGreeting = "there"
)

const (
	MongoCollectionAppointments = "appointments"
	MongoCollectionClinics      = "clinics"
	MongoCollectionArticles     = "health_articles"
	MongoCollectionProfiles     = "profiles"
)
