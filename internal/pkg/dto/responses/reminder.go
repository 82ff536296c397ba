package responses

// SendReminder wraps the SMS provider's raw acknowledgment payload.
type SendReminder struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
}
