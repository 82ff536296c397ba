package contracts

import "context"

type SMSService interface {
	// SendSMS performs a single synchronous call to the SMS gateway and
	// returns the provider's decoded acknowledgment payload. No retries.
	SendSMS(ctx context.Context, to, message string) (interface{}, error)
}
