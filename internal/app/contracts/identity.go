package contracts

import "context"

type IdentityService interface {
	// VerifyToken validates a bearer credential issued by the identity
	// provider and returns the caller's subject identifier.
	VerifyToken(ctx context.Context, token string) (string, error)
}
