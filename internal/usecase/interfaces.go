package usecase

import (
	"context"

	"reptileshop/pkg/mailer"
)

// Notifier delivers transactional email. Callers treat it as best-effort:
// errors are logged by the caller and never abort the triggering operation.
type Notifier interface {
	Send(ctx context.Context, job mailer.EmailJob) error
}

// TokenManager issues and verifies bearer credentials.
type TokenManager interface {
	Generate(userID string, isAdmin bool) (string, error)
	GenerateResetToken(userID string) (string, error)
	Verify(token string) (userID string, isAdmin bool, err error)
	VerifyResetToken(token string) (userID string, err error)
}
