package services

import (
	"context"

	"github.com/abcbank/abc_bank_app/internal/core/domain"
	"github.com/abcbank/abc_bank_app/internal/dto"
)

// RegistrationSvcFacade creates new accounts.
type RegistrationSvcFacade interface {
	// Register validates every field of the request, assigns the next
	// account number and stores the account. On validation failure it
	// returns an error wrapping apperrors.ErrValidation that names the
	// offending field; nothing is stored.
	Register(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error)
}

// AuthSvcFacade authenticates sessions against stored credentials.
type AuthSvcFacade interface {
	// Authenticate matches the account number text and password against the
	// ledger. Failures below the attempt ceiling return
	// apperrors.ErrAuthenticationFailed; once the ceiling has been reached
	// every further attempt returns apperrors.ErrTooManyAttempts without
	// evaluating the credentials.
	Authenticate(ctx context.Context, accountNumberText, password string) (*domain.Account, error)

	// FailedAttempts reports the current value of the failure counter.
	FailedAttempts() int

	// LockedOut reports whether the attempt ceiling has been reached, so the
	// boundary can refuse to prompt for credentials again.
	LockedOut() bool
}
