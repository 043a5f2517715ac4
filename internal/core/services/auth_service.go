package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/core/domain"
	portsrepo "github.com/abcbank/abc_bank_app/internal/core/ports/repositories"
	portssvc "github.com/abcbank/abc_bank_app/internal/core/ports/services"
	"github.com/abcbank/abc_bank_app/internal/platform/logging"
	"github.com/abcbank/abc_bank_app/internal/utils"
)

// authService matches credentials against the ledger and enforces the
// fail-closed attempt ceiling. The failure counter is instance state, not
// package state; it resets only on a successful authentication.
type authService struct {
	accountRepo   portsrepo.AccountReader
	maxAttempts   int
	hashPasswords bool

	mu             sync.Mutex
	failedAttempts int
}

// NewAuthService creates the authentication service with the given attempt
// ceiling.
func NewAuthService(accountRepo portsrepo.AccountReader, maxAttempts int, hashPasswords bool) portssvc.AuthSvcFacade {
	return &authService{
		accountRepo:   accountRepo,
		maxAttempts:   maxAttempts,
		hashPasswords: hashPasswords,
	}
}

// Authenticate resolves the account by the exact string form of its number
// and compares the password. Once failedAttempts has reached the ceiling,
// every further call is ErrTooManyAttempts before any credential is even
// looked at; the credentials being correct this time does not matter.
func (s *authService) Authenticate(ctx context.Context, accountNumberText, password string) (*domain.Account, error) {
	logger := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failedAttempts >= s.maxAttempts {
		logger.Warn("login attempt ceiling reached, locking out",
			slog.Int("failed_attempts", s.failedAttempts),
		)
		return nil, apperrors.ErrTooManyAttempts
	}

	account, err := s.accountRepo.FindAccountByNumberText(ctx, accountNumberText)
	if err == nil && s.credentialMatches(password, account.Password) {
		s.failedAttempts = 0
		logger.Info("authentication succeeded",
			slog.Int64("account_number", account.AccountNumber),
		)
		return account, nil
	}

	s.failedAttempts++
	logger.Warn("authentication failed",
		slog.Int("failed_attempts", s.failedAttempts),
	)
	return nil, apperrors.ErrAuthenticationFailed
}

// FailedAttempts reports the current value of the failure counter.
func (s *authService) FailedAttempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failedAttempts
}

// LockedOut reports whether the attempt ceiling has been reached.
func (s *authService) LockedOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failedAttempts >= s.maxAttempts
}

func (s *authService) credentialMatches(supplied, stored string) bool {
	if s.hashPasswords {
		return utils.CheckPasswordHash(supplied, stored)
	}
	// Plain equality is the specified default behavior.
	return supplied == stored
}
