package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/core/domain"
	portsrepo "github.com/abcbank/abc_bank_app/internal/core/ports/repositories"
	portssvc "github.com/abcbank/abc_bank_app/internal/core/ports/services"
	"github.com/abcbank/abc_bank_app/internal/core/validation"
	"github.com/abcbank/abc_bank_app/internal/dto"
	"github.com/abcbank/abc_bank_app/internal/platform/logging"
	"github.com/abcbank/abc_bank_app/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// fieldLabels maps struct field names to the labels used in error messages.
var fieldLabels = map[string]string{
	"FirstName":   "first name",
	"LastName":    "last name",
	"Email":       "email",
	"DOB":         "date of birth",
	"PhoneNumber": "phone number",
	"Password":    "password",
}

type registrationService struct {
	accountRepo   portsrepo.AccountRepositoryFacade
	hashPasswords bool
	now           func() time.Time
}

// NewRegistrationService creates the account-creation service. When
// hashPasswords is set the stored credential is a bcrypt hash instead of
// the plain password.
func NewRegistrationService(accountRepo portsrepo.AccountRepositoryFacade, hashPasswords bool) portssvc.RegistrationSvcFacade {
	return &registrationService{
		accountRepo:   accountRepo,
		hashPasswords: hashPasswords,
		now:           time.Now,
	}
}

// Register validates the whole request, then stores the account in a single
// atomic step. The caller drives per-field retry; this gate exists so that
// a caller skipping the retry loop still cannot admit an invalid account.
func (s *registrationService) Register(ctx context.Context, req dto.RegisterAccountRequest) (*domain.Account, error) {
	logger := logging.FromContext(ctx)

	if err := validation.ValidateStruct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			label, ok := fieldLabels[verrs[0].StructField()]
			if !ok {
				label = verrs[0].StructField()
			}
			return nil, fmt.Errorf("%w: invalid %s", apperrors.ErrValidation, label)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Any parseable decimal is accepted as a starting balance, negative
	// and zero included.
	balance, err := decimal.NewFromString(req.StartingBalance)
	if err != nil {
		return nil, fmt.Errorf("%w: starting balance %q", apperrors.ErrInvalidAmount, req.StartingBalance)
	}

	credential := req.Password
	if s.hashPasswords {
		credential, err = utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	now := s.now()
	account := domain.Account{
		Password:    credential,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Address:     req.Address,
		DOB:         req.DOB,
		PhoneNumber: req.PhoneNumber,
		Balance:     balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("account created",
		slog.Int64("account_number", created.AccountNumber),
	)
	return created, nil
}
