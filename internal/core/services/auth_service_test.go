package services_test

import (
	"context"
	"testing"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/core/domain"
	portssvc "github.com/abcbank/abc_bank_app/internal/core/ports/services"
	"github.com/abcbank/abc_bank_app/internal/core/services"
	"github.com/abcbank/abc_bank_app/internal/repositories/memory"
	"github.com/abcbank/abc_bank_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const maxAttempts = 3

// The auth tests run against the real in-memory repository so that the
// exact string-form identity match is exercised end to end.
type AuthServiceTestSuite struct {
	suite.Suite
	repo    *memory.AccountRepository
	service portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.repo = memory.NewAccountRepository(1001)
	suite.service = services.NewAuthService(suite.repo, maxAttempts, false)

	_, err := suite.repo.CreateAccount(context.Background(), domain.Account{
		Password:  "abc123!",
		FirstName: "Alice",
		Balance:   decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_Success() {
	account, err := suite.service.Authenticate(context.Background(), "1001", "abc123!")

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(int64(1001), account.AccountNumber)
	suite.Equal(0, suite.service.FailedAttempts())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_WrongPassword() {
	account, err := suite.service.Authenticate(context.Background(), "1001", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	suite.Nil(account)
	suite.Equal(1, suite.service.FailedAttempts())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_UnknownAccount() {
	_, err := suite.service.Authenticate(context.Background(), "9999", "abc123!")

	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	suite.Equal(1, suite.service.FailedAttempts())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_NumberFormMustMatchExactly() {
	// "01001" parses to 1001 but its string form differs, so it matches
	// nothing.
	_, err := suite.service.Authenticate(context.Background(), "01001", "abc123!")

	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_LockoutAfterCeiling() {
	ctx := context.Background()

	for i := 0; i < maxAttempts; i++ {
		_, err := suite.service.Authenticate(ctx, "1001", "wrong")
		suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	}
	suite.True(suite.service.LockedOut())

	// The fourth attempt is terminal even though the credentials are now
	// correct.
	account, err := suite.service.Authenticate(ctx, "1001", "abc123!")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTooManyAttempts)
	suite.Nil(account)

	// And it stays terminal.
	_, err = suite.service.Authenticate(ctx, "1001", "abc123!")
	suite.ErrorIs(err, apperrors.ErrTooManyAttempts)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_SuccessResetsCounter() {
	ctx := context.Background()

	_, err := suite.service.Authenticate(ctx, "1001", "wrong")
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	_, err = suite.service.Authenticate(ctx, "1001", "wrong")
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	suite.Equal(2, suite.service.FailedAttempts())

	_, err = suite.service.Authenticate(ctx, "1001", "abc123!")
	suite.Require().NoError(err)
	suite.Equal(0, suite.service.FailedAttempts())
	suite.False(suite.service.LockedOut())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_HashedCredentialMode() {
	hash, err := utils.HashPassword("abc123!")
	suite.Require().NoError(err)

	repo := memory.NewAccountRepository(1001)
	_, err = repo.CreateAccount(context.Background(), domain.Account{Password: hash})
	suite.Require().NoError(err)

	service := services.NewAuthService(repo, maxAttempts, true)

	account, err := service.Authenticate(context.Background(), "1001", "abc123!")
	suite.Require().NoError(err)
	suite.NotNil(account)

	_, err = service.Authenticate(context.Background(), "1001", "wrong")
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
