package services_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/core/domain"
	portssvc "github.com/abcbank/abc_bank_app/internal/core/ports/services"
	"github.com/abcbank/abc_bank_app/internal/core/services"
	"github.com/abcbank/abc_bank_app/internal/dto"
	"github.com/abcbank/abc_bank_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumberText(ctx context.Context, accountNumberText string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumberText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, accountNumber int64, balance decimal.Decimal) error {
	args := m.Called(ctx, accountNumber, balance)
	return args.Error(0)
}

// --- Test Suite ---
type RegistrationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.RegistrationSvcFacade
}

func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewRegistrationService(suite.mockRepo, false)
}

func validRequest() dto.RegisterAccountRequest {
	return dto.RegisterAccountRequest{
		FirstName:       "Alice",
		LastName:        "Smith",
		Email:           "alice@example.com",
		Address:         "12 High Street",
		DOB:             "1990-06-01",
		PhoneNumber:     "0123456789",
		StartingBalance: "1000.00",
		Password:        "abc123!",
	}
}

func storedFrom(account domain.Account, number int64) *domain.Account {
	account.AccountNumber = number
	account.Username = strconv.FormatInt(number, 10)
	return &account
}

func (suite *RegistrationServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := validRequest()

	suite.mockRepo.On("CreateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.FirstName == req.FirstName &&
			a.Password == req.Password &&
			a.Balance.Equal(decimal.RequireFromString("1000.00")) &&
			a.AccountNumber == 0 // assigned by the repository, not the service
	})).Return(storedFrom(domain.Account{FirstName: req.FirstName}, 1001), nil).Once()

	account, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(int64(1001), account.AccountNumber)
	suite.Equal("1001", account.Username)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RegistrationServiceTestSuite) TestRegister_FieldValidationFailures() {
	ctx := context.Background()

	cases := map[string]func(*dto.RegisterAccountRequest){
		"first name": func(r *dto.RegisterAccountRequest) { r.FirstName = "Mary Jane" },
		"last name":  func(r *dto.RegisterAccountRequest) { r.LastName = "" },
		"email":      func(r *dto.RegisterAccountRequest) { r.Email = "a@@b.com" },
		"dob":        func(r *dto.RegisterAccountRequest) { r.DOB = "2023-02-30" },
		"phone":      func(r *dto.RegisterAccountRequest) { r.PhoneNumber = "12345" },
		"password":   func(r *dto.RegisterAccountRequest) { r.Password = "abcdef" },
	}

	for name, corrupt := range cases {
		req := validRequest()
		corrupt(&req)

		account, err := suite.service.Register(ctx, req)

		suite.Require().Error(err, name)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
		suite.Nil(account, name)
	}
	// No invalid request may reach the repository.
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *RegistrationServiceTestSuite) TestRegister_UnparseableStartingBalance() {
	ctx := context.Background()
	req := validRequest()
	req.StartingBalance = "lots"

	account, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Nil(account)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *RegistrationServiceTestSuite) TestRegister_NegativeStartingBalanceAccepted() {
	ctx := context.Background()
	req := validRequest()
	req.StartingBalance = "-50"

	suite.mockRepo.On("CreateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Balance.Equal(decimal.NewFromInt(-50))
	})).Return(storedFrom(domain.Account{}, 1001), nil).Once()

	account, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RegistrationServiceTestSuite) TestRegister_HashedCredentialMode() {
	ctx := context.Background()
	service := services.NewRegistrationService(suite.mockRepo, true)
	req := validRequest()

	suite.mockRepo.On("CreateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Password != req.Password && utils.CheckPasswordHash(req.Password, a.Password)
	})).Return(storedFrom(domain.Account{}, 1001), nil).Once()

	account, err := service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
