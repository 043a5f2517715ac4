package dto

import (
	"time"

	"github.com/abcbank/abc_bank_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterAccountRequest carries the fields gathered during registration.
// The validate tags are the custom rules registered by the validation
// package; Address deliberately has none and StartingBalance is parsed as a
// decimal at the service, not validated here.
type RegisterAccountRequest struct {
	FirstName       string `json:"firstName" validate:"name"`
	LastName        string `json:"lastName" validate:"name"`
	Email           string `json:"email" validate:"simpleemail"`
	Address         string `json:"address"`
	DOB             string `json:"dob" validate:"dob"`
	PhoneNumber     string `json:"phoneNumber" validate:"phone10"`
	StartingBalance string `json:"startingBalance"`
	Password        string `json:"password" validate:"accountpwd"`
}

// AccountResponse defines the data returned for an account snapshot.
// Mirrors domain.Account minus the credential.
type AccountResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	Username      string          `json:"username"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	DOB           string          `json:"dob"`
	PhoneNumber   string          `json:"phoneNumber"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: acc.AccountNumber,
		Username:      acc.Username,
		FirstName:     acc.FirstName,
		LastName:      acc.LastName,
		Email:         acc.Email,
		Address:       acc.Address,
		DOB:           acc.DOB,
		PhoneNumber:   acc.PhoneNumber,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
	}
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}
