package repositories

import (
	"context"

	"github.com/abcbank/abc_bank_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByNumber retrieves a specific account by its account number.
	FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// FindAccountByNumberText retrieves the account whose number's decimal
	// string form equals the given text exactly. "01001" does not match 1001.
	FindAccountByNumberText(ctx context.Context, accountNumberText string) (*domain.Account, error)

	// ListAccounts retrieves all accounts in creation order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// CreateAccount assigns the next account number and username, persists
	// the account atomically, and returns the stored copy. No partially
	// populated account is ever visible to readers.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateBalance replaces the balance of an existing account.
	UpdateBalance(ctx context.Context, accountNumber int64, balance decimal.Decimal) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
// This is a facade for clients that need access to all operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
