package services

import (
	"context"

	"github.com/abcbank/abc_bank_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations against the ledger.
type LedgerReaderSvc interface {
	// CheckBalance returns the current balance of the account.
	CheckBalance(ctx context.Context, accountNumber int64) (decimal.Decimal, error)

	// GetAccount returns a full snapshot of the account's fields.
	GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// ListEntries returns the account's transaction history, oldest first.
	ListEntries(ctx context.Context, accountNumber int64) ([]domain.JournalEntry, error)
}

// LedgerWriterSvc defines the balance-mutating operations. Amounts arrive as
// text and are parsed as exact decimals; parse failure is
// apperrors.ErrInvalidAmount and aborts the operation without mutation.
type LedgerWriterSvc interface {
	// Withdraw debits the account if the balance covers the amount and
	// returns the new balance, otherwise apperrors.ErrInsufficientFunds.
	Withdraw(ctx context.Context, accountNumber int64, amountText string) (decimal.Decimal, error)

	// Deposit unconditionally credits the amount and returns the new balance.
	Deposit(ctx context.Context, accountNumber int64, amountText string) (decimal.Decimal, error)

	// Transfer moves the amount from the sender to the account whose number's
	// string form equals recipientNumberText. Debit and credit are applied as
	// a single atomic step; the sum of all balances never changes.
	Transfer(ctx context.Context, senderNumber int64, recipientNumberText, amountText string) (decimal.Decimal, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
