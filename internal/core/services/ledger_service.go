package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/core/domain"
	portsrepo "github.com/abcbank/abc_bank_app/internal/core/ports/repositories"
	portssvc "github.com/abcbank/abc_bank_app/internal/core/ports/services"
	"github.com/abcbank/abc_bank_app/internal/platform/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService executes the balance-mutating operations. A single mutex
// serializes mutations so that Transfer's debit and credit are one atomic
// step with no observable intermediate state; a failed operation mutates
// nothing.
type ledgerService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalRepository
	mu          sync.Mutex
	now         func() time.Time
}

// NewLedgerService creates the ledger service.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		now:         time.Now,
	}
}

// CheckBalance returns the current balance. Pure read, no side effects.
func (s *ledgerService) CheckBalance(ctx context.Context, accountNumber int64) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to check balance: %w", err)
	}
	return account.Balance, nil
}

// GetAccount returns a snapshot of every account field.
func (s *ledgerService) GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ListEntries returns the account's transaction history, oldest first.
func (s *ledgerService) ListEntries(ctx context.Context, accountNumber int64) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntriesByAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// Withdraw debits the account when the balance covers the amount. The
// amount is not checked for sign or zero; only sufficiency gates the debit.
func (s *ledgerService) Withdraw(ctx context.Context, accountNumber int64, amountText string) (decimal.Decimal, error) {
	logger := logging.FromContext(ctx)

	amount, err := parseAmount(amountText)
	if err != nil {
		return decimal.Zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to withdraw: %w", err)
	}
	if account.Balance.LessThan(amount) {
		return decimal.Zero, apperrors.ErrInsufficientFunds
	}

	newBalance := account.Balance.Sub(amount)
	if err := s.accountRepo.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to withdraw: %w", err)
	}
	if err := s.journal(ctx, domain.Withdrawal, accountNumber, 0, amount, newBalance); err != nil {
		return decimal.Zero, err
	}

	logger.Info("withdrawal applied",
		slog.Int64("account_number", accountNumber),
		slog.String("amount", amount.String()),
	)
	return newBalance, nil
}

// Deposit unconditionally credits the amount. A negative amount therefore
// decreases the balance; that pass-through is intentional, documented
// behavior.
func (s *ledgerService) Deposit(ctx context.Context, accountNumber int64, amountText string) (decimal.Decimal, error) {
	logger := logging.FromContext(ctx)

	amount, err := parseAmount(amountText)
	if err != nil {
		return decimal.Zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to deposit: %w", err)
	}

	newBalance := account.Balance.Add(amount)
	if err := s.accountRepo.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to deposit: %w", err)
	}
	if err := s.journal(ctx, domain.Deposit, accountNumber, 0, amount, newBalance); err != nil {
		return decimal.Zero, err
	}

	logger.Info("deposit applied",
		slog.Int64("account_number", accountNumber),
		slog.String("amount", amount.String()),
	)
	return newBalance, nil
}

// Transfer debits the sender and credits the recipient under one lock.
// Recipient resolution happens before the amount is parsed, mirroring the
// boundary contract: an unknown recipient fails the operation before any
// amount is considered. The sum of all balances is unchanged by a
// successful transfer.
func (s *ledgerService) Transfer(ctx context.Context, senderNumber int64, recipientNumberText, amountText string) (decimal.Decimal, error) {
	logger := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	recipient, err := s.accountRepo.FindAccountByNumberText(ctx, recipientNumberText)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return decimal.Zero, apperrors.ErrRecipientNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to resolve recipient: %w", err)
	}

	amount, err := parseAmount(amountText)
	if err != nil {
		return decimal.Zero, err
	}

	sender, err := s.accountRepo.FindAccountByNumber(ctx, senderNumber)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to transfer: %w", err)
	}
	if sender.Balance.LessThan(amount) {
		return decimal.Zero, apperrors.ErrInsufficientFunds
	}

	newSenderBalance := sender.Balance.Sub(amount)
	if recipient.AccountNumber == senderNumber {
		// Debit and credit land on the same account and cancel out.
		newSenderBalance = sender.Balance
		if err := s.accountRepo.UpdateBalance(ctx, senderNumber, newSenderBalance); err != nil {
			return decimal.Zero, fmt.Errorf("failed to transfer: %w", err)
		}
	} else {
		if err := s.accountRepo.UpdateBalance(ctx, senderNumber, newSenderBalance); err != nil {
			return decimal.Zero, fmt.Errorf("failed to transfer: %w", err)
		}
		if err := s.accountRepo.UpdateBalance(ctx, recipient.AccountNumber, recipient.Balance.Add(amount)); err != nil {
			return decimal.Zero, fmt.Errorf("failed to transfer: %w", err)
		}
	}

	if err := s.journal(ctx, domain.TransferOut, senderNumber, recipient.AccountNumber, amount, newSenderBalance); err != nil {
		return decimal.Zero, err
	}
	recipientBalanceAfter := recipient.Balance.Add(amount)
	if recipient.AccountNumber == senderNumber {
		recipientBalanceAfter = newSenderBalance
	}
	if err := s.journal(ctx, domain.TransferIn, recipient.AccountNumber, senderNumber, amount, recipientBalanceAfter); err != nil {
		return decimal.Zero, err
	}

	logger.Info("transfer applied",
		slog.Int64("sender", senderNumber),
		slog.Int64("recipient", recipient.AccountNumber),
		slog.String("amount", amount.String()),
	)
	return newSenderBalance, nil
}

func (s *ledgerService) journal(ctx context.Context, entryType domain.EntryType, accountNumber, counterparty int64, amount, balanceAfter decimal.Decimal) error {
	entry := domain.JournalEntry{
		EntryID:            uuid.NewString(),
		EntryType:          entryType,
		AccountNumber:      accountNumber,
		CounterpartyNumber: counterparty,
		Amount:             amount,
		BalanceAfter:       balanceAfter,
		CreatedAt:          s.now(),
	}
	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to journal %s: %w", entryType, err)
	}
	return nil
}

// parseAmount converts amount text to an exact decimal. Failure aborts the
// operation; it is not a retry loop.
func parseAmount(amountText string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, amountText)
	}
	return amount, nil
}
