// Package memory provides the in-memory storage backing the ledger. State
// lives for the life of the process and is discarded on exit; there is no
// persistence layer behind it by design.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/core/domain"
	portsrepo "github.com/abcbank/abc_bank_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// AccountRepository keeps accounts in a map keyed by account number for O(1)
// lookup. Account numbers are unique, so first match and only match
// coincide. A single mutex serializes access; number assignment happens
// under the same lock as the insert so no partial account is ever visible.
type AccountRepository struct {
	mu         sync.RWMutex
	accounts   map[int64]*domain.Account
	order      []int64 // creation order, for listing
	nextNumber int64
}

// NewAccountRepository creates an empty repository whose first account will
// receive startingNumber.
func NewAccountRepository(startingNumber int64) *AccountRepository {
	return &AccountRepository{
		accounts:   make(map[int64]*domain.Account),
		nextNumber: startingNumber,
	}
}

// CreateAccount assigns the next sequential account number, derives the
// username from it, and stores the account. Returns a copy of the stored
// record.
func (r *AccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.AccountNumber = r.nextNumber
	account.Username = strconv.FormatInt(r.nextNumber, 10)
	r.nextNumber++

	stored := account
	r.accounts[stored.AccountNumber] = &stored
	r.order = append(r.order, stored.AccountNumber)

	cp := stored
	return &cp, nil
}

// FindAccountByNumber retrieves a copy of the account with the given number.
func (r *AccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[accountNumber]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

// FindAccountByNumberText retrieves the account whose number's decimal
// string form equals the text exactly. The text must round-trip: "01001"
// and " 1001" match nothing even though they parse to an existing number.
func (r *AccountRepository) FindAccountByNumberText(ctx context.Context, accountNumberText string) (*domain.Account, error) {
	n, err := strconv.ParseInt(accountNumberText, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != accountNumberText {
		return nil, apperrors.ErrAccountNotFound
	}
	return r.FindAccountByNumber(ctx, n)
}

// ListAccounts returns copies of all accounts in creation order.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, *r.accounts[n])
	}
	return out, nil
}

// UpdateBalance replaces the balance of an existing account and stamps the
// update time.
func (r *AccountRepository) UpdateBalance(ctx context.Context, accountNumber int64, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[accountNumber]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	acc.Balance = balance
	acc.LastUpdatedAt = time.Now()
	return nil
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)
