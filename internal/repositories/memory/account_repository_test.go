package memory_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/core/domain"
	"github.com/abcbank/abc_bank_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountNumbersAreSequential(t *testing.T) {
	repo := memory.NewAccountRepository(1001)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		acc, err := repo.CreateAccount(ctx, domain.Account{})
		require.NoError(t, err)
		assert.Equal(t, int64(1001+i), acc.AccountNumber)
		assert.Equal(t, strconv.FormatInt(acc.AccountNumber, 10), acc.Username)
	}
}

func TestFindAccountByNumber(t *testing.T) {
	repo := memory.NewAccountRepository(1001)
	ctx := context.Background()

	created, err := repo.CreateAccount(ctx, domain.Account{FirstName: "Alice"})
	require.NoError(t, err)

	found, err := repo.FindAccountByNumber(ctx, created.AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.FirstName)

	_, err = repo.FindAccountByNumber(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestFindAccountByNumberText(t *testing.T) {
	repo := memory.NewAccountRepository(1001)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, domain.Account{})
	require.NoError(t, err)

	found, err := repo.FindAccountByNumberText(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), found.AccountNumber)

	// The text must be the exact string form of the number.
	for _, text := range []string{"01001", " 1001", "1001 ", "+1001", "1001.0", "", "abc"} {
		_, err := repo.FindAccountByNumberText(ctx, text)
		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound, "input %q", text)
	}
}

func TestReturnedAccountsAreCopies(t *testing.T) {
	repo := memory.NewAccountRepository(1001)
	ctx := context.Background()

	created, err := repo.CreateAccount(ctx, domain.Account{Balance: decimal.NewFromInt(100)})
	require.NoError(t, err)

	// Mutating the returned value must not touch stored state.
	created.Balance = decimal.NewFromInt(0)
	created.FirstName = "Mallory"

	stored, err := repo.FindAccountByNumber(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, stored.FirstName)
}

func TestUpdateBalance(t *testing.T) {
	repo := memory.NewAccountRepository(1001)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, domain.Account{Balance: decimal.NewFromInt(100)})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateBalance(ctx, 1001, decimal.NewFromInt(75)))

	stored, err := repo.FindAccountByNumber(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.NewFromInt(75)))

	assert.ErrorIs(t, repo.UpdateBalance(ctx, 9999, decimal.Zero), apperrors.ErrAccountNotFound)
}

func TestListAccountsPreservesCreationOrder(t *testing.T) {
	repo := memory.NewAccountRepository(1001)
	ctx := context.Background()

	names := []string{"Alice", "Bob", "Carol"}
	for _, name := range names {
		_, err := repo.CreateAccount(ctx, domain.Account{FirstName: name})
		require.NoError(t, err)
	}

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i, name := range names {
		assert.Equal(t, name, accounts[i].FirstName)
		assert.Equal(t, int64(1001+i), accounts[i].AccountNumber)
	}
}
