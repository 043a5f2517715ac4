package repositories

import (
	"context"

	"github.com/abcbank/abc_bank_app/internal/core/domain"
)

// JournalRepository persists the append-only record of balance mutations.
type JournalRepository interface {
	// SaveEntry appends one journal entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// ListEntriesByAccount retrieves all entries touching the given account,
	// oldest first.
	ListEntriesByAccount(ctx context.Context, accountNumber int64) ([]domain.JournalEntry, error)
}
