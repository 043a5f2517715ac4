package memory

import (
	"context"
	"sync"

	"github.com/abcbank/abc_bank_app/internal/core/domain"
	portsrepo "github.com/abcbank/abc_bank_app/internal/core/ports/repositories"
)

// JournalRepository keeps the append-only mutation record in memory.
type JournalRepository struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
}

// NewJournalRepository creates an empty journal.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{}
}

// SaveEntry appends one entry.
func (r *JournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// ListEntriesByAccount returns copies of all entries for the account,
// oldest first.
func (r *JournalRepository) ListEntriesByAccount(ctx context.Context, accountNumber int64) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.JournalEntry
	for _, e := range r.entries {
		if e.AccountNumber == accountNumber {
			out = append(out, e)
		}
	}
	return out, nil
}

var _ portsrepo.JournalRepository = (*JournalRepository)(nil)
