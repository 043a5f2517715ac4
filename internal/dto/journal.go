package dto

import (
	"time"

	"github.com/abcbank/abc_bank_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntryResponse defines the data returned for one history entry.
type JournalEntryResponse struct {
	EntryID            string           `json:"entryID"`
	EntryType          domain.EntryType `json:"entryType"`
	AccountNumber      int64            `json:"accountNumber"`
	CounterpartyNumber int64            `json:"counterpartyNumber,omitempty"`
	Amount             decimal.Decimal  `json:"amount"`
	BalanceAfter       decimal.Decimal  `json:"balanceAfter"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// ToJournalEntryResponse converts a domain entry to its response DTO.
func ToJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:            e.EntryID,
		EntryType:          e.EntryType,
		AccountNumber:      e.AccountNumber,
		CounterpartyNumber: e.CounterpartyNumber,
		Amount:             e.Amount,
		BalanceAfter:       e.BalanceAfter,
		CreatedAt:          e.CreatedAt,
	}
}

// ToListJournalEntryResponse converts a slice of domain entries.
func ToListJournalEntryResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToJournalEntryResponse(e)
	}
	return res
}
