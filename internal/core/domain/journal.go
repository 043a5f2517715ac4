package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a journal entry by the operation that produced it.
type EntryType string

const (
	Deposit     EntryType = "DEPOSIT"
	Withdrawal  EntryType = "WITHDRAWAL"
	TransferOut EntryType = "TRANSFER_OUT"
	TransferIn  EntryType = "TRANSFER_IN"
)

// JournalEntry is an immutable record of one successful balance mutation.
// A transfer produces two entries, one per side.
type JournalEntry struct {
	EntryID            string          `json:"entryID"` // UUID
	EntryType          EntryType       `json:"entryType"`
	AccountNumber      int64           `json:"accountNumber"`
	CounterpartyNumber int64           `json:"counterpartyNumber,omitempty"` // Other side of a transfer, zero otherwise
	Amount             decimal.Decimal `json:"amount"`
	BalanceAfter       decimal.Decimal `json:"balanceAfter"`
	CreatedAt          time.Time       `json:"createdAt"`
}
