package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents one customer's identity, credentials and balance.
// This is the primary representation used by services.
type Account struct {
	AccountNumber int64           `json:"accountNumber"` // Primary key, assigned sequentially, immutable
	Username      string          `json:"username"`      // Stringified account number; kept distinct so it can diverge later
	Password      string          `json:"password"`      // Plain credential by default, bcrypt hash in hardened mode
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	Address       string          `json:"address"` // Free form, never validated
	DOB           string          `json:"dob"`     // YYYY-MM-DD
	PhoneNumber   string          `json:"phoneNumber"`
	Balance       decimal.Decimal `json:"balance"` // Fixed-point, never a float
	AuditFields
}
