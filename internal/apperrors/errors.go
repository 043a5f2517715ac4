package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAccountNotFound indicates that no account matches the given number.
var ErrAccountNotFound = errors.New("account not found")

// ErrRecipientNotFound indicates that the transfer recipient does not exist.
var ErrRecipientNotFound = errors.New("recipient account not found")

// ErrInsufficientFunds indicates the balance does not cover the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAuthenticationFailed indicates a non-terminal failed login attempt.
var ErrAuthenticationFailed = errors.New("authentication failed")

// ErrTooManyAttempts is the terminal lockout outcome, returned once the
// failed-login ceiling has been reached. The boundary layer is expected to
// end the process when it sees this error; the core never exits by itself.
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// ErrInvalidAmount indicates that amount text could not be parsed as a decimal.
var ErrInvalidAmount = errors.New("invalid amount")
