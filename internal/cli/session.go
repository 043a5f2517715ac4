package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/core/domain"
	"github.com/abcbank/abc_bank_app/internal/dto"
	"github.com/abcbank/abc_bank_app/internal/utils"
)

// login prompts for credentials and authenticates. When the attempt ceiling
// has already been reached it does not prompt at all; the lockout is
// reported before any input is read.
func (c *CLI) login(ctx context.Context) (*domain.Account, error) {
	if c.services.Auth.LockedOut() {
		return nil, apperrors.ErrTooManyAttempts
	}

	numberText, err := c.promptLine("Enter Account Number: ")
	if err != nil {
		return nil, err
	}
	password, err := c.promptLine("Enter Password: ")
	if err != nil {
		return nil, err
	}

	account, err := c.services.Auth.Authenticate(ctx, numberText, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthenticationFailed) {
			fmt.Fprintf(c.out, "Authentication failed. Please try again. \n\n")
		}
		return nil, err
	}
	return account, nil
}

// session runs the authenticated menu until logout.
func (c *CLI) session(ctx context.Context, account *domain.Account) error {
	for {
		fmt.Fprintf(c.out, "Welcome %s!\n\n", account.FirstName)
		fmt.Fprintln(c.out, "1. Check Balance")
		fmt.Fprintln(c.out, "2. Make Withdrawal")
		fmt.Fprintln(c.out, "3. Make Deposit")
		fmt.Fprintln(c.out, "4. Transfer Funds")
		fmt.Fprintln(c.out, "5. Display Account Information")
		fmt.Fprintln(c.out, "6. Transaction History")
		fmt.Fprintf(c.out, "7. Logout \n\n")

		choice, err := c.promptLine("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := c.checkBalance(ctx, account.AccountNumber); err != nil {
				return err
			}
		case "2":
			if err := c.withdraw(ctx, account.AccountNumber); err != nil {
				return err
			}
		case "3":
			if err := c.deposit(ctx, account.AccountNumber); err != nil {
				return err
			}
		case "4":
			if err := c.transfer(ctx, account.AccountNumber); err != nil {
				return err
			}
		case "5":
			if err := c.displayAccount(ctx, account.AccountNumber); err != nil {
				return err
			}
		case "6":
			if err := c.history(ctx, account.AccountNumber); err != nil {
				return err
			}
		case "7":
			fmt.Fprintf(c.out, "Thank you for using %s!\n\n", c.bankName)
			return nil
		default:
			fmt.Fprintf(c.out, "Invalid option. Please try again. \n\n")
		}
	}
}

func (c *CLI) checkBalance(ctx context.Context, accountNumber int64) error {
	balance, err := c.services.Ledger.CheckBalance(ctx, accountNumber)
	if err != nil {
		fmt.Fprintf(c.out, "Could not read balance: %v\n\n", err)
		return nil
	}
	fmt.Fprintf(c.out, "Your balance is: %s \n\n", utils.FormatAmount(balance))
	return nil
}

func (c *CLI) withdraw(ctx context.Context, accountNumber int64) error {
	amountText, err := c.promptLine("Enter amount to withdraw: ")
	if err != nil {
		return err
	}

	balance, err := c.services.Ledger.Withdraw(ctx, accountNumber, amountText)
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		fmt.Fprintf(c.out, "Insufficient funds. \n\n")
	case errors.Is(err, apperrors.ErrInvalidAmount):
		fmt.Fprintf(c.out, "Invalid amount. Please enter a valid decimal number.\n\n")
	case err != nil:
		fmt.Fprintf(c.out, "Withdrawal failed: %v\n\n", err)
	default:
		fmt.Fprintf(c.out, "Withdrawal successful. New balance: %s \n\n", utils.FormatAmount(balance))
	}
	return nil
}

func (c *CLI) deposit(ctx context.Context, accountNumber int64) error {
	amountText, err := c.promptLine("Enter amount to deposit: ")
	if err != nil {
		return err
	}

	balance, err := c.services.Ledger.Deposit(ctx, accountNumber, amountText)
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		fmt.Fprintf(c.out, "Invalid amount. Please enter a valid decimal number.\n\n")
	case err != nil:
		fmt.Fprintf(c.out, "Deposit failed: %v\n\n", err)
	default:
		fmt.Fprintf(c.out, "Deposit successful. New balance: %s \n\n", utils.FormatAmount(balance))
	}
	return nil
}

func (c *CLI) transfer(ctx context.Context, accountNumber int64) error {
	recipientText, err := c.promptLine("Enter recipient account number: ")
	if err != nil {
		return err
	}
	amountText, err := c.promptLine("Enter amount to transfer: ")
	if err != nil {
		return err
	}

	balance, err := c.services.Ledger.Transfer(ctx, accountNumber, recipientText, amountText)
	switch {
	case errors.Is(err, apperrors.ErrRecipientNotFound):
		fmt.Fprintf(c.out, "Recipient account not found.\n\n")
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		fmt.Fprintf(c.out, "Insufficient funds for transfer. \n\n")
	case errors.Is(err, apperrors.ErrInvalidAmount):
		fmt.Fprintf(c.out, "Invalid amount. Please enter a valid decimal number.\n\n")
	case err != nil:
		fmt.Fprintf(c.out, "Transfer failed: %v\n\n", err)
	default:
		fmt.Fprintf(c.out, "Transfer successful. Your new balance: %s \n\n", utils.FormatAmount(balance))
	}
	return nil
}

func (c *CLI) displayAccount(ctx context.Context, accountNumber int64) error {
	account, err := c.services.Ledger.GetAccount(ctx, accountNumber)
	if err != nil {
		fmt.Fprintf(c.out, "Could not read account: %v\n\n", err)
		return nil
	}

	info := dto.ToAccountResponse(account)
	fmt.Fprintf(c.out, "%s's Account Information:\n\n", info.FirstName)
	fmt.Fprintf(c.out, "Account Number: %d\n", info.AccountNumber)
	fmt.Fprintf(c.out, "Name: %s %s\n", info.FirstName, info.LastName)
	fmt.Fprintf(c.out, "Date of Birth: %s\n", info.DOB)
	fmt.Fprintf(c.out, "Email: %s\n", info.Email)
	fmt.Fprintf(c.out, "Address: %s\n", info.Address)
	fmt.Fprintf(c.out, "Phone Number: %s\n", info.PhoneNumber)
	fmt.Fprintf(c.out, "Balance: %s\n\n", utils.FormatAmount(info.Balance))
	return nil
}

func (c *CLI) history(ctx context.Context, accountNumber int64) error {
	entries, err := c.services.Ledger.ListEntries(ctx, accountNumber)
	if err != nil {
		fmt.Fprintf(c.out, "Could not read history: %v\n\n", err)
		return nil
	}
	if len(entries) == 0 {
		fmt.Fprintf(c.out, "No transactions yet.\n\n")
		return nil
	}

	for _, e := range dto.ToListJournalEntryResponse(entries) {
		fmt.Fprintf(c.out, "%s  %-12s  %s  balance %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.EntryType,
			utils.FormatAmount(e.Amount),
			utils.FormatAmount(e.BalanceAfter),
		)
	}
	fmt.Fprintln(c.out)
	return nil
}
