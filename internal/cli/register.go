package cli

import (
	"context"
	"fmt"

	"github.com/abcbank/abc_bank_app/internal/core/validation"
	"github.com/abcbank/abc_bank_app/internal/dto"
	"github.com/shopspring/decimal"
)

// register walks the user through account creation, re-prompting each
// validated field until its predicate passes. Only once every field is valid
// does the registration service see the request.
func (c *CLI) register(ctx context.Context) error {
	var req dto.RegisterAccountRequest
	var err error

	req.FirstName, err = c.promptValidated("Enter Your First Name: ",
		"Invalid first name. Please try again.", validation.ValidateName)
	if err != nil {
		return err
	}

	req.LastName, err = c.promptValidated("Enter Your Last Name: ",
		"Invalid last name. Please try again.", validation.ValidateName)
	if err != nil {
		return err
	}

	req.Email, err = c.promptValidated("Enter Your Email Address: ",
		"Invalid email address. Please try again.", validation.ValidateEmail)
	if err != nil {
		return err
	}

	// Address is free form; anything goes.
	req.Address, err = c.promptLine("Enter Your Address: ")
	if err != nil {
		return err
	}

	req.DOB, err = c.promptValidated("Enter Your Date of Birth (YYYY-MM-DD): ",
		"Invalid date of birth. Please try again.", validation.ValidateDOB)
	if err != nil {
		return err
	}

	req.PhoneNumber, err = c.promptValidated("Enter Your Phone Number: ",
		"Invalid phone number. Please try again.", validation.ValidatePhoneNumber)
	if err != nil {
		return err
	}

	req.StartingBalance, err = c.promptStartingBalance()
	if err != nil {
		return err
	}

	req.Password, err = c.promptValidated("Enter Password (min 6 characters, 1 letter, 1 number, 1 special character): ",
		"Password does not meet requirements. Please try again. ", validation.ValidatePassword)
	if err != nil {
		return err
	}

	account, err := c.services.Registration.Register(ctx, req)
	if err != nil {
		// Every field was validated above, so this is unexpected.
		fmt.Fprintf(c.out, "Could not create account: %v\n\n", err)
		return nil
	}

	fmt.Fprintf(c.out, "\nAccount created successfully. Your account number is %d \n\n", account.AccountNumber)
	return nil
}

// promptValidated re-prompts until the predicate accepts the input.
func (c *CLI) promptValidated(label, rejection string, valid func(string) bool) (string, error) {
	for {
		s, err := c.promptLine(label)
		if err != nil {
			return "", err
		}
		if valid(s) {
			return s, nil
		}
		fmt.Fprintf(c.out, "%s\n\n", rejection)
	}
}

// promptStartingBalance re-prompts until the text parses as a decimal. Any
// parseable value is accepted, negative included.
func (c *CLI) promptStartingBalance() (string, error) {
	for {
		s, err := c.promptLine("Enter Your Starting Balance: ")
		if err != nil {
			return "", err
		}
		if _, perr := decimal.NewFromString(s); perr == nil {
			return s, nil
		}
		fmt.Fprintf(c.out, "Invalid balance. Please enter a valid decimal number.\n\n")
	}
}
