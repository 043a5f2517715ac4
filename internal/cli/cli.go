// Package cli implements the terminal boundary: the top-level menu, the
// registration workflow with per-field retry, and the authenticated session
// menu. It holds no business rules; everything it does goes through the
// service facades.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	portssvc "github.com/abcbank/abc_bank_app/internal/core/ports/services"
	"github.com/abcbank/abc_bank_app/internal/platform/logging"
)

// errInputClosed signals that the input stream ended; Run treats it like an
// explicit quit.
var errInputClosed = errors.New("input closed")

// CLI drives the interactive menus over an arbitrary reader/writer pair.
type CLI struct {
	scanner  *bufio.Scanner
	out      io.Writer
	services *portssvc.ServiceContainer
	logger   *slog.Logger
	bankName string
}

// New creates a CLI bound to the given input and output streams.
func New(in io.Reader, out io.Writer, services *portssvc.ServiceContainer, logger *slog.Logger, bankName string) *CLI {
	return &CLI{
		scanner:  bufio.NewScanner(in),
		out:      out,
		services: services,
		logger:   logger,
		bankName: bankName,
	}
}

// Run executes the top-level menu until the user quits or the lockout
// triggers. A nil return is a clean exit; apperrors.ErrTooManyAttempts tells
// the caller to terminate the process.
func (c *CLI) Run(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, c.logger)

	for {
		fmt.Fprintf(c.out, "Welcome to %s!\n\n", c.bankName)
		fmt.Fprintln(c.out, "1. Login")
		fmt.Fprintln(c.out, "2. Register")
		fmt.Fprintf(c.out, "3. Quit Program \n\n")

		choice, err := c.promptLine("Choose an option: ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			account, err := c.login(ctx)
			if err != nil {
				if errors.Is(err, apperrors.ErrTooManyAttempts) {
					fmt.Fprintln(c.out, "You have tried too many times, Program will now end. Goodbye!")
					return err
				}
				// Failed attempt already reported; back to the top menu.
				continue
			}
			if err := c.session(ctx, account); err != nil {
				return nil
			}
		case "2":
			if err := c.register(ctx); err != nil {
				return nil
			}
		case "3":
			fmt.Fprintf(c.out, "Thank you for using %s!\n", c.bankName)
			return nil
		default:
			fmt.Fprintf(c.out, "Invalid option. Please try again. \n\n")
		}
	}
}

// promptLine writes the label and reads one input line.
func (c *CLI) promptLine(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.scanner.Scan() {
		return "", errInputClosed
	}
	return c.scanner.Text(), nil
}
