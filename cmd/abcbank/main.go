package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/abcbank/abc_bank_app/internal/apperrors"
	"github.com/abcbank/abc_bank_app/internal/cli"
	portsrepo "github.com/abcbank/abc_bank_app/internal/core/ports/repositories"
	"github.com/abcbank/abc_bank_app/internal/core/services"
	"github.com/abcbank/abc_bank_app/internal/repositories/memory"
	"github.com/abcbank/abc_bank_app/pkg/config"
)

func main() {
	// Initialize structured logger. Menu output goes to stdout, so logs go
	// to stderr to keep the two streams apart.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		AccountRepo: memory.NewAccountRepository(cfg.StartingAccountNumber),
		JournalRepo: memory.NewJournalRepository(),
	}
	container := services.NewServiceContainer(cfg, repos)

	app := cli.New(os.Stdin, os.Stdout, container, logger, cfg.BankName)
	if err := app.Run(context.Background()); err != nil {
		if errors.Is(err, apperrors.ErrTooManyAttempts) {
			// Fail-closed lockout: terminate with a clean exit code.
			logger.Warn("terminating after login lockout")
			os.Exit(0)
		}
		logger.Error("session ended with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
