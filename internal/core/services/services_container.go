package services

import (
	portsrepo "github.com/abcbank/abc_bank_app/internal/core/ports/repositories"
	portssvc "github.com/abcbank/abc_bank_app/internal/core/ports/services"
	"github.com/abcbank/abc_bank_app/pkg/config"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Registration: NewRegistrationService(repos.AccountRepo, cfg.HashPasswords),
		Auth:         NewAuthService(repos.AccountRepo, cfg.MaxLoginAttempts, cfg.HashPasswords),
		Ledger:       NewLedgerService(repos.AccountRepo, repos.JournalRepo),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.RegistrationSvcFacade = (*registrationService)(nil)
	_ portssvc.AuthSvcFacade         = (*authService)(nil)
	_ portssvc.LedgerSvcFacade       = (*ledgerService)(nil)
)
