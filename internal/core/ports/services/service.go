package services

// ServiceContainer groups every service facade for the boundary layer.
type ServiceContainer struct {
	Registration RegistrationSvcFacade
	Auth         AuthSvcFacade
	Ledger       LedgerSvcFacade
}
