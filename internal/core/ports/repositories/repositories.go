package repositories

// RepositoryProvider groups every repository the service layer needs.
type RepositoryProvider struct {
	AccountRepo AccountRepositoryFacade
	JournalRepo JournalRepository
}
