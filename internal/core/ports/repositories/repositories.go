package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProjectRepo     ProjectRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	SupplierRepo    SupplierRepositoryFacade
	ProjectItemRepo ProjectItemRepositoryFacade
	TeamRepo        TeamRepositoryFacade
	TeamMemberRepo  TeamMemberRepositoryFacade
	QuotationRepo   QuotationRepositoryFacade
	TrashRepo       TrashReader
	ReportingRepo   ReportingRepository
}
