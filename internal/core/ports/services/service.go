package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Project     ProjectSvcFacade
	Expense     ExpenseSvcFacade
	Payment     PaymentSvcFacade
	Supplier    SupplierSvcFacade
	ProjectItem ProjectItemSvcFacade
	Team        TeamSvcFacade
	TeamMember  TeamMemberSvcFacade
	Quotation   QuotationSvcFacade
	Trash       TrashSvcFacade
	Reporting   ReportingService
}
