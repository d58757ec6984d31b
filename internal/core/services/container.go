package services

import (
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
)

// NewContainer wires every service onto the repository provider.
// trashRetentionDays is read from config once at startup.
func NewContainer(repos portsrepo.RepositoryProvider, trashRetentionDays int) *portssvc.ServiceContainer {
	teamSvc := NewTeamService(repos.TeamRepo, repos.TeamMemberRepo, trashRetentionDays)
	return &portssvc.ServiceContainer{
		Project:     NewProjectService(repos.ProjectRepo, WithQuotationRepository(repos.QuotationRepo)),
		Expense:     NewExpenseService(repos.ExpenseRepo),
		Payment:     NewPaymentService(repos.PaymentRepo),
		Supplier:    NewSupplierService(repos.SupplierRepo),
		ProjectItem: NewProjectItemService(repos.ProjectItemRepo),
		Team:        teamSvc,
		TeamMember:  teamSvc,
		Quotation:   NewQuotationService(repos.QuotationRepo),
		Trash:       NewTrashService(repos.TrashRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
