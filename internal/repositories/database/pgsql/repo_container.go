package pgsql

import (
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	projectRepo := newPgxProjectRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	projectItemRepo := newPgxProjectItemRepository(dbPool)
	teamRepo := newPgxTeamRepository(dbPool)
	quotationRepo := newPgxQuotationRepository(dbPool)
	trashRepo := newPgxTrashRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProjectRepo:     projectRepo,
		ExpenseRepo:     expenseRepo,
		PaymentRepo:     paymentRepo,
		SupplierRepo:    supplierRepo,
		ProjectItemRepo: projectItemRepo,
		TeamRepo:        teamRepo,
		TeamMemberRepo:  teamRepo,
		QuotationRepo:   quotationRepo,
		TrashRepo:       trashRepo,
		ReportingRepo:   reportingRepo,
	}
}
