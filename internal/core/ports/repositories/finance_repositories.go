package repositories

import (
	"context"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expense data.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	// ListExpensesByProject retrieves non-deleted expenses of a project,
	// newest first.
	ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expenseID string, patch domain.ExpensePatch, now time.Time) (*domain.Expense, error)
	// MarkExpenseDeleted soft-deletes a single expense row (no cascade).
	MarkExpenseDeleted(ctx context.Context, expenseID string, now time.Time) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// PaymentReader defines read operations for client payments.
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for client payments.
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	UpdatePayment(ctx context.Context, paymentID string, patch domain.PaymentPatch, now time.Time) (*domain.Payment, error)
	MarkPaymentDeleted(ctx context.Context, paymentID string, now time.Time) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// SupplierRepositoryFacade covers suppliers and their payouts.
type SupplierRepositoryFacade interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	// SaveSupplierPayment records a payout against an expense. Returns
	// apperrors.ErrNotFound when the expense does not exist.
	SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error
	ListSupplierPaymentsBySupplier(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error)
}
