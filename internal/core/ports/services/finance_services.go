package services

import (
	"context"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/craftline/craftline_backend/internal/dto"
)

// ExpenseSvcFacade covers expense operations.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

// PaymentSvcFacade covers client payment operations.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
}

// SupplierSvcFacade covers suppliers and their payouts.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	CreateSupplierPayment(ctx context.Context, req dto.CreateSupplierPaymentRequest) (*domain.SupplierPayment, error)
	ListSupplierPaymentsBySupplier(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error)
}
