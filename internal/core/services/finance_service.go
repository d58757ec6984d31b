package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}
	return &expense, nil
}

func (s *expenseService) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	return s.expenseRepo.ListExpensesByProject(ctx, projectID)
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	patch := domain.ExpensePatch{
		Title:       req.Title,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Notes:       req.Notes,
	}
	return s.expenseRepo.UpdateExpense(ctx, expenseID, patch, time.Now().UTC())
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.MarkExpenseDeleted(ctx, expenseID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	return nil
}

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo portsrepo.PaymentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: repo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		ProjectID:   req.ProjectID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Method:      req.Method,
		Reference:   req.Reference,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, err
	}
	return &payment, nil
}

func (s *paymentService) ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListPaymentsByProject(ctx, projectID)
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	patch := domain.PaymentPatch{
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Method:      req.Method,
		Reference:   req.Reference,
	}
	return s.paymentRepo.UpdatePayment(ctx, paymentID, patch, time.Now().UTC())
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.MarkPaymentDeleted(ctx, paymentID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}
	return nil
}

// supplierService implements the SupplierSvcFacade interface
type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service
func NewSupplierService(repo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: repo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		Name:        req.Name,
		Contact:     req.Contact,
		Address:     req.Address,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}
	return &supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx)
}

func (s *supplierService) CreateSupplierPayment(ctx context.Context, req dto.CreateSupplierPaymentRequest) (*domain.SupplierPayment, error) {
	now := time.Now().UTC()
	payment := domain.SupplierPayment{
		SupplierPaymentID: uuid.NewString(),
		SupplierID:        req.SupplierID,
		ExpenseID:         req.ExpenseID,
		Amount:            req.Amount,
		PaidAt:            req.PaidAt,
		AuditFields:       domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.supplierRepo.SaveSupplierPayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save supplier payment", slog.String("supplier_payment_id", payment.SupplierPaymentID))
		return nil, err
	}
	return &payment, nil
}

func (s *supplierService) ListSupplierPaymentsBySupplier(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error) {
	return s.supplierRepo.ListSupplierPaymentsBySupplier(ctx, supplierID)
}
