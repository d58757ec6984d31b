package dto

import (
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for booking an expense on a project.
type CreateExpenseRequest struct {
	ProjectID   string          `json:"projectID" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate time.Time       `json:"expenseDate" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdateExpenseRequest is a sparse patch for an expense.
type UpdateExpenseRequest struct {
	Title       *string          `json:"title"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	ExpenseDate *time.Time       `json:"expenseDate"`
	Notes       *string          `json:"notes"`
}

// ExpenseResponse is the API representation of an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	ProjectID   string          `json:"projectID"`
	Title       string          `json:"title"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Notes       string          `json:"notes,omitempty"`
	Deleted     bool            `json:"deleted"`
	DeletedAt   *time.Time      `json:"deletedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateSupplierPaymentRequest records a payout to a supplier against an expense.
type CreateSupplierPaymentRequest struct {
	SupplierID string          `json:"supplierID" binding:"required"`
	ExpenseID  string          `json:"expenseID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	PaidAt     time.Time       `json:"paidAt" binding:"required"`
}

// SupplierPaymentResponse is the API representation of a supplier payment.
type SupplierPaymentResponse struct {
	SupplierPaymentID string          `json:"supplierPaymentID"`
	SupplierID        string          `json:"supplierID"`
	ExpenseID         string          `json:"expenseID"`
	Amount            decimal.Decimal `json:"amount"`
	PaidAt            time.Time       `json:"paidAt"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToExpenseResponse maps a domain expense to its API shape.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		ProjectID:   e.ProjectID,
		Title:       e.Title,
		Category:    e.Category,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate,
		Notes:       e.Notes,
		Deleted:     e.Deleted,
		DeletedAt:   e.DeletedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToSupplierPaymentResponse maps a domain supplier payment to its API shape.
func ToSupplierPaymentResponse(sp domain.SupplierPayment) SupplierPaymentResponse {
	return SupplierPaymentResponse{
		SupplierPaymentID: sp.SupplierPaymentID,
		SupplierID:        sp.SupplierID,
		ExpenseID:         sp.ExpenseID,
		Amount:            sp.Amount,
		PaidAt:            sp.PaidAt,
		CreatedAt:         sp.CreatedAt,
	}
}
