package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a cost booked against a project.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	ProjectID   string          `json:"projectID"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Notes       string          `json:"notes,omitempty"`
	SoftDeleteFields
	AuditFields
}

// Payment is money received from a client for a project. Payments drive the
// revenue side of the financial summary.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	ProjectID   string          `json:"projectID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	SoftDeleteFields
	AuditFields
}

// ExpensePatch is a sparse set of expense field updates.
type ExpensePatch struct {
	Title       *string
	Category    *string
	Amount      *decimal.Decimal
	ExpenseDate *time.Time
	Notes       *string
}

// PaymentPatch is a sparse set of payment field updates.
type PaymentPatch struct {
	Amount      *decimal.Decimal
	PaymentDate *time.Time
	Method      *string
	Reference   *string
}

// Supplier is a vendor the firm buys materials or services from.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Contact    string `json:"contact,omitempty"`
	Address    string `json:"address,omitempty"`
	SoftDeleteFields
	AuditFields
}

// SupplierPayment is a payout to a supplier against an expense. It belongs to
// a project only transitively through its expense, which is the membership the
// project cascade follows.
type SupplierPayment struct {
	SupplierPaymentID string          `json:"supplierPaymentID"`
	SupplierID        string          `json:"supplierID"`
	ExpenseID         string          `json:"expenseID"`
	Amount            decimal.Decimal `json:"amount"`
	PaidAt            time.Time       `json:"paidAt"`
	SoftDeleteFields
	AuditFields
}
