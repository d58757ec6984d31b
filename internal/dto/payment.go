package dto

import (
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the payload for recording a client payment.
type CreatePaymentRequest struct {
	ProjectID   string          `json:"projectID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
}

// UpdatePaymentRequest is a sparse patch for a payment.
type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *time.Time       `json:"paymentDate"`
	Method      *string          `json:"method"`
	Reference   *string          `json:"reference"`
}

// PaymentResponse is the API representation of a client payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	ProjectID   string          `json:"projectID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	Deleted     bool            `json:"deleted"`
	DeletedAt   *time.Time      `json:"deletedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToPaymentResponse maps a domain payment to its API shape.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		ProjectID:   p.ProjectID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      p.Method,
		Reference:   p.Reference,
		Deleted:     p.Deleted,
		DeletedAt:   p.DeletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
