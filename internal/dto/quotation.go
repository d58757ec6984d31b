package dto

import (
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuotationRequest is the payload for drafting a quotation.
type CreateQuotationRequest struct {
	ClientName string          `json:"clientName" binding:"required"`
	Title      string          `json:"title" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	ValidUntil *time.Time      `json:"validUntil"`
}

// UpdateQuotationStatusRequest moves a quotation through its lifecycle.
type UpdateQuotationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Draft Sent Approved Rejected Converted"`
}

// QuotationResponse is the API representation of a quotation.
type QuotationResponse struct {
	QuotationID string          `json:"quotationID"`
	ClientName  string          `json:"clientName"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	ValidUntil  *time.Time      `json:"validUntil,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToQuotationResponse maps a domain quotation to its API shape.
func ToQuotationResponse(q domain.Quotation) QuotationResponse {
	return QuotationResponse{
		QuotationID: q.QuotationID,
		ClientName:  q.ClientName,
		Title:       q.Title,
		Amount:      q.Amount,
		Status:      string(q.Status),
		ValidUntil:  q.ValidUntil,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
