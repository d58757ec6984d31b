package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus lifecycle. Converting a quotation into a project moves it to
// Converted; soft-deleting that project moves it back to Approved, and
// restoring the project moves it forward to Converted again.
type QuotationStatus string

const (
	QuotationDraft     QuotationStatus = "Draft"
	QuotationSent      QuotationStatus = "Sent"
	QuotationApproved  QuotationStatus = "Approved"
	QuotationRejected  QuotationStatus = "Rejected"
	QuotationConverted QuotationStatus = "Converted"
)

// Quotation is a priced proposal for a prospective project.
type Quotation struct {
	QuotationID string          `json:"quotationID"`
	ClientName  string          `json:"clientName"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Status      QuotationStatus `json:"status"`
	ValidUntil  *time.Time      `json:"validUntil,omitempty"`
	SoftDeleteFields
	AuditFields
}
