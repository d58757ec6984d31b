package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the stored status vocabulary for a project. The frontend
// maps these onto a richer display vocabulary; only these three are persisted.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "Ongoing"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectCancelled ProjectStatus = "Cancelled"
)

// Project is a client engagement. Its dependent financial records (expenses,
// payments, materials, tasks, work entries) soft-delete and restore together
// with it as one atomic cascade.
type Project struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	ClientName     string          `json:"clientName"`
	ClientContact  string          `json:"clientContact"`
	ClientAddress  string          `json:"clientAddress"`
	Status         ProjectStatus   `json:"status"`
	StartDate      time.Time       `json:"startDate"`
	Deadline       *time.Time      `json:"deadline,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	ExpectedProfit decimal.Decimal `json:"expectedProfit"` // percentage
	QuotationID    *string         `json:"quotationID,omitempty"`
	SoftDeleteFields
	AuditFields
}

// ProjectPatch is a sparse set of field updates; nil fields are left alone.
// The repository maps each set field onto its column(s) through an explicit
// lookup table.
type ProjectPatch struct {
	Name           *string
	ClientName     *string
	ClientContact  *string
	ClientAddress  *string
	Status         *ProjectStatus
	StartDate      *time.Time
	Deadline       *time.Time
	Amount         *decimal.Decimal
	ExpectedProfit *decimal.Decimal
}

