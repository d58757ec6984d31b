package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is a line item of material purchased for a project.
type Material struct {
	MaterialID string          `json:"materialID"`
	ProjectID  string          `json:"projectID"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit,omitempty"`
	UnitCost   decimal.Decimal `json:"unitCost"`
	SoftDeleteFields
	AuditFields
}

// ProjectTask is a unit of site work tracked against a project.
type ProjectTask struct {
	TaskID      string     `json:"taskID"`
	ProjectID   string     `json:"projectID"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Done        bool       `json:"done"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	SoftDeleteFields
	AuditFields
}

// TeamWorkEntry records labor performed by a team member on a project.
// Its amount counts toward the expense side of the financial summary.
type TeamWorkEntry struct {
	WorkEntryID  string          `json:"workEntryID"`
	ProjectID    string          `json:"projectID"`
	TeamMemberID string          `json:"teamMemberID"`
	WorkDate     time.Time       `json:"workDate"`
	Hours        decimal.Decimal `json:"hours"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        string          `json:"notes,omitempty"`
	SoftDeleteFields
	AuditFields
}
