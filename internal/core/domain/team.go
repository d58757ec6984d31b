package domain

import "github.com/shopspring/decimal"

// RateType describes how a team member is paid.
type RateType string

const (
	RateDaily   RateType = "daily"
	RateHourly  RateType = "hourly"
	RateMonthly RateType = "monthly"
)

// EmploymentStatus of a team member.
type EmploymentStatus string

const (
	EmploymentActive   EmploymentStatus = "active"
	EmploymentInactive EmploymentStatus = "inactive"
)

// Team is a crew of members. AssignedProjectID is a weak back-reference: it is
// nulled when the referenced project is soft-deleted, never cascaded, and it is
// not reinstated when the project is restored.
type Team struct {
	TeamID            string  `json:"teamID"`
	Name              string  `json:"name"`
	AssignedProjectID *string `json:"assignedProjectID,omitempty"`
	AuditFields
}

// TeamMemberPatch is a sparse set of team member field updates.
type TeamMemberPatch struct {
	TeamID     *string
	Name       *string
	Contact    *string
	Skills     *[]string
	Status     *EmploymentStatus
	RateType   *RateType
	RateAmount *decimal.Decimal
	PhotoURL   *string
}

// TeamMember is an individual worker. Deletion goes through the trash flow:
// the live row is soft-deleted and a point-in-time snapshot is kept in the
// trash table until restore or purge.
type TeamMember struct {
	TeamMemberID string           `json:"teamMemberID"`
	TeamID       *string          `json:"teamID,omitempty"`
	Name         string           `json:"name"`
	Contact      string           `json:"contact,omitempty"`
	Skills       []string         `json:"skills"`
	Status       EmploymentStatus `json:"status"`
	RateType     RateType         `json:"rateType"`
	RateAmount   decimal.Decimal  `json:"rateAmount"`
	PhotoURL     string           `json:"photoURL,omitempty"`
	SoftDeleteFields
	AuditFields
}
