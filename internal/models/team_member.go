package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TeamMember is the database row shape for a team member. Skills are stored as
// a JSON text column; only the mapping package reads or writes that encoding.
type TeamMember struct {
	TeamMemberID string
	TeamID       *string
	Name         string
	Contact      string
	SkillsJSON   string
	Status       string
	RateType     string
	RateAmount   decimal.Decimal
	PhotoURL     string
	Deleted      bool
	DeletedAt    *time.Time
	DeletedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
