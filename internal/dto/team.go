package dto

import (
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name              string  `json:"name" binding:"required"`
	AssignedProjectID *string `json:"assignedProjectID"`
}

// TeamResponse is the API representation of a team.
type TeamResponse struct {
	TeamID            string    `json:"teamID"`
	Name              string    `json:"name"`
	AssignedProjectID *string   `json:"assignedProjectID,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CreateTeamMemberRequest is the payload for adding a team member.
type CreateTeamMemberRequest struct {
	TeamID     *string         `json:"teamID"`
	Name       string          `json:"name" binding:"required"`
	Contact    string          `json:"contact"`
	Skills     []string        `json:"skills"`
	Status     string          `json:"status" binding:"omitempty,oneof=active inactive"`
	RateType   string          `json:"rateType" binding:"omitempty,oneof=daily hourly monthly"`
	RateAmount decimal.Decimal `json:"rateAmount"`
	PhotoURL   string          `json:"photoURL"`
}

// UpdateTeamMemberRequest is a sparse patch for a team member.
type UpdateTeamMemberRequest struct {
	TeamID     *string          `json:"teamID"`
	Name       *string          `json:"name"`
	Contact    *string          `json:"contact"`
	Skills     *[]string        `json:"skills"`
	Status     *string          `json:"status" binding:"omitempty,oneof=active inactive"`
	RateType   *string          `json:"rateType" binding:"omitempty,oneof=daily hourly monthly"`
	RateAmount *decimal.Decimal `json:"rateAmount"`
	PhotoURL   *string          `json:"photoURL"`
}

// DeleteTeamMemberRequest carries the optional reason and actor for a
// move-to-trash.
type DeleteTeamMemberRequest struct {
	Reason    *string `json:"reason"`
	DeletedBy *string `json:"deletedBy"`
}

// TrashActorRequest carries the optional actor for restore/purge calls.
type TrashActorRequest struct {
	ActorUserID *string `json:"actorUserId"`
}

// TeamMemberResponse is the API representation of a team member.
type TeamMemberResponse struct {
	TeamMemberID string          `json:"teamMemberID"`
	TeamID       *string         `json:"teamID,omitempty"`
	Name         string          `json:"name"`
	Contact      string          `json:"contact,omitempty"`
	Skills       []string        `json:"skills"`
	Status       string          `json:"status"`
	RateType     string          `json:"rateType"`
	RateAmount   decimal.Decimal `json:"rateAmount"`
	PhotoURL     string          `json:"photoURL,omitempty"`
	Deleted      bool            `json:"deleted"`
	DeletedAt    *time.Time      `json:"deletedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CreateWorkEntryRequest records labor against a project.
type CreateWorkEntryRequest struct {
	ProjectID    string          `json:"projectID" binding:"required"`
	TeamMemberID string          `json:"teamMemberID" binding:"required"`
	WorkDate     time.Time       `json:"workDate" binding:"required"`
	Hours        decimal.Decimal `json:"hours"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Notes        string          `json:"notes"`
}

// WorkEntryResponse is the API representation of a team work entry.
type WorkEntryResponse struct {
	WorkEntryID  string          `json:"workEntryID"`
	ProjectID    string          `json:"projectID"`
	TeamMemberID string          `json:"teamMemberID"`
	WorkDate     time.Time       `json:"workDate"`
	Hours        decimal.Decimal `json:"hours"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToTeamResponse maps a domain team to its API shape.
func ToTeamResponse(t domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:            t.TeamID,
		Name:              t.Name,
		AssignedProjectID: t.AssignedProjectID,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToTeamMemberResponse maps a domain team member to its API shape.
func ToTeamMemberResponse(m domain.TeamMember) TeamMemberResponse {
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	return TeamMemberResponse{
		TeamMemberID: m.TeamMemberID,
		TeamID:       m.TeamID,
		Name:         m.Name,
		Contact:      m.Contact,
		Skills:       skills,
		Status:       string(m.Status),
		RateType:     string(m.RateType),
		RateAmount:   m.RateAmount,
		PhotoURL:     m.PhotoURL,
		Deleted:      m.Deleted,
		DeletedAt:    m.DeletedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToWorkEntryResponse maps a domain work entry to its API shape.
func ToWorkEntryResponse(w domain.TeamWorkEntry) WorkEntryResponse {
	return WorkEntryResponse{
		WorkEntryID:  w.WorkEntryID,
		ProjectID:    w.ProjectID,
		TeamMemberID: w.TeamMemberID,
		WorkDate:     w.WorkDate,
		Hours:        w.Hours,
		Amount:       w.Amount,
		Notes:        w.Notes,
		CreatedAt:    w.CreatedAt,
	}
}
