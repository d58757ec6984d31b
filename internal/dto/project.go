package dto

import (
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest is the payload for creating a project, optionally from
// an approved quotation.
type CreateProjectRequest struct {
	Name           string          `json:"name" binding:"required"`
	ClientName     string          `json:"clientName" binding:"required"`
	ClientContact  string          `json:"clientContact"`
	ClientAddress  string          `json:"clientAddress"`
	Status         string          `json:"status" binding:"omitempty,oneof=Ongoing Completed Cancelled"`
	StartDate      time.Time       `json:"startDate" binding:"required"`
	Deadline       *time.Time      `json:"deadline"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	ExpectedProfit decimal.Decimal `json:"expectedProfit"`
	QuotationID    *string         `json:"quotationID"`
}

// UpdateProjectRequest is a sparse patch: only non-nil fields are written.
type UpdateProjectRequest struct {
	Name           *string          `json:"name"`
	ClientName     *string          `json:"clientName"`
	ClientContact  *string          `json:"clientContact"`
	ClientAddress  *string          `json:"clientAddress"`
	Status         *string          `json:"status" binding:"omitempty,oneof=Ongoing Completed Cancelled"`
	StartDate      *time.Time       `json:"startDate"`
	Deadline       *time.Time       `json:"deadline"`
	Amount         *decimal.Decimal `json:"amount"`
	ExpectedProfit *decimal.Decimal `json:"expectedProfit"`
}

// ProjectResponse is the API representation of a project.
type ProjectResponse struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	ClientName     string          `json:"clientName"`
	ClientContact  string          `json:"clientContact,omitempty"`
	ClientAddress  string          `json:"clientAddress,omitempty"`
	Status         string          `json:"status"`
	StartDate      time.Time       `json:"startDate"`
	Deadline       *time.Time      `json:"deadline,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	ExpectedProfit decimal.Decimal `json:"expectedProfit"`
	QuotationID    *string         `json:"quotationID,omitempty"`
	Deleted        bool            `json:"deleted"`
	DeletedAt      *time.Time      `json:"deletedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ListProjectsResponse wraps a page of projects with the next pagination token.
type ListProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	NextToken string            `json:"nextToken,omitempty"`
}

// DeleteProjectResponse acknowledges a soft-delete cascade.
type DeleteProjectResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// PurgeProjectResponse acknowledges a permanent purge.
type PurgeProjectResponse struct {
	Success bool `json:"success"`
}

// ToProjectResponse maps a domain project to its API shape.
func ToProjectResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:      p.ProjectID,
		Name:           p.Name,
		ClientName:     p.ClientName,
		ClientContact:  p.ClientContact,
		ClientAddress:  p.ClientAddress,
		Status:         string(p.Status),
		StartDate:      p.StartDate,
		Deadline:       p.Deadline,
		Amount:         p.Amount,
		ExpectedProfit: p.ExpectedProfit,
		QuotationID:    p.QuotationID,
		Deleted:        p.Deleted,
		DeletedAt:      p.DeletedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToListProjectsResponse maps a page of domain projects.
func ToListProjectsResponse(projects []domain.Project, nextToken string) ListProjectsResponse {
	resp := ListProjectsResponse{
		Projects:  make([]ProjectResponse, 0, len(projects)),
		NextToken: nextToken,
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, ToProjectResponse(p))
	}
	return resp
}
