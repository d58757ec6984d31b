package dto

import (
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMaterialRequest is the payload for adding a material line to a project.
type CreateMaterialRequest struct {
	ProjectID string          `json:"projectID" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Unit      string          `json:"unit"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// MaterialResponse is the API representation of a material line.
type MaterialResponse struct {
	MaterialID string          `json:"materialID"`
	ProjectID  string          `json:"projectID"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit,omitempty"`
	UnitCost   decimal.Decimal `json:"unitCost"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CreateTaskRequest is the payload for adding a task to a project.
type CreateTaskRequest struct {
	ProjectID   string     `json:"projectID" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskResponse is the API representation of a project task.
type TaskResponse struct {
	TaskID      string     `json:"taskID"`
	ProjectID   string     `json:"projectID"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Done        bool       `json:"done"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToMaterialResponse maps a domain material to its API shape.
func ToMaterialResponse(m domain.Material) MaterialResponse {
	return MaterialResponse{
		MaterialID: m.MaterialID,
		ProjectID:  m.ProjectID,
		Name:       m.Name,
		Quantity:   m.Quantity,
		Unit:       m.Unit,
		UnitCost:   m.UnitCost,
		CreatedAt:  m.CreatedAt,
	}
}

// ToTaskResponse maps a domain task to its API shape.
func ToTaskResponse(t domain.ProjectTask) TaskResponse {
	return TaskResponse{
		TaskID:      t.TaskID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}
