package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/google/uuid"
)

type projectItemService struct {
	BaseService
	itemRepo portsrepo.ProjectItemRepositoryFacade
}

// NewProjectItemService creates the service for materials, tasks and work
// entries.
func NewProjectItemService(repo portsrepo.ProjectItemRepositoryFacade) *projectItemService {
	return &projectItemService{itemRepo: repo}
}

var _ portssvc.ProjectItemSvcFacade = (*projectItemService)(nil)

func (s *projectItemService) CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest) (*domain.Material, error) {
	now := time.Now().UTC()
	material := domain.Material{
		MaterialID:  uuid.NewString(),
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		UnitCost:    req.UnitCost,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.itemRepo.SaveMaterial(ctx, material); err != nil {
		s.LogError(ctx, err, "Failed to save material", slog.String("project_id", req.ProjectID))
		return nil, err
	}
	return &material, nil
}

func (s *projectItemService) ListMaterialsByProject(ctx context.Context, projectID string) ([]domain.Material, error) {
	return s.itemRepo.ListMaterialsByProject(ctx, projectID)
}

func (s *projectItemService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.ProjectTask, error) {
	now := time.Now().UTC()
	task := domain.ProjectTask{
		TaskID:      uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.itemRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("project_id", req.ProjectID))
		return nil, err
	}
	return &task, nil
}

func (s *projectItemService) ListTasksByProject(ctx context.Context, projectID string) ([]domain.ProjectTask, error) {
	return s.itemRepo.ListTasksByProject(ctx, projectID)
}

func (s *projectItemService) CreateWorkEntry(ctx context.Context, req dto.CreateWorkEntryRequest) (*domain.TeamWorkEntry, error) {
	now := time.Now().UTC()
	entry := domain.TeamWorkEntry{
		WorkEntryID:  uuid.NewString(),
		ProjectID:    req.ProjectID,
		TeamMemberID: req.TeamMemberID,
		WorkDate:     req.WorkDate,
		Hours:        req.Hours,
		Amount:       req.Amount,
		Notes:        req.Notes,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.itemRepo.SaveWorkEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save work entry", slog.String("project_id", req.ProjectID))
		return nil, err
	}
	return &entry, nil
}

func (s *projectItemService) ListWorkEntriesByProject(ctx context.Context, projectID string) ([]domain.TeamWorkEntry, error) {
	return s.itemRepo.ListWorkEntriesByProject(ctx, projectID)
}
