package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftline/craftline_backend/internal/apperrors"
	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/google/uuid"
)

const defaultProjectPageSize = 50

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo   portsrepo.ProjectRepositoryFacade
	quotationRepo portsrepo.QuotationRepositoryFacade
}

// ProjectServiceOption is a functional option for configuring the project service
type ProjectServiceOption func(*projectService)

// WithQuotationRepository sets the quotation repository used to validate
// quotation links on create.
func WithQuotationRepository(repo portsrepo.QuotationRepositoryFacade) ProjectServiceOption {
	return func(s *projectService) {
		s.quotationRepo = repo
	}
}

// NewProjectService creates a new project service with the provided options
func NewProjectService(repo portsrepo.ProjectRepositoryFacade, options ...ProjectServiceOption) portssvc.ProjectSvcFacade {
	svc := &projectService{projectRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// CreateProject creates a project. When a quotation is linked, the quotation
// must be Approved and is flipped to Converted in the same transaction as the
// insert.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	now := time.Now().UTC()

	status := domain.ProjectOngoing
	if req.Status != "" {
		status = domain.ProjectStatus(req.Status)
	}

	if req.QuotationID != nil && s.quotationRepo != nil {
		quotation, err := s.quotationRepo.FindQuotationByID(ctx, *req.QuotationID)
		if err != nil {
			s.LogError(ctx, err, "Linked quotation lookup failed", slog.String("quotation_id", *req.QuotationID))
			return nil, err
		}
		if quotation.Status != domain.QuotationApproved {
			return nil, fmt.Errorf("quotation %s is not approved: %w", *req.QuotationID, apperrors.ErrValidation)
		}
	}

	project := domain.Project{
		ProjectID:      uuid.NewString(),
		Name:           req.Name,
		ClientName:     req.ClientName,
		ClientContact:  req.ClientContact,
		ClientAddress:  req.ClientAddress,
		Status:         status,
		StartDate:      req.StartDate,
		Deadline:       req.Deadline,
		Amount:         req.Amount,
		ExpectedProfit: req.ExpectedProfit,
		QuotationID:    req.QuotationID,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_id", project.ProjectID))
		return nil, err
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, limit int, pageToken string) ([]domain.Project, string, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultProjectPageSize
	}
	return s.projectRepo.ListProjects(ctx, limit, pageToken)
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	patch := domain.ProjectPatch{
		Name:           req.Name,
		ClientName:     req.ClientName,
		ClientContact:  req.ClientContact,
		ClientAddress:  req.ClientAddress,
		StartDate:      req.StartDate,
		Deadline:       req.Deadline,
		Amount:         req.Amount,
		ExpectedProfit: req.ExpectedProfit,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		patch.Status = &status
	}

	project, err := s.projectRepo.UpdateProject(ctx, projectID, patch, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	return project, nil
}

// DeleteProject runs the soft-delete cascade: the project and all of its
// active dependents flip together, team assignments are cleared and a linked
// quotation returns to Approved.
func (s *projectService) DeleteProject(ctx context.Context, projectID string, deletedBy *string) error {
	if err := s.projectRepo.SoftDeleteCascade(ctx, projectID, deletedBy, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Soft-delete cascade failed", slog.String("project_id", projectID))
		return err
	}
	s.LogInfo(ctx, "Project soft-deleted", slog.String("project_id", projectID))
	return nil
}

// RestoreProject reverses the soft-delete cascade and returns the restored row.
func (s *projectService) RestoreProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.RestoreCascade(ctx, projectID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Restore cascade failed", slog.String("project_id", projectID))
		return nil, err
	}
	s.LogInfo(ctx, "Project restored", slog.String("project_id", projectID))
	return project, nil
}

// PurgeProject physically removes the project and every dependent row.
func (s *projectService) PurgeProject(ctx context.Context, projectID string) error {
	if err := s.projectRepo.PurgeCascade(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Purge cascade failed", slog.String("project_id", projectID))
		return err
	}
	s.LogInfo(ctx, "Project purged", slog.String("project_id", projectID))
	return nil
}
