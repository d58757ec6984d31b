package services

import (
	"context"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/craftline/craftline_backend/internal/dto"
)

// ProjectReaderSvc defines read operations on projects.
type ProjectReaderSvc interface {
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, limit int, pageToken string) ([]domain.Project, string, error)
}

// ProjectWriterSvc defines create/update operations on projects.
type ProjectWriterSvc interface {
	// CreateProject creates a project; when the request links a quotation the
	// quotation is flipped to Converted.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
}

// ProjectLifecycleSvc drives the soft-delete/restore/purge cascades.
type ProjectLifecycleSvc interface {
	DeleteProject(ctx context.Context, projectID string, deletedBy *string) error
	RestoreProject(ctx context.Context, projectID string) (*domain.Project, error)
	PurgeProject(ctx context.Context, projectID string) error
}

// ProjectSvcFacade combines all project service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectLifecycleSvc
}
