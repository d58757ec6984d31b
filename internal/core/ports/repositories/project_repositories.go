package repositories

import (
	"context"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a project by id, including soft-deleted rows
	// (admin drill-down needs them); callers filter on Deleted as required.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves active (non-deleted) projects, newest first,
	// token-paginated. Returns the page and the next token ("" when exhausted).
	ListProjects(ctx context.Context, limit int, pageToken string) ([]domain.Project, string, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject applies a sparse patch. Only fields present in the patch
	// are written. Returns apperrors.ErrNotFound if no active row matched.
	UpdateProject(ctx context.Context, projectID string, patch domain.ProjectPatch, now time.Time) (*domain.Project, error)
}

// ProjectCascader runs the multi-table soft-delete/restore/purge transitions.
// Each call is one database transaction: every affected row commits together
// or none do.
type ProjectCascader interface {
	// SoftDeleteCascade marks the project and all of its currently-active
	// dependents deleted, nulls team back-references and flips a linked
	// quotation back to Approved. Returns apperrors.ErrNotFound when the
	// project row is absent.
	SoftDeleteCascade(ctx context.Context, projectID string, deletedBy *string, now time.Time) error

	// RestoreCascade un-deletes the project and every dependent currently
	// flagged deleted, and flips a linked quotation forward to Converted.
	RestoreCascade(ctx context.Context, projectID string, now time.Time) (*domain.Project, error)

	// PurgeCascade physically deletes the project and every dependent row,
	// regardless of soft-delete flags. Irreversible.
	PurgeCascade(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	ProjectCascader
}
