package repositories

import (
	"context"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// ProjectItemRepositoryFacade covers the remaining per-project dependent
// records: materials, tasks and team work entries. All listings exclude
// soft-deleted rows.
type ProjectItemRepositoryFacade interface {
	SaveMaterial(ctx context.Context, material domain.Material) error
	ListMaterialsByProject(ctx context.Context, projectID string) ([]domain.Material, error)

	SaveTask(ctx context.Context, task domain.ProjectTask) error
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.ProjectTask, error)

	SaveWorkEntry(ctx context.Context, entry domain.TeamWorkEntry) error
	ListWorkEntriesByProject(ctx context.Context, projectID string) ([]domain.TeamWorkEntry, error)
}
