package pgsql

import (
	"context"
	"fmt"

	"github.com/craftline/craftline_backend/internal/apperrors"
	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProjectItemRepository covers materials, project tasks and team work
// entries. These mostly exist to be listed per project and to be swept by the
// project cascades.
type PgxProjectItemRepository struct {
	BaseRepository
}

func newPgxProjectItemRepository(pool *pgxpool.Pool) portsrepo.ProjectItemRepositoryFacade {
	return &PgxProjectItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectItemRepositoryFacade = (*PgxProjectItemRepository)(nil)

func (r *PgxProjectItemRepository) SaveMaterial(ctx context.Context, material domain.Material) error {
	query := `
		INSERT INTO materials (material_id, project_id, name, quantity, unit, unit_cost, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		material.MaterialID, material.ProjectID, material.Name,
		material.Quantity, material.Unit, material.UnitCost, material.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert material "+material.MaterialID, err)
	}
	return nil
}

func (r *PgxProjectItemRepository) ListMaterialsByProject(ctx context.Context, projectID string) ([]domain.Material, error) {
	query := `
		SELECT material_id, project_id, name, quantity, unit, unit_cost,
			deleted, deleted_at, created_at, updated_at
		FROM materials
		WHERE project_id = $1 AND deleted = FALSE
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error querying materials: %w", err)
	}
	defer rows.Close()

	materials := []domain.Material{}
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(
			&m.MaterialID, &m.ProjectID, &m.Name, &m.Quantity, &m.Unit, &m.UnitCost,
			&m.Deleted, &m.DeletedAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning material row: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating material rows: %w", err)
	}
	return materials, nil
}

func (r *PgxProjectItemRepository) SaveTask(ctx context.Context, task domain.ProjectTask) error {
	query := `
		INSERT INTO project_tasks (task_id, project_id, title, description, done, due_date, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		task.TaskID, task.ProjectID, task.Title, task.Description,
		task.Done, task.DueDate, task.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert task "+task.TaskID, err)
	}
	return nil
}

func (r *PgxProjectItemRepository) ListTasksByProject(ctx context.Context, projectID string) ([]domain.ProjectTask, error) {
	query := `
		SELECT task_id, project_id, title, description, done, due_date,
			deleted, deleted_at, created_at, updated_at
		FROM project_tasks
		WHERE project_id = $1 AND deleted = FALSE
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.ProjectTask{}
	for rows.Next() {
		var t domain.ProjectTask
		if err := rows.Scan(
			&t.TaskID, &t.ProjectID, &t.Title, &t.Description, &t.Done, &t.DueDate,
			&t.Deleted, &t.DeletedAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

func (r *PgxProjectItemRepository) SaveWorkEntry(ctx context.Context, entry domain.TeamWorkEntry) error {
	query := `
		INSERT INTO team_work_entries (work_entry_id, project_id, team_member_id, work_date, hours, amount, notes, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.WorkEntryID, entry.ProjectID, entry.TeamMemberID,
		entry.WorkDate, entry.Hours, entry.Amount, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert work entry "+entry.WorkEntryID, err)
	}
	return nil
}

func (r *PgxProjectItemRepository) ListWorkEntriesByProject(ctx context.Context, projectID string) ([]domain.TeamWorkEntry, error) {
	query := `
		SELECT work_entry_id, project_id, team_member_id, work_date, hours, amount, notes,
			deleted, deleted_at, created_at, updated_at
		FROM team_work_entries
		WHERE project_id = $1 AND deleted = FALSE
		ORDER BY work_date DESC, work_entry_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error querying work entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TeamWorkEntry{}
	for rows.Next() {
		var w domain.TeamWorkEntry
		if err := rows.Scan(
			&w.WorkEntryID, &w.ProjectID, &w.TeamMemberID, &w.WorkDate, &w.Hours, &w.Amount, &w.Notes,
			&w.Deleted, &w.DeletedAt, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning work entry row: %w", err)
		}
		entries = append(entries, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work entry rows: %w", err)
	}
	return entries, nil
}
