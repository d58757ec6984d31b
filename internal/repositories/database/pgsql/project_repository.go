package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftline/craftline_backend/internal/apperrors"
	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	"github.com/craftline/craftline_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// projectDependentTables are the tables whose rows soft-delete and restore
// together with their project. Supplier payments are handled separately since
// they belong to a project only through their expense.
var projectDependentTables = []string{
	"expenses",
	"payments",
	"materials",
	"project_tasks",
	"team_work_entries",
}

const projectColumns = `
	project_id, name, client_name, client_contact, client_address, status,
	start_date, deadline, amount, expected_profit, quotation_id,
	deleted, deleted_at, deleted_by, created_at, updated_at`

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data and the
// project cascade transitions.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID,
		&p.Name,
		&p.ClientName,
		&p.ClientContact,
		&p.ClientAddress,
		&p.Status,
		&p.StartDate,
		&p.Deadline,
		&p.Amount,
		&p.ExpectedProfit,
		&p.QuotationID,
		&p.Deleted,
		&p.DeletedAt,
		&p.DeletedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return &p, nil
}

// SaveProject persists a new project. When the project was created from a
// quotation, the quotation is flipped to Converted in the same transaction.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO projects (
				project_id, name, client_name, client_contact, client_address, status,
				start_date, deadline, end_date, amount, expected_profit, quotation_id,
				deleted, created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $9, $10, $11, FALSE, $12, $12);
		`
		_, err := tx.Exec(ctx, query,
			project.ProjectID,
			project.Name,
			project.ClientName,
			project.ClientContact,
			project.ClientAddress,
			project.Status,
			project.StartDate,
			project.Deadline,
			project.Amount,
			project.ExpectedProfit,
			project.QuotationID,
			project.CreatedAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert project "+project.ProjectID, err)
		}

		if project.QuotationID != nil {
			cmdTag, err := tx.Exec(ctx,
				`UPDATE quotations SET status = $1, updated_at = $2 WHERE quotation_id = $3`,
				domain.QuotationConverted, project.CreatedAt, *project.QuotationID,
			)
			if err != nil {
				return apperrors.NewAppError(500, "failed to mark quotation converted", err)
			}
			if cmdTag.RowsAffected() == 0 {
				return fmt.Errorf("linked quotation not found: %w", apperrors.ErrNotFound)
			}
		}
		return nil
	})
}

// FindProjectByID retrieves a project by id, soft-deleted rows included.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	return scanProject(r.Pool.QueryRow(ctx, query, projectID))
}

// ListProjects retrieves active projects, newest first, token-paginated.
func (r *PgxProjectRepository) ListProjects(ctx context.Context, limit int, pageToken string) ([]domain.Project, string, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE deleted = FALSE`
	args := []any{}

	if pageToken != "" {
		createdAt, projectID, err := pagination.DecodeToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", apperrors.ErrValidation)
		}
		query += ` AND (created_at, project_id) < ($1, $2)`
		args = append(args, createdAt, projectID)
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, project_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0, limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, "", err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating project rows: %w", err)
	}

	nextToken := ""
	if len(projects) > limit {
		projects = projects[:limit]
		last := projects[len(projects)-1]
		nextToken = pagination.EncodeToken(last.CreatedAt, last.ProjectID)
	}
	return projects, nextToken, nil
}

// UpdateProject applies a sparse patch through the explicit field-to-column
// table. The deadline field dual-writes the legacy end_date column.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, projectID string, patch domain.ProjectPatch, now time.Time) (*domain.Project, error) {
	fields := []patchField{
		col("name", patch.Name, patch.Name != nil),
		col("client_name", patch.ClientName, patch.ClientName != nil),
		col("client_contact", patch.ClientContact, patch.ClientContact != nil),
		col("client_address", patch.ClientAddress, patch.ClientAddress != nil),
		col("status", patch.Status, patch.Status != nil),
		col("start_date", patch.StartDate, patch.StartDate != nil),
		cols([]string{"deadline", "end_date"}, patch.Deadline, patch.Deadline != nil),
		col("amount", patch.Amount, patch.Amount != nil),
		col("expected_profit", patch.ExpectedProfit, patch.ExpectedProfit != nil),
	}

	query, args, ok := buildUpdate("projects", "project_id", projectID, fields, now)
	if !ok {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update project "+projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("project not found or deleted: %w", apperrors.ErrNotFound)
	}
	return r.FindProjectByID(ctx, projectID)
}

// SoftDeleteCascade marks the project and every currently-active dependent
// deleted in one transaction. Already-deleted dependents keep their original
// deleted_at stamp. Team back-references to the project are nulled, and a
// linked quotation goes back to Approved.
func (r *PgxProjectRepository) SoftDeleteCascade(ctx context.Context, projectID string, deletedBy *string, now time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		var quotationID *string
		err := tx.QueryRow(ctx, `
			UPDATE projects
			SET deleted = TRUE, deleted_at = $1, deleted_by = $2, updated_at = $1
			WHERE project_id = $3
			RETURNING quotation_id;
		`, now, deletedBy, projectID).Scan(&quotationID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("project not found: %w", apperrors.ErrNotFound)
			}
			return apperrors.NewAppError(500, "failed to soft-delete project "+projectID, err)
		}

		for _, table := range projectDependentTables {
			query := fmt.Sprintf(`
				UPDATE %s SET deleted = TRUE, deleted_at = $1
				WHERE project_id = $2 AND deleted = FALSE;
			`, table)
			if _, err := tx.Exec(ctx, query, now, projectID); err != nil {
				return apperrors.NewAppError(500, "failed to soft-delete "+table+" of project "+projectID, err)
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE supplier_payments SET deleted = TRUE, deleted_at = $1
			WHERE deleted = FALSE
				AND expense_id IN (SELECT expense_id FROM expenses WHERE project_id = $2);
		`, now, projectID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to soft-delete supplier payments of project "+projectID, err)
		}

		// Weak back-reference: nulled, not cascaded. Restore does not undo this.
		_, err = tx.Exec(ctx, `
			UPDATE teams SET assigned_project_id = NULL, updated_at = $1
			WHERE assigned_project_id = $2;
		`, now, projectID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to clear team assignments for project "+projectID, err)
		}

		if quotationID != nil {
			_, err = tx.Exec(ctx,
				`UPDATE quotations SET status = $1, updated_at = $2 WHERE quotation_id = $3;`,
				domain.QuotationApproved, now, *quotationID,
			)
			if err != nil {
				return apperrors.NewAppError(500, "failed to revert quotation status", err)
			}
		}
		return nil
	})
}

// RestoreCascade un-deletes the project and every dependent currently flagged
// deleted, in one transaction. Dependents that were soft-deleted on their own
// before the project cascade get restored too; there is no per-row marker
// distinguishing them from cascade-deleted rows.
func (r *PgxProjectRepository) RestoreCascade(ctx context.Context, projectID string, now time.Time) (*domain.Project, error) {
	var restored *domain.Project
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			UPDATE projects
			SET deleted = FALSE, deleted_at = NULL, deleted_by = NULL, updated_at = $1
			WHERE project_id = $2
			RETURNING `+projectColumns+`;
		`, now, projectID)
		p, err := scanProject(row)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("project not found: %w", apperrors.ErrNotFound)
			}
			return err
		}

		for _, table := range projectDependentTables {
			query := fmt.Sprintf(`
				UPDATE %s SET deleted = FALSE, deleted_at = NULL
				WHERE project_id = $1 AND deleted = TRUE;
			`, table)
			if _, err := tx.Exec(ctx, query, projectID); err != nil {
				return apperrors.NewAppError(500, "failed to restore "+table+" of project "+projectID, err)
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE supplier_payments SET deleted = FALSE, deleted_at = NULL
			WHERE deleted = TRUE
				AND expense_id IN (SELECT expense_id FROM expenses WHERE project_id = $1);
		`, projectID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to restore supplier payments of project "+projectID, err)
		}

		if p.QuotationID != nil {
			_, err = tx.Exec(ctx,
				`UPDATE quotations SET status = $1, updated_at = $2 WHERE quotation_id = $3;`,
				domain.QuotationConverted, now, *p.QuotationID,
			)
			if err != nil {
				return apperrors.NewAppError(500, "failed to re-convert quotation", err)
			}
		}

		restored = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restored, nil
}

// PurgeCascade physically deletes the project and all dependent rows,
// regardless of soft-delete flags. Children go first to satisfy foreign keys.
func (r *PgxProjectRepository) PurgeCascade(ctx context.Context, projectID string) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			DELETE FROM supplier_payments
			WHERE expense_id IN (SELECT expense_id FROM expenses WHERE project_id = $1);
		`, projectID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to purge supplier payments of project "+projectID, err)
		}

		for _, table := range projectDependentTables {
			query := fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1;`, table)
			if _, err := tx.Exec(ctx, query, projectID); err != nil {
				return apperrors.NewAppError(500, "failed to purge "+table+" of project "+projectID, err)
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE teams SET assigned_project_id = NULL
			WHERE assigned_project_id = $1;
		`, projectID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to clear team assignments for project "+projectID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID); err != nil {
			return apperrors.NewAppError(500, "failed to purge project "+projectID, err)
		}
		return nil
	})
}
