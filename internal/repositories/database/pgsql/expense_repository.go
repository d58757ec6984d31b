package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftline/craftline_backend/internal/apperrors"
	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `
	expense_id, project_id, title, category, amount, expense_date, notes,
	deleted, deleted_at, created_at, updated_at`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.ProjectID,
		&e.Title,
		&e.Category,
		&e.Amount,
		&e.ExpenseDate,
		&e.Notes,
		&e.Deleted,
		&e.DeletedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan expense: %w", err)
	}
	return &e, nil
}

// SaveExpense persists a new expense against an existing project.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (
			expense_id, project_id, title, category, amount, expense_date, notes,
			deleted, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.ProjectID,
		expense.Title,
		expense.Category,
		expense.Amount,
		expense.ExpenseDate,
		expense.Notes,
		expense.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	return scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
}

func (r *PgxExpenseRepository) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE project_id = $1 AND deleted = FALSE
		ORDER BY expense_date DESC, expense_id DESC;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expenseID string, patch domain.ExpensePatch, now time.Time) (*domain.Expense, error) {
	fields := []patchField{
		col("title", patch.Title, patch.Title != nil),
		col("category", patch.Category, patch.Category != nil),
		col("amount", patch.Amount, patch.Amount != nil),
		col("expense_date", patch.ExpenseDate, patch.ExpenseDate != nil),
		col("notes", patch.Notes, patch.Notes != nil),
	}

	query, args, ok := buildUpdate("expenses", "expense_id", expenseID, fields, now)
	if !ok {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update expense "+expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("expense not found or deleted: %w", apperrors.ErrNotFound)
	}
	return r.FindExpenseByID(ctx, expenseID)
}

// MarkExpenseDeleted soft-deletes one expense row. Its supplier payments are
// left alone; only the project cascade touches them.
func (r *PgxExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID string, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE expenses SET deleted = TRUE, deleted_at = $1, updated_at = $1
		WHERE expense_id = $2 AND deleted = FALSE;
	`, now, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
