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

const quotationColumns = `
	quotation_id, client_name, title, amount, status, valid_until,
	deleted, deleted_at, created_at, updated_at`

type PgxQuotationRepository struct {
	BaseRepository
}

func newPgxQuotationRepository(pool *pgxpool.Pool) portsrepo.QuotationRepositoryFacade {
	return &PgxQuotationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuotationRepositoryFacade = (*PgxQuotationRepository)(nil)

func scanQuotation(row pgx.Row) (*domain.Quotation, error) {
	var q domain.Quotation
	err := row.Scan(
		&q.QuotationID,
		&q.ClientName,
		&q.Title,
		&q.Amount,
		&q.Status,
		&q.ValidUntil,
		&q.Deleted,
		&q.DeletedAt,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan quotation: %w", err)
	}
	return &q, nil
}

func (r *PgxQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	query := `
		INSERT INTO quotations (quotation_id, client_name, title, amount, status, valid_until, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		quotation.QuotationID,
		quotation.ClientName,
		quotation.Title,
		quotation.Amount,
		quotation.Status,
		quotation.ValidUntil,
		quotation.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert quotation "+quotation.QuotationID, err)
	}
	return nil
}

func (r *PgxQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE quotation_id = $1;`
	return scanQuotation(r.Pool.QueryRow(ctx, query, quotationID))
}

func (r *PgxQuotationRepository) ListQuotations(ctx context.Context) ([]domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + `
		FROM quotations
		WHERE deleted = FALSE
		ORDER BY created_at DESC, quotation_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying quotations: %w", err)
	}
	defer rows.Close()

	quotations := []domain.Quotation{}
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotation rows: %w", err)
	}
	return quotations, nil
}

func (r *PgxQuotationRepository) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, now time.Time) (*domain.Quotation, error) {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE quotations SET status = $1, updated_at = $2
		WHERE quotation_id = $3 AND deleted = FALSE;
	`, status, now, quotationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update quotation "+quotationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("quotation not found: %w", apperrors.ErrNotFound)
	}
	return r.FindQuotationByID(ctx, quotationID)
}
