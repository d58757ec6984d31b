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

const paymentColumns = `
	payment_id, project_id, amount, payment_date, method, reference,
	deleted, deleted_at, created_at, updated_at`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.ProjectID,
		&p.Amount,
		&p.PaymentDate,
		&p.Method,
		&p.Reference,
		&p.Deleted,
		&p.DeletedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return &p, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		INSERT INTO payments (
			payment_id, project_id, amount, payment_date, method, reference,
			deleted, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.ProjectID,
		payment.Amount,
		payment.PaymentDate,
		payment.Method,
		payment.Reference,
		payment.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+payment.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	return scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
}

func (r *PgxPaymentRepository) ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE project_id = $1 AND deleted = FALSE
		ORDER BY payment_date DESC, payment_id DESC;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, paymentID string, patch domain.PaymentPatch, now time.Time) (*domain.Payment, error) {
	fields := []patchField{
		col("amount", patch.Amount, patch.Amount != nil),
		col("payment_date", patch.PaymentDate, patch.PaymentDate != nil),
		col("method", patch.Method, patch.Method != nil),
		col("reference", patch.Reference, patch.Reference != nil),
	}

	query, args, ok := buildUpdate("payments", "payment_id", paymentID, fields, now)
	if !ok {
		return nil, fmt.Errorf("no fields to update: %w", apperrors.ErrValidation)
	}

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update payment "+paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("payment not found or deleted: %w", apperrors.ErrNotFound)
	}
	return r.FindPaymentByID(ctx, paymentID)
}

func (r *PgxPaymentRepository) MarkPaymentDeleted(ctx context.Context, paymentID string, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE payments SET deleted = TRUE, deleted_at = $1, updated_at = $1
		WHERE payment_id = $2 AND deleted = FALSE;
	`, now, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment "+paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
