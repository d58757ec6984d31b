package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftline/craftline_backend/internal/apperrors"
	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, name, contact, address, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.Contact,
		supplier.Address,
		supplier.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert supplier "+supplier.SupplierID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, contact, address, deleted, deleted_at, created_at, updated_at
		FROM suppliers
		WHERE deleted = FALSE
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(
			&s.SupplierID, &s.Name, &s.Contact, &s.Address,
			&s.Deleted, &s.DeletedAt, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning supplier row: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

// SaveSupplierPayment records a payout against an expense. A foreign key
// violation on the expense surfaces as NotFound.
func (r *PgxSupplierRepository) SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error {
	query := `
		INSERT INTO supplier_payments (
			supplier_payment_id, supplier_id, expense_id, amount, paid_at,
			deleted, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		payment.SupplierPaymentID,
		payment.SupplierID,
		payment.ExpenseID,
		payment.Amount,
		payment.PaidAt,
		payment.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("expense or supplier not found: %w", apperrors.ErrNotFound)
		}
		return apperrors.NewAppError(500, "failed to insert supplier payment "+payment.SupplierPaymentID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) ListSupplierPaymentsBySupplier(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error) {
	query := `
		SELECT supplier_payment_id, supplier_id, expense_id, amount, paid_at,
			deleted, deleted_at, created_at, updated_at
		FROM supplier_payments
		WHERE supplier_id = $1 AND deleted = FALSE
		ORDER BY paid_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("error querying supplier payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.SupplierPayment{}
	for rows.Next() {
		var sp domain.SupplierPayment
		if err := rows.Scan(
			&sp.SupplierPaymentID, &sp.SupplierID, &sp.ExpenseID, &sp.Amount, &sp.PaidAt,
			&sp.Deleted, &sp.DeletedAt, &sp.CreatedAt, &sp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning supplier payment row: %w", err)
		}
		payments = append(payments, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier payment rows: %w", err)
	}
	return payments, nil
}
