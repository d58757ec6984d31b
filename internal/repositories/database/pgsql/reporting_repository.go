package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

// GetMonthlyRevenue sums non-deleted client payments per calendar month.
func (r *reportingRepository) GetMonthlyRevenue(ctx context.Context, from time.Time) ([]domain.MonthlyAmount, error) {
	query := `
		SELECT date_trunc('month', payment_date) AS month, SUM(amount) AS total
		FROM payments
		WHERE deleted = FALSE AND payment_date >= $1
		GROUP BY 1
		ORDER BY 1
	`
	return r.queryMonthlyAmounts(ctx, query, from, "revenue")
}

// GetMonthlyExpense sums non-deleted expenses and non-deleted labor entries
// per calendar month. The two sources are combined additively, not reported
// separately.
func (r *reportingRepository) GetMonthlyExpense(ctx context.Context, from time.Time) ([]domain.MonthlyAmount, error) {
	query := `
		SELECT month, SUM(amount) AS total
		FROM (
			SELECT date_trunc('month', expense_date) AS month, amount
			FROM expenses
			WHERE deleted = FALSE AND expense_date >= $1
			UNION ALL
			SELECT date_trunc('month', work_date) AS month, amount
			FROM team_work_entries
			WHERE deleted = FALSE AND work_date >= $1
		) combined
		GROUP BY month
		ORDER BY month
	`
	return r.queryMonthlyAmounts(ctx, query, from, "expense")
}

func (r *reportingRepository) queryMonthlyAmounts(ctx context.Context, query string, from time.Time, kind string) ([]domain.MonthlyAmount, error) {
	rows, err := r.Pool.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly %s data: %w", kind, err)
	}
	defer rows.Close()

	result := []domain.MonthlyAmount{}
	for rows.Next() {
		var monthStart time.Time
		var total decimal.Decimal
		if err := rows.Scan(&monthStart, &total); err != nil {
			return nil, fmt.Errorf("error scanning monthly %s row: %w", kind, err)
		}
		result = append(result, domain.MonthlyAmount{MonthStart: monthStart, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly %s rows: %w", kind, err)
	}
	return result, nil
}
