package repositories

import (
	"context"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// ReportingRepository provides the grouped sums behind the financial summary.
// Soft-deleted rows never contribute to either side.
type ReportingRepository interface {
	// GetMonthlyRevenue sums non-deleted payment amounts per calendar month,
	// from the given month start onward, keyed by payment date.
	GetMonthlyRevenue(ctx context.Context, from time.Time) ([]domain.MonthlyAmount, error)

	// GetMonthlyExpense sums non-deleted expense amounts plus non-deleted
	// work entry amounts per calendar month, from the given month start
	// onward, keyed by their respective dates.
	GetMonthlyExpense(ctx context.Context, from time.Time) ([]domain.MonthlyAmount, error)
}
