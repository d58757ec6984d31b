package services

import (
	"context"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// ReportingService produces the financial summary: exactly six calendar
// months (the current one plus the five before it), ascending, zero-filled.
type ReportingService interface {
	FinancialSummary(ctx context.Context) ([]domain.MonthlySummaryRow, error)
}
