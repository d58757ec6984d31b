package services

import (
	"context"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// summaryMonths is the fixed width of the financial summary window.
const summaryMonths = 6

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	// now is swappable in tests
	now func() time.Time
}

// NewReportingService creates the financial summary service.
func NewReportingService(repo portsrepo.ReportingRepository) *reportingService {
	return &reportingService{reportingRepo: repo, now: time.Now}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// FinancialSummary returns exactly six rows, oldest first, covering the
// current calendar month and the five before it. Months with no activity
// appear with zero amounts.
func (s *reportingService) FinancialSummary(ctx context.Context) ([]domain.MonthlySummaryRow, error) {
	now := s.now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(summaryMonths - 1), 0)

	revenue, err := s.reportingRepo.GetMonthlyRevenue(ctx, windowStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly revenue")
		return nil, err
	}
	expense, err := s.reportingRepo.GetMonthlyExpense(ctx, windowStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly expense")
		return nil, err
	}

	revenueByMonth := indexByMonth(revenue)
	expenseByMonth := indexByMonth(expense)

	rows := make([]domain.MonthlySummaryRow, 0, summaryMonths)
	for i := 0; i < summaryMonths; i++ {
		monthStart := windowStart.AddDate(0, i, 0)
		rows = append(rows, domain.MonthlySummaryRow{
			MonthStart: monthStart,
			Month:      monthStart.Format("Jan"),
			Revenue:    revenueByMonth[monthKey(monthStart)],
			Expense:    expenseByMonth[monthKey(monthStart)],
		})
	}
	return rows, nil
}

// monthKey normalizes a month start for map lookup regardless of the time zone
// the database reports it in.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func indexByMonth(amounts []domain.MonthlyAmount) map[string]decimal.Decimal {
	byMonth := make(map[string]decimal.Decimal, len(amounts))
	for _, a := range amounts {
		byMonth[monthKey(a.MonthStart)] = byMonth[monthKey(a.MonthStart)].Add(a.Total)
	}
	return byMonth
}
