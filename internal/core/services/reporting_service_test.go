package services

import (
	"context"
	"testing"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// White-box suite: the clock is injected through the unexported now field.

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetMonthlyRevenue(ctx context.Context, from time.Time) ([]domain.MonthlyAmount, error) {
	args := m.Called(ctx, from)
	var amounts []domain.MonthlyAmount
	if args.Get(0) != nil {
		amounts = args.Get(0).([]domain.MonthlyAmount)
	}
	return amounts, args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyExpense(ctx context.Context, from time.Time) ([]domain.MonthlyAmount, error) {
	args := m.Called(ctx, from)
	var amounts []domain.MonthlyAmount
	if args.Get(0) != nil {
		amounts = args.Get(0).([]domain.MonthlyAmount)
	}
	return amounts, args.Error(1)
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  *reportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = NewReportingService(suite.mockRepo)
	// Pin the clock mid-window so month boundaries are deterministic.
	suite.service.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func (suite *ReportingServiceTestSuite) TestFinancialSummary_SixMonthWindow() {
	ctx := context.Background()
	windowStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	revenue := []domain.MonthlyAmount{
		{MonthStart: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(50000)},
		{MonthStart: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(125000)},
	}
	expense := []domain.MonthlyAmount{
		{MonthStart: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(18000)},
		{MonthStart: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(7500)},
	}

	suite.mockRepo.On("GetMonthlyRevenue", ctx, windowStart).Return(revenue, nil).Once()
	suite.mockRepo.On("GetMonthlyExpense", ctx, windowStart).Return(expense, nil).Once()

	rows, err := suite.service.FinancialSummary(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 6)

	suite.Equal([]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, monthLabels(rows))

	// January has no activity and is zero-filled.
	suite.True(rows[0].Revenue.IsZero())
	suite.True(rows[0].Expense.IsZero())

	suite.True(rows[1].Revenue.Equal(decimal.NewFromInt(50000)))
	suite.True(rows[1].Expense.Equal(decimal.NewFromInt(18000)))
	suite.True(rows[4].Expense.Equal(decimal.NewFromInt(7500)))
	suite.True(rows[4].Revenue.IsZero())
	suite.True(rows[5].Revenue.Equal(decimal.NewFromInt(125000)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestFinancialSummary_WindowCrossesYearBoundary() {
	ctx := context.Background()
	suite.service.now = func() time.Time {
		return time.Date(2025, time.February, 3, 9, 0, 0, 0, time.UTC)
	}
	windowStart := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("GetMonthlyRevenue", ctx, windowStart).Return([]domain.MonthlyAmount{}, nil).Once()
	suite.mockRepo.On("GetMonthlyExpense", ctx, windowStart).Return([]domain.MonthlyAmount{}, nil).Once()

	rows, err := suite.service.FinancialSummary(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 6)
	suite.Equal([]string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, monthLabels(rows))
	for _, row := range rows {
		suite.True(row.Revenue.IsZero())
		suite.True(row.Expense.IsZero())
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestFinancialSummary_SumsDuplicateMonthRows() {
	ctx := context.Background()

	// Two revenue rows land in the same month; they are summed, not replaced.
	revenue := []domain.MonthlyAmount{
		{MonthStart: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(1000)},
		{MonthStart: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(250)},
	}

	suite.mockRepo.On("GetMonthlyRevenue", ctx, mock.AnythingOfType("time.Time")).Return(revenue, nil).Once()
	suite.mockRepo.On("GetMonthlyExpense", ctx, mock.AnythingOfType("time.Time")).Return([]domain.MonthlyAmount{}, nil).Once()

	rows, err := suite.service.FinancialSummary(ctx)

	suite.Require().NoError(err)
	suite.True(rows[5].Revenue.Equal(decimal.NewFromInt(1250)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestFinancialSummary_RevenueError() {
	ctx := context.Background()

	suite.mockRepo.On("GetMonthlyRevenue", ctx, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	rows, err := suite.service.FinancialSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetMonthlyExpense", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestFinancialSummary_ExpenseError() {
	ctx := context.Background()

	suite.mockRepo.On("GetMonthlyRevenue", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.MonthlyAmount{}, nil).Once()
	suite.mockRepo.On("GetMonthlyExpense", ctx, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	rows, err := suite.service.FinancialSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func monthLabels(rows []domain.MonthlySummaryRow) []string {
	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Month)
	}
	return labels
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
