package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAmount is one grouped sum keyed by the first instant of its month.
type MonthlyAmount struct {
	MonthStart time.Time
	Total      decimal.Decimal
}

// MonthlySummaryRow is one month of the financial summary: revenue from client
// payments, expense from project expenses plus labor entries.
type MonthlySummaryRow struct {
	MonthStart time.Time
	Month      string
	Revenue    decimal.Decimal
	Expense    decimal.Decimal
}
