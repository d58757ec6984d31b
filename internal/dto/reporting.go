package dto

import "github.com/craftline/craftline_backend/internal/core/domain"

// MonthlySummaryResponse is one month of the financial summary. Revenue and
// expense are plain JSON numbers, zero when the month has no matching rows.
type MonthlySummaryResponse struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
}

// ToMonthlySummaryResponse maps the six summary rows to their API shape.
func ToMonthlySummaryResponse(rows []domain.MonthlySummaryRow) []MonthlySummaryResponse {
	resp := make([]MonthlySummaryResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, MonthlySummaryResponse{
			Month:   r.Month,
			Revenue: r.Revenue.InexactFloat64(),
			Expense: r.Expense.InexactFloat64(),
		})
	}
	return resp
}
