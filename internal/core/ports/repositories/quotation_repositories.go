package repositories

import (
	"context"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// QuotationRepositoryFacade covers quotations. Status flips performed as part
// of project cascades happen inside the cascade transactions, not here.
type QuotationRepositoryFacade interface {
	SaveQuotation(ctx context.Context, quotation domain.Quotation) error
	FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)
	ListQuotations(ctx context.Context) ([]domain.Quotation, error)
	// UpdateQuotationStatus moves a quotation to the given status. Returns
	// apperrors.ErrNotFound if no row matched.
	UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, now time.Time) (*domain.Quotation, error)
}
