package services

import (
	"context"

	"github.com/craftline/craftline_backend/internal/core/domain"
	"github.com/craftline/craftline_backend/internal/dto"
)

// QuotationSvcFacade covers quotation operations.
type QuotationSvcFacade interface {
	CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*domain.Quotation, error)
	GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)
	ListQuotations(ctx context.Context) ([]domain.Quotation, error)
	UpdateQuotationStatus(ctx context.Context, quotationID string, req dto.UpdateQuotationStatusRequest) (*domain.Quotation, error)
}
