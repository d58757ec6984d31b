package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
	portsrepo "github.com/craftline/craftline_backend/internal/core/ports/repositories"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/google/uuid"
)

type quotationService struct {
	BaseService
	quotationRepo portsrepo.QuotationRepositoryFacade
}

// NewQuotationService creates a new quotation service.
func NewQuotationService(repo portsrepo.QuotationRepositoryFacade) *quotationService {
	return &quotationService{quotationRepo: repo}
}

var _ portssvc.QuotationSvcFacade = (*quotationService)(nil)

func (s *quotationService) CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*domain.Quotation, error) {
	now := time.Now().UTC()
	quotation := domain.Quotation{
		QuotationID: uuid.NewString(),
		ClientName:  req.ClientName,
		Title:       req.Title,
		Amount:      req.Amount,
		Status:      domain.QuotationDraft,
		ValidUntil:  req.ValidUntil,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.quotationRepo.SaveQuotation(ctx, quotation); err != nil {
		s.LogError(ctx, err, "Failed to save quotation", slog.String("quotation_id", quotation.QuotationID))
		return nil, err
	}
	return &quotation, nil
}

func (s *quotationService) GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	return s.quotationRepo.FindQuotationByID(ctx, quotationID)
}

func (s *quotationService) ListQuotations(ctx context.Context) ([]domain.Quotation, error) {
	return s.quotationRepo.ListQuotations(ctx)
}

func (s *quotationService) UpdateQuotationStatus(ctx context.Context, quotationID string, req dto.UpdateQuotationStatusRequest) (*domain.Quotation, error) {
	updated, err := s.quotationRepo.UpdateQuotationStatus(ctx, quotationID, domain.QuotationStatus(req.Status), time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to update quotation status",
			slog.String("quotation_id", quotationID), slog.String("status", req.Status))
		return nil, err
	}
	return updated, nil
}
