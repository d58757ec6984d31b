package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/craftline/craftline_backend/internal/apperrors"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/craftline/craftline_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quotationHandler handles HTTP requests related to quotations.
type quotationHandler struct {
	quotationService portssvc.QuotationSvcFacade
}

func newQuotationHandler(qs portssvc.QuotationSvcFacade) *quotationHandler {
	return &quotationHandler{
		quotationService: qs,
	}
}

// registerQuotationRoutes registers all quotation-related routes.
func registerQuotationRoutes(rg *gin.RouterGroup, quotationService portssvc.QuotationSvcFacade) {
	h := newQuotationHandler(quotationService)

	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.createQuotation)
		quotations.GET("", h.listQuotations)
		quotations.GET("/:id", h.getQuotation)
		quotations.PUT("/:id/status", h.updateQuotationStatus)
	}
}

// createQuotation godoc
// @Summary Draft a quotation
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   quotation body dto.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create quotation"
// @Router /quotations [post]
func (h *quotationHandler) createQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create quotation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdQuotation, err := h.quotationService.CreateQuotation(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create quotation in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quotation"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuotationResponse(*createdQuotation))
}

// getQuotation godoc
// @Summary Get a quotation by ID
// @Tags quotations
// @Produce  json
// @Param   id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve quotation"
// @Router /quotations/{id} [get]
func (h *quotationHandler) getQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("id")

	quotation, err := h.quotationService.GetQuotationByID(c.Request.Context(), quotationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Quotation not found", slog.String("quotation_id", quotationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else {
			logger.Error("Failed to get quotation from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quotation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(*quotation))
}

// listQuotations godoc
// @Summary List quotations
// @Tags quotations
// @Produce  json
// @Success 200 {array} dto.QuotationResponse
// @Failure 500 {object} map[string]string "Failed to list quotations"
// @Router /quotations [get]
func (h *quotationHandler) listQuotations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quotations, err := h.quotationService.ListQuotations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list quotations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotations"})
		return
	}

	resp := make([]dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		resp = append(resp, dto.ToQuotationResponse(q))
	}
	c.JSON(http.StatusOK, resp)
}

// updateQuotationStatus godoc
// @Summary Move a quotation through its lifecycle
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   id path string true "Quotation ID"
// @Param   status body dto.UpdateQuotationStatusRequest true "New status"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Quotation not found"
// @Failure 500 {object} map[string]string "Failed to update quotation status"
// @Router /quotations/{id}/status [put]
func (h *quotationHandler) updateQuotationStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quotationID := c.Param("id")
	var req dto.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update quotation status request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updatedQuotation, err := h.quotationService.UpdateQuotationStatus(c.Request.Context(), quotationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Quotation not found for status update", slog.String("quotation_id", quotationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
		} else {
			logger.Error("Failed to update quotation status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quotation status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(*updatedQuotation))
}
