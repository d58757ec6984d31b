package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/craftline/craftline_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler handles HTTP requests for business analytics.
type analyticsHandler struct {
	reportingService portssvc.ReportingService
}

func newAnalyticsHandler(rs portssvc.ReportingService) *analyticsHandler {
	return &analyticsHandler{
		reportingService: rs,
	}
}

// registerAnalyticsRoutes registers the analytics routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newAnalyticsHandler(reportingService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/financial-summary", h.getFinancialSummary)
	}
}

// getFinancialSummary godoc
// @Summary Six-month financial summary
// @Description Returns exactly six rows, oldest first, covering the current calendar month and the five before it; months without activity carry zeros
// @Tags analytics
// @Produce  json
// @Success 200 {array} dto.MonthlySummaryResponse
// @Failure 500 {object} map[string]string "Failed to build financial summary"
// @Router /analytics/financial-summary [get]
func (h *analyticsHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.FinancialSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build financial summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build financial summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(rows))
}
