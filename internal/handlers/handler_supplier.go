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

// supplierHandler handles HTTP requests related to suppliers and their payouts.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{
		supplierService: ss,
	}
}

// registerSupplierRoutes registers all supplier-related routes.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.POST("/payments", h.createSupplierPayment)
		suppliers.GET("/:id/payments", h.listSupplierPayments)
	}
}

// createSupplier godoc
// @Summary Register a supplier
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create supplier"
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create supplier request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdSupplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create supplier in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplierResponse(*createdSupplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce  json
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list suppliers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suppliers"})
		return
	}

	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		resp = append(resp, dto.ToSupplierResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// createSupplierPayment godoc
// @Summary Record a payout to a supplier
// @Description Records a supplier payment against an existing expense
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreateSupplierPaymentRequest true "Supplier payment details"
// @Success 201 {object} dto.SupplierPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier or expense not found"
// @Failure 500 {object} map[string]string "Failed to create supplier payment"
// @Router /suppliers/payments [post]
func (h *supplierHandler) createSupplierPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create supplier payment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdPayment, err := h.supplierService.CreateSupplierPayment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Supplier or expense not found for supplier payment")
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier or expense not found"})
			return
		}
		logger.Error("Failed to create supplier payment in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier payment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplierPaymentResponse(*createdPayment))
}

// listSupplierPayments godoc
// @Summary List a supplier's payouts
// @Tags suppliers
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Success 200 {array} dto.SupplierPaymentResponse
// @Failure 500 {object} map[string]string "Failed to list supplier payments"
// @Router /suppliers/{id}/payments [get]
func (h *supplierHandler) listSupplierPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	payments, err := h.supplierService.ListSupplierPaymentsBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		logger.Error("Failed to list supplier payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list supplier payments"})
		return
	}

	resp := make([]dto.SupplierPaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToSupplierPaymentResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}
