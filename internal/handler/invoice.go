package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// InvoiceHandler handles HTTP requests for collective invoices.
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// AggregateRequest is the HTTP request body for issuing a collective
// invoice.
type AggregateRequest struct {
	CustomerID string   `json:"customer_id"`
	BookingIDs []string `json:"booking_ids"`
}

// Aggregate handles POST /v1/invoices
func (h *InvoiceHandler) Aggregate(c *gin.Context) {
	var req AggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	invoice, err := h.invoiceService.Aggregate(c.Request.Context(), req.CustomerID, req.BookingIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, invoice)
}

// GetInvoice handles GET /v1/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, invoice)
}

// GetAll handles GET /v1/invoices
func (h *InvoiceHandler) GetAll(c *gin.Context) {
	invoices, err := h.invoiceService.GetAllInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, invoices)
}

// VoidInvoice handles POST /v1/invoices/:id/void
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.VoidInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, invoice)
}
