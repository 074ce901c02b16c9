package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// TransactionHandler handles HTTP requests for the ledger.
type TransactionHandler struct {
	fleetService *service.FleetService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(fleetService *service.FleetService) *TransactionHandler {
	return &TransactionHandler{fleetService: fleetService}
}

// RecordTransactionRequest is the HTTP request body for a ledger entry.
type RecordTransactionRequest struct {
	Date      time.Time `json:"date,omitzero"`
	Amount    int64     `json:"amount"`
	Kind      string    `json:"kind"`     // INCOME or EXPENSE
	Category  string    `json:"category"` // e.g. "Setor Investor"
	Status    string    `json:"status,omitempty"`
	RelatedID string    `json:"related_id,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// RecordTransaction handles POST /v1/transactions
func (h *TransactionHandler) RecordTransaction(c *gin.Context) {
	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	tx, err := h.fleetService.RecordTransaction(c.Request.Context(), service.RecordTransactionRequest{
		Date:      req.Date,
		Amount:    domain.Money(req.Amount),
		Kind:      domain.TransactionKind(req.Kind),
		Category:  domain.TransactionCategory(req.Category),
		Status:    domain.TransactionStatus(req.Status),
		RelatedID: req.RelatedID,
		Note:      req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, tx)
}

// GetAll handles GET /v1/transactions
func (h *TransactionHandler) GetAll(c *gin.Context) {
	transactions, err := h.fleetService.GetAllTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, transactions)
}
