package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// PartnerHandler handles HTTP requests for investor partners and their
// settlements.
type PartnerHandler struct {
	fleetService      *service.FleetService
	settlementService *service.SettlementService
}

// NewPartnerHandler creates a new PartnerHandler.
func NewPartnerHandler(fleetService *service.FleetService, settlementService *service.SettlementService) *PartnerHandler {
	return &PartnerHandler{fleetService: fleetService, settlementService: settlementService}
}

// CreatePartnerRequest is the HTTP request body for registering a partner.
type CreatePartnerRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone,omitempty"`
	SplitPercentage int64  `json:"split_percentage"`
}

// CreatePartner handles POST /v1/partners
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	var req CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	partner, err := h.fleetService.CreatePartner(c.Request.Context(), req.Name, req.Phone, req.SplitPercentage)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, partner)
}

// GetAll handles GET /v1/partners
func (h *PartnerHandler) GetAll(c *gin.Context) {
	partners, err := h.fleetService.GetAllPartners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, partners)
}

// GetSettlement handles GET /v1/partners/:id/settlement?start=&end=
func (h *PartnerHandler) GetSettlement(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start: expected RFC 3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end: expected RFC 3339"})
		return
	}

	settlement, err := h.settlementService.Settle(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, settlement)
}
