package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// CustomerHandler handles HTTP requests for customers and chauffeurs.
type CustomerHandler struct {
	fleetService *service.FleetService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(fleetService *service.FleetService) *CustomerHandler {
	return &CustomerHandler{fleetService: fleetService}
}

// CreateCustomerRequest is the HTTP request body for registering a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CreateDriverRequest is the HTTP request body for registering a chauffeur.
type CreateDriverRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	DailyFee int64  `json:"daily_fee"`
}

// CreateCustomer handles POST /v1/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	customer, err := h.fleetService.CreateCustomer(c.Request.Context(), req.Name, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, customer)
}

// GetAll handles GET /v1/customers
func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.fleetService.GetAllCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, customers)
}

// CreateDriver handles POST /v1/drivers
func (h *CustomerHandler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.fleetService.CreateDriver(c.Request.Context(), req.Name, req.Phone, domain.Money(req.DailyFee))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, driver)
}

// GetAllDrivers handles GET /v1/drivers
func (h *CustomerHandler) GetAllDrivers(c *gin.Context) {
	drivers, err := h.fleetService.GetAllDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, drivers)
}
