package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// CarHandler handles HTTP requests for fleet cars.
type CarHandler struct {
	fleetService *service.FleetService
	scheduler    *service.SchedulerService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(fleetService *service.FleetService, scheduler *service.SchedulerService) *CarHandler {
	return &CarHandler{fleetService: fleetService, scheduler: scheduler}
}

// CreateCarRequest is the HTTP request body for registering a car.
type CreateCarRequest struct {
	Plate          string `json:"plate"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	DailyRate      int64  `json:"daily_rate"`
	OwnerPartnerID string `json:"owner_partner_id,omitempty"`
}

// AvailabilityResponse is the HTTP response for an availability query.
type AvailabilityResponse struct {
	CarID     string             `json:"car_id"`
	Start     time.Time          `json:"start"`
	End       time.Time          `json:"end"`
	Available bool               `json:"available"`
	Conflicts []service.Conflict `json:"conflicts,omitempty"`
}

// CreateCar handles POST /v1/cars
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	car, err := h.fleetService.CreateCar(c.Request.Context(), service.CreateCarRequest{
		Plate:          req.Plate,
		Name:           req.Name,
		Category:       req.Category,
		DailyRate:      domain.Money(req.DailyRate),
		OwnerPartnerID: req.OwnerPartnerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, car)
}

// GetCar handles GET /v1/cars/:id
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.fleetService.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, car)
}

// GetAll handles GET /v1/cars
func (h *CarHandler) GetAll(c *gin.Context) {
	cars, err := h.fleetService.GetAllCars(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, cars)
}

// GetAvailability handles GET /v1/cars/:id/availability?start=&end=
func (h *CarHandler) GetAvailability(c *gin.Context) {
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

	carID := c.Param("id")
	conflicts, err := h.scheduler.CheckAvailability(c.Request.Context(), carID, start, end, c.Query("exclude_booking_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, AvailabilityResponse{
		CarID:     carID,
		Start:     start,
		End:       end,
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	})
}
