package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	CarID           string    `json:"car_id"`
	CustomerID      string    `json:"customer_id"`
	DriverID        string    `json:"driver_id,omitempty"`
	RentalPackageID string    `json:"rental_package_id,omitempty"`
	ScheduledStart  time.Time `json:"scheduled_start"`
	ScheduledEnd    time.Time `json:"scheduled_end"`
}

// RescheduleBookingRequest is the HTTP request body for moving a booking.
type RescheduleBookingRequest struct {
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
}

// CompleteBookingRequest is the HTTP request body for completing a booking.
type CompleteBookingRequest struct {
	ActualReturn time.Time `json:"actual_return"`
}

// CancelBookingRequest is the HTTP request body for cancelling a booking.
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		CarID:           req.CarID,
		CustomerID:      req.CustomerID,
		DriverID:        req.DriverID,
		RentalPackageID: req.RentalPackageID,
		ScheduledStart:  req.ScheduledStart,
		ScheduledEnd:    req.ScheduledEnd,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, booking)
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, booking)
}

// GetAll handles GET /v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, bookings)
}

// RescheduleBooking handles POST /v1/bookings/:id/reschedule
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.RescheduleBooking(c.Request.Context(), c.Param("id"), req.ScheduledStart, req.ScheduledEnd)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, booking)
}

// ActivateBooking handles POST /v1/bookings/:id/activate
func (h *BookingHandler) ActivateBooking(c *gin.Context) {
	booking, err := h.bookingService.ActivateBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, booking)
}

// CompleteBooking handles POST /v1/bookings/:id/complete
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	var req CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.CompleteBooking(c.Request.Context(), c.Param("id"), req.ActualReturn)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, booking)
}

// CancelBooking handles POST /v1/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	// An empty body is a cancel without a reason.
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, booking)
}
