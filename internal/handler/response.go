package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidCarID),
		errors.Is(err, service.ErrInvalidCustomerID),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidPartnerID),
		errors.Is(err, service.ErrInvalidInvoiceID),
		errors.Is(err, service.ErrInvalidInterval),
		errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrMissingActualReturn),
		errors.Is(err, service.ErrInvalidSplitPercentage),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrNoBookings):
		return http.StatusBadRequest

	// Conflict errors: the request was well-formed but collides with the
	// current state; the caller may retry after re-reading.
	case errors.Is(err, service.ErrScheduleConflict),
		errors.Is(err, service.ErrConcurrentModification),
		errors.Is(err, service.ErrInvoiceState),
		errors.Is(err, service.ErrBookingNotBooked),
		errors.Is(err, service.ErrBookingNotActive),
		errors.Is(err, service.ErrBookingNotCancellable):
		return http.StatusConflict

	// Bad master data is an operator problem, not a caller problem.
	case errors.Is(err, service.ErrConfiguration):
		return http.StatusInternalServerError

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
