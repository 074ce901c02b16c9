package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCarID is returned when the car ID is empty.
	ErrInvalidCarID = errors.New("invalid car id")

	// ErrInvalidCustomerID is returned when the customer ID is empty.
	ErrInvalidCustomerID = errors.New("invalid customer id")

	// ErrInvalidBookingID is returned when the booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidPartnerID is returned when the partner ID is empty.
	ErrInvalidPartnerID = errors.New("invalid partner id")

	// ErrInvalidInvoiceID is returned when the invoice ID is empty.
	ErrInvalidInvoiceID = errors.New("invalid invoice id")

	// ErrInvalidInterval is returned when scheduledStart is not strictly
	// before scheduledEnd.
	ErrInvalidInterval = errors.New("scheduled start must be before scheduled end")

	// ErrInvalidPeriod is returned when a settlement period is empty or
	// inverted.
	ErrInvalidPeriod = errors.New("period start must be before period end")

	// ErrMissingActualReturn is returned when completing a booking without
	// an actual return timestamp.
	ErrMissingActualReturn = errors.New("actual return timestamp required")

	// ErrInvalidSplitPercentage is returned when a partner split is outside
	// [0,100].
	ErrInvalidSplitPercentage = errors.New("split percentage must be between 0 and 100")

	// ErrInvalidAmount is returned when a transaction amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrBookingNotBooked is returned when activating a booking that is not
	// in BOOKED status.
	ErrBookingNotBooked = errors.New("booking not in booked status")

	// ErrBookingNotActive is returned when completing a booking that is not
	// in ACTIVE status.
	ErrBookingNotActive = errors.New("booking not in active status")

	// ErrBookingNotCancellable is returned when cancelling a booking already
	// in a terminal status.
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled in current status")

	// ErrScheduleConflict is the sentinel for schedule conflicts; the
	// concrete error carries the conflicting booking ids.
	ErrScheduleConflict = errors.New("schedule conflict")

	// ErrConcurrentModification is returned when the committed record set
	// changed between read and write. The caller must retry the whole
	// operation from a fresh read; the engine never retries internally.
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrConfiguration is the sentinel for bad pricing master data.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvoiceState is the sentinel for invoice precondition violations;
	// the concrete error names the offending booking.
	ErrInvoiceState = errors.New("invoice state error")

	// ErrNoBookings is returned when aggregating an empty booking set.
	ErrNoBookings = errors.New("no bookings to aggregate")
)

// ScheduleConflictError reports the bookings blocking a requested interval.
type ScheduleConflictError struct {
	CarID          string
	ConflictingIDs []string
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("car %s already booked by: %s", e.CarID, strings.Join(e.ConflictingIDs, ", "))
}

// Is makes errors.Is(err, ErrScheduleConflict) match.
func (e *ScheduleConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}

// ConfigurationError reports bad pricing master data, surfaced distinctly
// from user mistakes.
type ConfigurationError struct {
	Reason  string
	RuleIDs []string
}

func (e *ConfigurationError) Error() string {
	if len(e.RuleIDs) == 0 {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s (rules: %s)", e.Reason, strings.Join(e.RuleIDs, ", "))
}

// Is makes errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvoiceStateError reports an aggregation precondition violation, naming
// the offending booking.
type InvoiceStateError struct {
	BookingID string
	Reason    string
}

func (e *InvoiceStateError) Error() string {
	return fmt.Sprintf("booking %s: %s", e.BookingID, e.Reason)
}

// Is makes errors.Is(err, ErrInvoiceState) match.
func (e *InvoiceStateError) Is(target error) bool {
	return target == ErrInvoiceState
}
