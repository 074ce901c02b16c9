package domain

import "time"

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "BOOKED"
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// bookingTransitions is the closed transition table for the booking lifecycle.
// COMPLETED and CANCELLED are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusBooked: {BookingStatusActive, BookingStatusCancelled},
	BookingStatusActive: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransition reports whether a booking may move from its current status to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves this status.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// Blocking reports whether a booking in this status blocks the car's slot
// for future scheduling. Completed and cancelled bookings never do.
func (s BookingStatus) Blocking() bool {
	return s == BookingStatusBooked || s == BookingStatusActive
}

// Booking is a reservation of one car for a customer over a date range.
// Price fields are derived by the pricing engine and never hand-edited;
// the booking is owned by the lifecycle service and mutated only through
// its transitions.
type Booking struct {
	ID              string        `json:"id"`
	CarID           string        `json:"car_id"`
	CustomerID      string        `json:"customer_id"`
	DriverID        string        `json:"driver_id,omitempty"` // optional chauffeur
	RentalPackageID string        `json:"rental_package_id,omitempty"`
	ScheduledStart  time.Time     `json:"scheduled_start"`
	ScheduledEnd    time.Time     `json:"scheduled_end"`
	ActualReturn    time.Time     `json:"actual_return,omitzero"` // set only on completion
	Status          BookingStatus `json:"status"`
	BasePrice       Money         `json:"base_price"`
	Surcharge       Money         `json:"surcharge"`
	OvertimeFee     Money         `json:"overtime_fee"`
	TotalPrice      Money         `json:"total_price"`
	CreatedAt       time.Time     `json:"created_at"`
	CancelledAt     time.Time     `json:"cancelled_at,omitzero"`
	CancelReason    string        `json:"cancel_reason,omitempty"`
}

// Overlaps reports whether the booking's half-open scheduled interval
// [ScheduledStart, ScheduledEnd) overlaps [start, end). Touching endpoints
// (checkout day == next pickup day) do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.ScheduledStart.Before(end) && start.Before(b.ScheduledEnd)
}
