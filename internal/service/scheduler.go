package service

import (
	"context"
	"time"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// SchedulerService enforces non-overlap of bookings per car.
type SchedulerService struct {
	bookingRepo repository.BookingRepository
}

// NewSchedulerService creates a new SchedulerService.
func NewSchedulerService(bookingRepo repository.BookingRepository) *SchedulerService {
	return &SchedulerService{bookingRepo: bookingRepo}
}

// Conflict describes an existing booking blocking a requested interval.
type Conflict struct {
	BookingID string               `json:"booking_id"`
	Start     time.Time            `json:"start"`
	End       time.Time            `json:"end"`
	Status    domain.BookingStatus `json:"status"`
}

// CheckAvailability returns the {BOOKED, ACTIVE} bookings for carID whose
// interval overlaps [start, end), excluding excludeBookingID (used when
// re-validating an edit). An empty result means placement is allowed.
//
// The check reads the committed store state; callers that intend to write
// must re-run it against a fresh snapshot inside their commit unit, since a
// check against stale data is not sufficient.
func (s *SchedulerService) CheckAvailability(ctx context.Context, carID string, start, end time.Time, excludeBookingID string) ([]Conflict, error) {
	if carID == "" {
		return nil, ErrInvalidCarID
	}
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}

	set, err := s.bookingRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return findConflicts(set.Bookings, carID, start, end, excludeBookingID), nil
}

// findConflicts is the pure overlap check shared with the booking lifecycle,
// which runs it against its own commit snapshot. Two intervals overlap iff
// start1 < end2 && start2 < end1; touching endpoints are not a conflict.
// Completed bookings keep their historical interval but never block, and
// cancelled bookings never block.
func findConflicts(bookings []*domain.Booking, carID string, start, end time.Time, excludeBookingID string) []Conflict {
	var conflicts []Conflict
	for _, b := range bookings {
		if b.CarID != carID || b.ID == excludeBookingID {
			continue
		}
		if !b.Status.Blocking() {
			continue
		}
		if b.Overlaps(start, end) {
			conflicts = append(conflicts, Conflict{
				BookingID: b.ID,
				Start:     b.ScheduledStart,
				End:       b.ScheduledEnd,
				Status:    b.Status,
			})
		}
	}
	return conflicts
}

// conflictIDs extracts the booking ids from a conflict list.
func conflictIDs(conflicts []Conflict) []string {
	ids := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		ids = append(ids, c.BookingID)
	}
	return ids
}
