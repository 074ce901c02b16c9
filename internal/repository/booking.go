package repository

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
)

// BookingSet is a point-in-time snapshot of the bookings collection together
// with the version token needed to commit changes. A booking write is always
// a whole-set commit: the caller re-checks its invariants against the
// snapshot and Commit fails with ErrVersionConflict if the collection moved
// underneath it.
type BookingSet struct {
	Bookings []*domain.Booking
	Version  kvstore.Version
}

// Find returns the booking with the given id, or nil.
func (s *BookingSet) Find(id string) *domain.Booking {
	for _, b := range s.Bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Snapshot loads the committed booking set and its version token.
	Snapshot(ctx context.Context) (*BookingSet, error)

	// Commit writes the full booking set if the underlying collection is
	// still at the snapshot's version; otherwise ErrVersionConflict.
	Commit(ctx context.Context, set *BookingSet) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings.
	GetAll(ctx context.Context) ([]*domain.Booking, error)
}
