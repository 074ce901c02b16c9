package kv

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// BookingRepository is a collection-store implementation of
// repository.BookingRepository.
type BookingRepository struct {
	store kvstore.Store
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(store kvstore.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Snapshot loads the committed booking set and its version token.
func (r *BookingRepository) Snapshot(ctx context.Context) (*repository.BookingSet, error) {
	bookings, version, err := loadAll[domain.Booking](ctx, r.store, kvstore.CollectionBookings)
	if err != nil {
		return nil, err
	}
	return &repository.BookingSet{Bookings: bookings, Version: version}, nil
}

// Commit writes the full booking set with a compare-and-swap on the
// snapshot's version.
func (r *BookingRepository) Commit(ctx context.Context, set *repository.BookingSet) error {
	return saveAll(ctx, r.store, kvstore.CollectionBookings, set.Bookings, set.Version)
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	set, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if booking := set.Find(id); booking != nil {
		return booking, nil
	}
	return nil, repository.ErrNotFound
}

// GetAll retrieves all bookings.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	bookings, _, err := loadAll[domain.Booking](ctx, r.store, kvstore.CollectionBookings)
	return bookings, err
}
