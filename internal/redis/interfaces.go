package redis

import (
	"context"
	"time"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
)

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireCarLock(ctx context.Context, carID string, ttl time.Duration) (bool, error)
	ReleaseCarLock(ctx context.Context, carID string) error
}

// CacheStoreInterface defines the interface for entity caching.
type CacheStoreInterface interface {
	GetCar(ctx context.Context, carID string) (*domain.Car, error)
	SetCar(ctx context.Context, car *domain.Car) error
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	SetBooking(ctx context.Context, booking *domain.Booking) error
	InvalidateBooking(ctx context.Context, bookingID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface  = (*LockStore)(nil)
	_ CacheStoreInterface = (*CacheStore)(nil)
)
