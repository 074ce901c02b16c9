package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
)

// CacheStore handles entity caching in Redis. Entities are stored whole so a
// cache hit can serve a read without touching the collection store.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	CarCacheTTL     = 60 * time.Second // rates and ownership change rarely
	BookingCacheTTL = 10 * time.Second // status moves during a transition
)

// Key prefixes
const (
	carCachePrefix     = "cache:car:"
	bookingCachePrefix = "cache:booking:"
)

// GetCar retrieves a car from cache. A miss returns (nil, nil).
func (s *CacheStore) GetCar(ctx context.Context, carID string) (*domain.Car, error) {
	key := carCachePrefix + carID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var car domain.Car
	if err := json.Unmarshal(data, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

// SetCar stores a car in cache.
func (s *CacheStore) SetCar(ctx context.Context, car *domain.Car) error {
	key := carCachePrefix + car.ID
	data, err := json.Marshal(car)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, CarCacheTTL).Err()
}

// GetBooking retrieves a booking from cache. A miss returns (nil, nil).
func (s *CacheStore) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	key := bookingCachePrefix + bookingID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var booking domain.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// SetBooking stores a booking in cache.
func (s *CacheStore) SetBooking(ctx context.Context, booking *domain.Booking) error {
	key := bookingCachePrefix + booking.ID
	data, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, BookingCacheTTL).Err()
}

// InvalidateBooking removes a booking from cache.
func (s *CacheStore) InvalidateBooking(ctx context.Context, bookingID string) error {
	key := bookingCachePrefix + bookingID
	return s.client.Del(ctx, key).Err()
}
