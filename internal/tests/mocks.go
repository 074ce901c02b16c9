package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/redis"
)

// MockLockStore is a mock implementation of the car placement lock.
type MockLockStore struct {
	mu   sync.Mutex
	held map[string]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error

	// DenyAll makes every acquire fail as if another placement holds the
	// lock.
	DenyAll bool
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{held: make(map[string]bool)}
}

func (m *MockLockStore) AcquireCarLock(ctx context.Context, carID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DenyAll || m.held[carID] {
		return false, nil
	}
	m.held[carID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseCarLock(ctx context.Context, carID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, carID)
	return nil
}

// MockCacheStore is a mock implementation of the entity cache.
type MockCacheStore struct {
	mu       sync.Mutex
	cars     map[string]*domain.Car
	bookings map[string]*domain.Booking

	// Counters for verification
	GetCarCallCount     int32
	SetCarCallCount     int32
	GetBookingCallCount int32
	SetBookingCallCount int32

	// Error injection
	GetError error
	SetError error
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{
		cars:     make(map[string]*domain.Car),
		bookings: make(map[string]*domain.Booking),
	}
}

func (m *MockCacheStore) GetCar(ctx context.Context, carID string) (*domain.Car, error) {
	atomic.AddInt32(&m.GetCarCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cars[carID], nil
}

func (m *MockCacheStore) SetCar(ctx context.Context, car *domain.Car) error {
	atomic.AddInt32(&m.SetCarCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *car
	m.cars[car.ID] = &copied
	return nil
}

func (m *MockCacheStore) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	atomic.AddInt32(&m.GetBookingCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings[bookingID], nil
}

func (m *MockCacheStore) SetBooking(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.SetBookingCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *booking
	m.bookings[booking.ID] = &copied
	return nil
}

func (m *MockCacheStore) InvalidateBooking(ctx context.Context, bookingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bookings, bookingID)
	return nil
}

// HoldsBooking reports whether the cache currently holds the booking.
func (m *MockCacheStore) HoldsBooking(bookingID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.bookings[bookingID]
	return ok
}

// Ensure the mocks satisfy the interfaces.
var (
	_ redis.LockStoreInterface  = (*MockLockStore)(nil)
	_ redis.CacheStoreInterface = (*MockCacheStore)(nil)
)
