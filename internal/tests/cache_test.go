package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// newCachedEngine rebuilds the fleet and booking services with a mock cache
// store wired in.
func newCachedEngine(t *testing.T) (*engine, *MockCacheStore) {
	t.Helper()

	e := newEngine(t)
	cache := NewMockCacheStore()
	e.fleet = service.NewFleetService(
		e.carRepo, e.partnerRepo, e.customerRepo, e.driverRepo, e.transactionRepo, cache,
	)
	e.bookings = service.NewBookingService(
		e.bookingRepo, e.carRepo, e.customerRepo, e.driverRepo, e.pricingRepo,
		e.invoiceRepo, e.pricing, e.lockStore, cache,
	)
	return e, cache
}

func TestGetCar_CacheHit_SkipsRepository(t *testing.T) {
	t.Parallel()

	e, cache := newCachedEngine(t)
	ctx := context.Background()

	// Seed the cache only: the repository has never heard of this car, so
	// a successful lookup must have come from the cache.
	cached := &domain.Car{
		ID:        "car-cached",
		Plate:     "B 99 XX",
		Name:      "cached car",
		Category:  "MPV",
		DailyRate: 250_000,
		CreatedAt: time.Now(),
	}
	if err := cache.SetCar(ctx, cached); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	car, err := e.fleet.GetCar(ctx, "car-cached")
	if err != nil {
		t.Fatalf("get car: %v", err)
	}
	if car.Plate != "B 99 XX" || car.DailyRate != 250_000 {
		t.Errorf("expected the cached car, got %+v", car)
	}
	if got := atomic.LoadInt32(&cache.GetCarCallCount); got != 1 {
		t.Errorf("expected 1 cache read, got %d", got)
	}
}

func TestGetCar_CacheMiss_FallsBackAndPopulates(t *testing.T) {
	t.Parallel()

	e, cache := newCachedEngine(t)
	e.addCar(t, "car-1", 300_000, "MPV", "")
	ctx := context.Background()

	car, err := e.fleet.GetCar(ctx, "car-1")
	if err != nil {
		t.Fatalf("get car: %v", err)
	}
	if car.ID != "car-1" {
		t.Errorf("expected car-1, got %s", car.ID)
	}
	if got := atomic.LoadInt32(&cache.SetCarCallCount); got != 1 {
		t.Errorf("expected the miss to populate the cache, got %d writes", got)
	}

	// The second read is served from the cache.
	if _, err := e.fleet.GetCar(ctx, "car-1"); err != nil {
		t.Fatalf("get car again: %v", err)
	}
	if got := atomic.LoadInt32(&cache.SetCarCallCount); got != 1 {
		t.Errorf("expected no further cache writes, got %d", got)
	}
}

func TestGetCar_CacheFailure_FallsBackToRepository(t *testing.T) {
	t.Parallel()

	e, cache := newCachedEngine(t)
	e.addCar(t, "car-1", 300_000, "MPV", "")
	cache.GetError = errors.New("redis down")
	cache.SetError = errors.New("redis down")

	car, err := e.fleet.GetCar(context.Background(), "car-1")
	if err != nil {
		t.Fatalf("expected cache failure to degrade to a repository read, got %v", err)
	}
	if car.ID != "car-1" {
		t.Errorf("expected car-1, got %s", car.ID)
	}
}

func TestGetBooking_CacheHit_SkipsRepository(t *testing.T) {
	t.Parallel()

	e, cache := newCachedEngine(t)
	ctx := context.Background()

	cached := &domain.Booking{
		ID:         "bk-cached",
		CarID:      "car-1",
		CustomerID: "cust-1",
		Status:     domain.BookingStatusBooked,
		TotalPrice: 900_000,
	}
	if err := cache.SetBooking(ctx, cached); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	booking, err := e.bookings.GetBooking(ctx, "bk-cached")
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if booking.TotalPrice != 900_000 {
		t.Errorf("expected the cached booking, got %+v", booking)
	}
	if got := atomic.LoadInt32(&cache.GetBookingCallCount); got != 1 {
		t.Errorf("expected 1 cache read, got %d", got)
	}
}

func TestGetBooking_CacheMiss_FallsBackAndPopulates(t *testing.T) {
	t.Parallel()

	e, cache := newCachedEngine(t)
	e.addCar(t, "car-1", 300_000, "MPV", "")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	booking := e.book(t, "car-1", "cust-1", day(0), day(3))
	if !cache.HoldsBooking(booking.ID) {
		t.Fatal("expected creation to cache the booking")
	}

	// Evict and read through again.
	if err := cache.InvalidateBooking(ctx, booking.ID); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	got, err := e.bookings.GetBooking(ctx, booking.ID)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if got.ID != booking.ID {
		t.Errorf("expected booking %s, got %s", booking.ID, got.ID)
	}
	if !cache.HoldsBooking(booking.ID) {
		t.Error("expected the miss to repopulate the cache")
	}
}

func TestCancelBooking_EvictsCachedBooking(t *testing.T) {
	t.Parallel()

	e, cache := newCachedEngine(t)
	e.addCar(t, "car-1", 300_000, "MPV", "")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	booking := e.book(t, "car-1", "cust-1", day(0), day(3))
	if !cache.HoldsBooking(booking.ID) {
		t.Fatal("expected creation to cache the booking")
	}

	if _, err := e.bookings.CancelBooking(ctx, booking.ID, "plans changed"); err != nil {
		t.Fatalf("cancel booking: %v", err)
	}
	if cache.HoldsBooking(booking.ID) {
		t.Error("expected cancellation to evict the cached booking")
	}

	got, err := e.bookings.GetBooking(ctx, booking.ID)
	if err != nil {
		t.Fatalf("get booking after cancel: %v", err)
	}
	if got.Status != domain.BookingStatusCancelled {
		t.Errorf("expected CANCELLED after eviction, got %s", got.Status)
	}
}
