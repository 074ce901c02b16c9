package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/metrics"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/redis"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// carLockTTL bounds how long a crashed placement can keep a car locked.
const carLockTTL = 5 * time.Second

// BookingService owns the booking lifecycle. Every write is a
// read-check-write cycle over a single snapshot of the bookings collection:
// the availability check, the mutation and the commit all see the same
// state, and a stale commit surfaces as ErrConcurrentModification.
type BookingService struct {
	bookingRepo  repository.BookingRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	driverRepo   repository.DriverRepository
	pricingRepo  repository.PricingRepository
	invoiceRepo  repository.InvoiceRepository
	pricing      *PricingService
	lockStore    redis.LockStoreInterface
	cacheStore   redis.CacheStoreInterface
}

// NewBookingService creates a new BookingService. lockStore and cacheStore
// may be nil; placement then relies on the version check alone.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	driverRepo repository.DriverRepository,
	pricingRepo repository.PricingRepository,
	invoiceRepo repository.InvoiceRepository,
	pricing *PricingService,
	lockStore redis.LockStoreInterface,
	cacheStore redis.CacheStoreInterface,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
		driverRepo:   driverRepo,
		pricingRepo:  pricingRepo,
		invoiceRepo:  invoiceRepo,
		pricing:      pricing,
		lockStore:    lockStore,
		cacheStore:   cacheStore,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	CarID           string
	CustomerID      string
	DriverID        string // Optional: empty means self-drive
	RentalPackageID string // Optional: empty means the list rate
	ScheduledStart  time.Time
	ScheduledEnd    time.Time
}

// CreateBooking validates the request, checks availability, quotes the price
// and persists the booking in BOOKED status. A conflicting interval returns
// a ScheduleConflictError naming the blocking bookings.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.CarID == "" {
		return nil, ErrInvalidCarID
	}
	if req.CustomerID == "" {
		return nil, ErrInvalidCustomerID
	}
	if !req.ScheduledStart.Before(req.ScheduledEnd) {
		return nil, ErrInvalidInterval
	}

	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	var driver *domain.Driver
	if req.DriverID != "" {
		driver, err = s.driverRepo.GetByID(ctx, req.DriverID)
		if err != nil {
			return nil, err
		}
	}

	pkg := domain.DefaultRentalPackage()
	if req.RentalPackageID != "" {
		pkg, err = s.pricingRepo.GetPackage(ctx, req.RentalPackageID)
		if err != nil {
			return nil, err
		}
	}

	unlock, err := s.lockCar(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	set, err := s.bookingRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	conflicts := findConflicts(set.Bookings, req.CarID, req.ScheduledStart, req.ScheduledEnd, "")
	if len(conflicts) > 0 {
		metrics.ScheduleConflicts.Inc()
		return nil, &ScheduleConflictError{CarID: req.CarID, ConflictingIDs: conflictIDs(conflicts)}
	}

	quote, err := s.pricing.Quote(ctx, car, driver, pkg, req.ScheduledStart, req.ScheduledEnd)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		CarID:           req.CarID,
		CustomerID:      req.CustomerID,
		DriverID:        req.DriverID,
		RentalPackageID: req.RentalPackageID,
		ScheduledStart:  req.ScheduledStart,
		ScheduledEnd:    req.ScheduledEnd,
		Status:          domain.BookingStatusBooked,
		BasePrice:       quote.BasePrice,
		Surcharge:       quote.Surcharge,
		TotalPrice:      quote.Total,
		CreatedAt:       time.Now(),
	}

	set.Bookings = append(set.Bookings, booking)
	if err := s.commit(ctx, set); err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	log.Info().
		Str("booking_id", booking.ID).
		Str("car_id", booking.CarID).
		Int64("total_price", int64(booking.TotalPrice)).
		Msg("booking created")

	s.cacheBooking(ctx, booking)
	return booking, nil
}

// RescheduleBooking moves a BOOKED booking to a new interval, re-running
// availability (excluding the booking itself) and re-quoting the price.
func (s *BookingService) RescheduleBooking(ctx context.Context, bookingID string, start, end time.Time) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}

	// The car is only known from the booking itself, so look it up before
	// taking the lock; the snapshot below is what the check-and-write runs on.
	existing, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.lockCar(ctx, existing.CarID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	set, err := s.bookingRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	booking := set.Find(bookingID)
	if booking == nil {
		return nil, repository.ErrNotFound
	}
	if booking.Status != domain.BookingStatusBooked {
		return nil, ErrBookingNotBooked
	}

	conflicts := findConflicts(set.Bookings, booking.CarID, start, end, booking.ID)
	if len(conflicts) > 0 {
		metrics.ScheduleConflicts.Inc()
		return nil, &ScheduleConflictError{CarID: booking.CarID, ConflictingIDs: conflictIDs(conflicts)}
	}

	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		return nil, err
	}
	var driver *domain.Driver
	if booking.DriverID != "" {
		driver, err = s.driverRepo.GetByID(ctx, booking.DriverID)
		if err != nil {
			return nil, err
		}
	}
	pkg := domain.DefaultRentalPackage()
	if booking.RentalPackageID != "" {
		pkg, err = s.pricingRepo.GetPackage(ctx, booking.RentalPackageID)
		if err != nil {
			return nil, err
		}
	}
	quote, err := s.pricing.Quote(ctx, car, driver, pkg, start, end)
	if err != nil {
		return nil, err
	}

	booking.ScheduledStart = start
	booking.ScheduledEnd = end
	booking.BasePrice = quote.BasePrice
	booking.Surcharge = quote.Surcharge
	booking.TotalPrice = quote.Total

	if err := s.commit(ctx, set); err != nil {
		return nil, err
	}

	s.invalidateBooking(ctx, booking.ID)
	return booking, nil
}

// ActivateBooking marks a BOOKED booking as picked up.
func (s *BookingService) ActivateBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusActive, func(b *domain.Booking) error {
		if b.Status != domain.BookingStatusBooked {
			return ErrBookingNotBooked
		}
		return nil
	})
}

// CompleteBooking records the actual return, prices any overtime and
// freezes the total. The frozen total never changes afterwards, even if
// pricing config changes later.
func (s *BookingService) CompleteBooking(ctx context.Context, bookingID string, actualReturn time.Time) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	if actualReturn.IsZero() {
		return nil, ErrMissingActualReturn
	}

	set, err := s.bookingRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	booking := set.Find(bookingID)
	if booking == nil {
		return nil, repository.ErrNotFound
	}
	if booking.Status != domain.BookingStatusActive {
		return nil, ErrBookingNotActive
	}

	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		return nil, err
	}
	overtime, err := s.pricing.OvertimeFee(ctx, car.DailyRate, booking.ScheduledEnd, actualReturn)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusCompleted
	booking.ActualReturn = actualReturn
	booking.OvertimeFee = overtime
	booking.TotalPrice = booking.BasePrice + booking.Surcharge + overtime

	if err := s.commit(ctx, set); err != nil {
		return nil, err
	}

	metrics.BookingsCompleted.Inc()
	log.Info().
		Str("booking_id", booking.ID).
		Int64("overtime_fee", int64(overtime)).
		Int64("total_price", int64(booking.TotalPrice)).
		Msg("booking completed")

	s.invalidateBooking(ctx, booking.ID)
	return booking, nil
}

// CancelBooking cancels a BOOKED or ACTIVE booking, releasing the car's
// slot immediately. Any active invoice referencing the booking is flagged
// stale; the invoice document itself is kept as issued.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	set, err := s.bookingRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	booking := set.Find(bookingID)
	if booking == nil {
		return nil, repository.ErrNotFound
	}
	if !booking.Status.CanTransition(domain.BookingStatusCancelled) {
		return nil, ErrBookingNotCancellable
	}

	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = time.Now()
	booking.CancelReason = reason

	if err := s.commit(ctx, set); err != nil {
		return nil, err
	}

	metrics.BookingsCancelled.Inc()
	log.Info().Str("booking_id", booking.ID).Str("reason", reason).Msg("booking cancelled")

	// Flag after the cancel commit: the aggregator re-verifies booking
	// status at read time anyway, so a failed flag degrades to a warning.
	if err := s.flagStaleInvoices(ctx, booking.ID); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to flag invoices stale")
	}

	s.invalidateBooking(ctx, booking.ID)
	return booking, nil
}

// GetBooking retrieves a booking by ID, trying the cache first and falling
// back to the repository on a miss.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetBooking(ctx, bookingID)
		if err != nil {
			log.Warn().Err(err).Str("booking_id", bookingID).Msg("booking cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	s.cacheBooking(ctx, booking)
	return booking, nil
}

// GetAllBookings retrieves all bookings.
func (s *BookingService) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// transition applies a simple status change under the usual snapshot-commit
// cycle.
func (s *BookingService) transition(ctx context.Context, bookingID string, next domain.BookingStatus, check func(*domain.Booking) error) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	set, err := s.bookingRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	booking := set.Find(bookingID)
	if booking == nil {
		return nil, repository.ErrNotFound
	}
	if err := check(booking); err != nil {
		return nil, err
	}

	booking.Status = next
	if err := s.commit(ctx, set); err != nil {
		return nil, err
	}

	s.invalidateBooking(ctx, booking.ID)
	return booking, nil
}

// commit writes the snapshot back, translating a stale version into the
// caller-facing concurrency error.
func (s *BookingService) commit(ctx context.Context, set *repository.BookingSet) error {
	if err := s.bookingRepo.Commit(ctx, set); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return ErrConcurrentModification
		}
		return err
	}
	return nil
}

// lockCar takes the per-car placement lock when a lock store is wired.
// Failure to acquire means another placement is mid-flight on this car.
func (s *BookingService) lockCar(ctx context.Context, carID string) (func(), error) {
	if s.lockStore == nil {
		return func() {}, nil
	}
	acquired, err := s.lockStore.AcquireCarLock(ctx, carID, carLockTTL)
	if err != nil {
		// Redis being down must not take bookings down; the version
		// check still guarantees consistency.
		log.Warn().Err(err).Str("car_id", carID).Msg("car lock unavailable")
		return func() {}, nil
	}
	if !acquired {
		return nil, ErrConcurrentModification
	}
	return func() {
		if err := s.lockStore.ReleaseCarLock(ctx, carID); err != nil {
			log.Warn().Err(err).Str("car_id", carID).Msg("failed to release car lock")
		}
	}, nil
}

// flagStaleInvoices marks every active invoice referencing bookingID STALE.
func (s *BookingService) flagStaleInvoices(ctx context.Context, bookingID string) error {
	if s.invoiceRepo == nil {
		return nil
	}
	set, err := s.invoiceRepo.Snapshot(ctx)
	if err != nil {
		return err
	}
	changed := false
	for _, inv := range set.Invoices {
		if inv.Status == domain.InvoiceStatusActive && inv.References(bookingID) {
			inv.Status = domain.InvoiceStatusStale
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.invoiceRepo.Commit(ctx, set)
}

func (s *BookingService) cacheBooking(ctx context.Context, b *domain.Booking) {
	if s.cacheStore == nil {
		return
	}
	if err := s.cacheStore.SetBooking(ctx, b); err != nil {
		log.Warn().Err(err).Str("booking_id", b.ID).Msg("failed to cache booking")
	}
}

func (s *BookingService) invalidateBooking(ctx context.Context, bookingID string) {
	if s.cacheStore == nil {
		return
	}
	if err := s.cacheStore.InvalidateBooking(ctx, bookingID); err != nil {
		log.Warn().Err(err).Str("booking_id", bookingID).Msg("failed to invalidate booking cache")
	}
}
