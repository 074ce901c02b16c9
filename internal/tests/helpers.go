package tests

import (
	"context"
	"testing"
	"time"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository/kv"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

// engine wires the full service stack over an in-memory store. Tests drive
// the same code paths the HTTP handlers do.
type engine struct {
	store *kvstore.MemoryStore

	carRepo         *kv.CarRepository
	bookingRepo     *kv.BookingRepository
	partnerRepo     *kv.PartnerRepository
	customerRepo    *kv.CustomerRepository
	driverRepo      *kv.DriverRepository
	pricingRepo     *kv.PricingRepository
	transactionRepo *kv.TransactionRepository
	invoiceRepo     *kv.InvoiceRepository

	lockStore *MockLockStore

	pricing    *service.PricingService
	scheduler  *service.SchedulerService
	bookings   *service.BookingService
	settlement *service.SettlementService
	invoices   *service.InvoiceService
	fleet      *service.FleetService
}

// newEngine builds a fresh engine with a default overtime config
// (PERCENTAGE 10 per hour late).
func newEngine(t *testing.T) *engine {
	t.Helper()

	store := kvstore.NewMemoryStore()
	e := &engine{
		store:           store,
		carRepo:         kv.NewCarRepository(store),
		bookingRepo:     kv.NewBookingRepository(store),
		partnerRepo:     kv.NewPartnerRepository(store),
		customerRepo:    kv.NewCustomerRepository(store),
		driverRepo:      kv.NewDriverRepository(store),
		pricingRepo:     kv.NewPricingRepository(store),
		transactionRepo: kv.NewTransactionRepository(store),
		invoiceRepo:     kv.NewInvoiceRepository(store),
		lockStore:       NewMockLockStore(),
	}

	e.pricing = service.NewPricingService(e.pricingRepo)
	e.scheduler = service.NewSchedulerService(e.bookingRepo)
	e.bookings = service.NewBookingService(
		e.bookingRepo, e.carRepo, e.customerRepo, e.driverRepo, e.pricingRepo,
		e.invoiceRepo, e.pricing, e.lockStore, nil,
	)
	e.settlement = service.NewSettlementService(e.partnerRepo, e.carRepo, e.bookingRepo, e.transactionRepo)
	e.invoices = service.NewInvoiceService(e.invoiceRepo, e.bookingRepo, e.customerRepo)
	e.fleet = service.NewFleetService(e.carRepo, e.partnerRepo, e.customerRepo, e.driverRepo, e.transactionRepo, nil)

	e.setPricingConfig(t, domain.ChargePercentage, 10)
	return e
}

func (e *engine) setPricingConfig(t *testing.T, overtimeType domain.ChargeType, value int64) {
	t.Helper()
	cfg := &domain.PricingConfig{OvertimeType: overtimeType, OvertimeValue: value}
	if err := e.pricingRepo.SaveConfig(context.Background(), cfg); err != nil {
		t.Fatalf("save pricing config: %v", err)
	}
}

func (e *engine) addCar(t *testing.T, id string, dailyRate domain.Money, category, ownerPartnerID string) *domain.Car {
	t.Helper()
	car := &domain.Car{
		ID:             id,
		Plate:          "B 1 " + id,
		Name:           "car " + id,
		Category:       category,
		DailyRate:      dailyRate,
		OwnerPartnerID: ownerPartnerID,
		CreatedAt:      time.Now(),
	}
	if err := e.carRepo.Create(context.Background(), car); err != nil {
		t.Fatalf("create car: %v", err)
	}
	return car
}

func (e *engine) addCustomer(t *testing.T, id string) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{ID: id, Name: "customer " + id, CreatedAt: time.Now()}
	if err := e.customerRepo.Create(context.Background(), customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

func (e *engine) addPartner(t *testing.T, id string, splitPercentage int64) *domain.Partner {
	t.Helper()
	partner := &domain.Partner{
		ID:              id,
		Name:            "partner " + id,
		SplitPercentage: splitPercentage,
		CreatedAt:       time.Now(),
	}
	if err := e.partnerRepo.Create(context.Background(), partner); err != nil {
		t.Fatalf("create partner: %v", err)
	}
	return partner
}

func (e *engine) setSeasonRules(t *testing.T, rules ...*domain.HighSeasonRule) {
	t.Helper()
	if err := e.pricingRepo.SaveRules(context.Background(), rules); err != nil {
		t.Fatalf("save season rules: %v", err)
	}
}

// day returns a UTC timestamp at midnight, offset in days from a fixed
// base date.
func day(offset int) time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

// book creates a BOOKED booking through the service, failing the test on
// any error.
func (e *engine) book(t *testing.T, carID, customerID string, start, end time.Time) *domain.Booking {
	t.Helper()
	booking, err := e.bookings.CreateBooking(context.Background(), service.CreateBookingRequest{
		CarID:          carID,
		CustomerID:     customerID,
		ScheduledStart: start,
		ScheduledEnd:   end,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking
}

// completeBooking runs a booking through activate and complete.
func (e *engine) completeBooking(t *testing.T, bookingID string, actualReturn time.Time) *domain.Booking {
	t.Helper()
	ctx := context.Background()
	if _, err := e.bookings.ActivateBooking(ctx, bookingID); err != nil {
		t.Fatalf("activate booking: %v", err)
	}
	booking, err := e.bookings.CompleteBooking(ctx, bookingID, actualReturn)
	if err != nil {
		t.Fatalf("complete booking: %v", err)
	}
	return booking
}
