package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

func TestSettlement_SplitsGrossRevenue(t *testing.T) {
	t.Parallel()

	// Two completed rentals on the partner's car: 2 x 250,000 + 2 x 250,000
	// = 1,000,000 gross. At a 40% split the partner gets 400,000 and the
	// company keeps 600,000.
	e := newEngine(t)
	e.addPartner(t, "partner-1", 40)
	e.addCar(t, "car-1", 250_000, "MPV", "partner-1")
	e.addCustomer(t, "cust-1")

	b1 := e.book(t, "car-1", "cust-1", day(1), day(3))
	e.completeBooking(t, b1.ID, day(3))
	b2 := e.book(t, "car-1", "cust-1", day(5), day(7))
	e.completeBooking(t, b2.ID, day(7))

	stmt, err := e.settlement.Settle(context.Background(), "partner-1", day(0), day(30))
	if err != nil {
		t.Fatalf("settle: %v", err)
	}

	if stmt.GrossRevenue != 1_000_000 {
		t.Errorf("expected gross 1000000, got %d", stmt.GrossRevenue)
	}
	if stmt.PartnerShare != 400_000 {
		t.Errorf("expected partner share 400000, got %d", stmt.PartnerShare)
	}
	if stmt.CompanyShare != 600_000 {
		t.Errorf("expected company share 600000, got %d", stmt.CompanyShare)
	}
	if stmt.PartnerShare+stmt.CompanyShare != stmt.GrossRevenue {
		t.Error("shares must sum to gross revenue")
	}
}

func TestSettlement_SharesAlwaysSumToGross(t *testing.T) {
	t.Parallel()

	// An odd gross makes the rounding visible: every split in [0,100]
	// must still partition the gross exactly.
	e := newEngine(t)
	e.addCustomer(t, "cust-1")

	for split := int64(0); split <= 100; split += 7 {
		partnerID := "partner-" + string(rune('a'+split/7))
		carID := "car-" + partnerID
		e.addPartner(t, partnerID, split)
		e.addCar(t, carID, 333_333, "MPV", partnerID)

		b := e.book(t, carID, "cust-1", day(0), day(1))
		e.completeBooking(t, b.ID, day(1))

		stmt, err := e.settlement.Settle(context.Background(), partnerID, day(0), day(30))
		if err != nil {
			t.Fatalf("settle split %d: %v", split, err)
		}
		if stmt.PartnerShare+stmt.CompanyShare != stmt.GrossRevenue {
			t.Errorf("split %d: %d + %d != %d", split, stmt.PartnerShare, stmt.CompanyShare, stmt.GrossRevenue)
		}
	}
}

func TestSettlement_DeductsInvestorDeposits(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.addPartner(t, "partner-1", 40)
	e.addCar(t, "car-1", 500_000, "SUV", "partner-1")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	b := e.book(t, "car-1", "cust-1", day(1), day(3))
	e.completeBooking(t, b.ID, day(3))
	// gross 1,000,000, share 400,000

	if _, err := e.fleet.RecordTransaction(ctx, service.RecordTransactionRequest{
		Date:      day(10),
		Amount:    150_000,
		Kind:      domain.TransactionKindExpense,
		Category:  domain.TransactionCategoryInvestorDeposit,
		RelatedID: "partner-1",
	}); err != nil {
		t.Fatalf("record deposit: %v", err)
	}
	// A pending deposit must not count.
	if _, err := e.fleet.RecordTransaction(ctx, service.RecordTransactionRequest{
		Date:      day(11),
		Amount:    999_999,
		Kind:      domain.TransactionKindExpense,
		Category:  domain.TransactionCategoryInvestorDeposit,
		Status:    domain.TransactionStatusPending,
		RelatedID: "partner-1",
	}); err != nil {
		t.Fatalf("record pending deposit: %v", err)
	}

	stmt, err := e.settlement.Settle(ctx, "partner-1", day(0), day(30))
	if err != nil {
		t.Fatalf("settle: %v", err)
	}

	if stmt.DepositsPaid != 150_000 {
		t.Errorf("expected deposits 150000, got %d", stmt.DepositsPaid)
	}
	if stmt.Outstanding != 250_000 {
		t.Errorf("expected outstanding 250000, got %d", stmt.Outstanding)
	}
}

func TestSettlement_OverpaidPartner_NegativeOutstanding(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.addPartner(t, "partner-1", 50)
	e.addCar(t, "car-1", 100_000, "CITY", "partner-1")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	b := e.book(t, "car-1", "cust-1", day(1), day(2))
	e.completeBooking(t, b.ID, day(2))
	// gross 100,000, share 50,000

	if _, err := e.fleet.RecordTransaction(ctx, service.RecordTransactionRequest{
		Date:      day(5),
		Amount:    80_000,
		Kind:      domain.TransactionKindExpense,
		Category:  domain.TransactionCategoryInvestorDeposit,
		RelatedID: "partner-1",
	}); err != nil {
		t.Fatalf("record deposit: %v", err)
	}

	stmt, err := e.settlement.Settle(ctx, "partner-1", day(0), day(30))
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if stmt.Outstanding != -30_000 {
		t.Errorf("expected outstanding -30000, got %d", stmt.Outstanding)
	}
}

func TestSettlement_FiltersByPeriodAndOwnership(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.addPartner(t, "partner-1", 40)
	e.addCar(t, "car-1", 200_000, "MPV", "partner-1")
	e.addCar(t, "car-2", 200_000, "MPV", "") // company owned
	e.addCustomer(t, "cust-1")

	// Inside the period, partner's car: counts.
	in := e.book(t, "car-1", "cust-1", day(5), day(6))
	e.completeBooking(t, in.ID, day(6))

	// Starts outside the half-open period: excluded.
	out := e.book(t, "car-1", "cust-1", day(30), day(31))
	e.completeBooking(t, out.ID, day(31))

	// Company car: excluded.
	other := e.book(t, "car-2", "cust-1", day(5), day(6))
	e.completeBooking(t, other.ID, day(6))

	// Still BOOKED: excluded.
	e.book(t, "car-1", "cust-1", day(10), day(11))

	stmt, err := e.settlement.Settle(context.Background(), "partner-1", day(0), day(30))
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if stmt.GrossRevenue != 200_000 {
		t.Errorf("expected gross 200000, got %d", stmt.GrossRevenue)
	}
	if stmt.BookingCount != 1 {
		t.Errorf("expected 1 booking counted, got %d", stmt.BookingCount)
	}
}

func TestSettlement_InvalidInput(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	ctx := context.Background()

	if _, err := e.settlement.Settle(ctx, "", day(0), day(1)); !errors.Is(err, service.ErrInvalidPartnerID) {
		t.Errorf("expected ErrInvalidPartnerID, got %v", err)
	}
	if _, err := e.settlement.Settle(ctx, "partner-1", day(1), day(1)); !errors.Is(err, service.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if _, err := e.settlement.Settle(ctx, "missing", start, start.AddDate(0, 1, 0)); err == nil {
		t.Error("expected error for unknown partner")
	}
}
