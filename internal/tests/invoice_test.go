package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/service"
)

func TestInvoiceAggregation_SumsFrozenTotals(t *testing.T) {
	t.Parallel()

	// Two completed bookings with totals 500,000 and 700,000.
	e := newEngine(t)
	e.addCar(t, "car-1", 250_000, "MPV", "")
	e.addCar(t, "car-2", 350_000, "SUV", "")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	b1 := e.book(t, "car-1", "cust-1", day(0), day(2))
	e.completeBooking(t, b1.ID, day(2))
	b2 := e.book(t, "car-2", "cust-1", day(3), day(5))
	e.completeBooking(t, b2.ID, day(5))

	invoice, err := e.invoices.Aggregate(ctx, "cust-1", []string{b1.ID, b2.ID})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if invoice.GrandTotal != 1_200_000 {
		t.Errorf("expected grand total 1200000, got %d", invoice.GrandTotal)
	}
	if invoice.Status != domain.InvoiceStatusActive {
		t.Errorf("expected ACTIVE invoice, got %s", invoice.Status)
	}
	if len(invoice.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(invoice.Lines))
	}
	if invoice.Lines[0].Total != 500_000 || invoice.Lines[1].Total != 700_000 {
		t.Errorf("unexpected line totals: %+v", invoice.Lines)
	}
}

func TestInvoiceAggregation_Idempotent(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.addCar(t, "car-1", 250_000, "MPV", "")
	e.addCar(t, "car-2", 350_000, "SUV", "")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	b1 := e.book(t, "car-1", "cust-1", day(0), day(2))
	e.completeBooking(t, b1.ID, day(2))
	b2 := e.book(t, "car-2", "cust-1", day(3), day(5))
	e.completeBooking(t, b2.ID, day(5))

	first, err := e.invoices.Aggregate(ctx, "cust-1", []string{b1.ID, b2.ID})
	if err != nil {
		t.Fatalf("first aggregate: %v", err)
	}

	// Same set again, order reversed: same invoice, same total.
	second, err := e.invoices.Aggregate(ctx, "cust-1", []string{b2.ID, b1.ID})
	if err != nil {
		t.Fatalf("second aggregate: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the standing invoice %s back, got %s", first.ID, second.ID)
	}
	if second.GrandTotal != 1_200_000 {
		t.Errorf("expected grand total 1200000 both times, got %d", second.GrandTotal)
	}

	all, err := e.invoices.GetAllInvoices(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected a single invoice, got %d", len(all))
	}
}

func TestInvoiceAggregation_PartialOverlap_Rejected(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.addCar(t, "car-1", 250_000, "MPV", "")
	e.addCar(t, "car-2", 350_000, "SUV", "")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	b1 := e.book(t, "car-1", "cust-1", day(0), day(2))
	e.completeBooking(t, b1.ID, day(2))
	b2 := e.book(t, "car-2", "cust-1", day(3), day(5))
	e.completeBooking(t, b2.ID, day(5))

	if _, err := e.invoices.Aggregate(ctx, "cust-1", []string{b1.ID}); err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	// b1 is already on an active invoice, so {b1, b2} must be rejected.
	_, err := e.invoices.Aggregate(ctx, "cust-1", []string{b1.ID, b2.ID})
	if !errors.Is(err, service.ErrInvoiceState) {
		t.Fatalf("expected invoice state error, got %v", err)
	}
	var stateErr *service.InvoiceStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InvoiceStateError, got %T", err)
	}
	if stateErr.BookingID != b1.ID {
		t.Errorf("expected offending booking %s, got %s", b1.ID, stateErr.BookingID)
	}
}

func TestInvoiceAggregation_Preconditions(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.addCar(t, "car-1", 250_000, "MPV", "")
	e.addCustomer(t, "cust-1")
	e.addCustomer(t, "cust-2")
	ctx := context.Background()

	b := e.book(t, "car-1", "cust-1", day(0), day(2))

	// Wrong customer.
	if _, err := e.invoices.Aggregate(ctx, "cust-2", []string{b.ID}); !errors.Is(err, service.ErrInvoiceState) {
		t.Errorf("expected invoice state error for foreign booking, got %v", err)
	}

	// Cancelled booking.
	cancelled := e.book(t, "car-1", "cust-1", day(3), day(4))
	if _, err := e.bookings.CancelBooking(ctx, cancelled.ID, ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := e.invoices.Aggregate(ctx, "cust-1", []string{cancelled.ID}); !errors.Is(err, service.ErrInvoiceState) {
		t.Errorf("expected invoice state error for cancelled booking, got %v", err)
	}

	// Empty set.
	if _, err := e.invoices.Aggregate(ctx, "cust-1", nil); !errors.Is(err, service.ErrNoBookings) {
		t.Errorf("expected ErrNoBookings, got %v", err)
	}

	// Duplicate id in the set.
	if _, err := e.invoices.Aggregate(ctx, "cust-1", []string{b.ID, b.ID}); !errors.Is(err, service.ErrInvoiceState) {
		t.Errorf("expected invoice state error for duplicate booking, got %v", err)
	}
}

func TestInvoice_CancellationFlagsStale(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.addCar(t, "car-1", 250_000, "MPV", "")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	b := e.book(t, "car-1", "cust-1", day(0), day(2))
	invoice, err := e.invoices.Aggregate(ctx, "cust-1", []string{b.ID})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	original := invoice.GrandTotal
	if _, err := e.bookings.CancelBooking(ctx, b.ID, "plans changed"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	flagged, err := e.invoices.GetInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if flagged.Status != domain.InvoiceStatusStale {
		t.Errorf("expected STALE after cancellation, got %s", flagged.Status)
	}
	// The document keeps its issued figures.
	if flagged.GrandTotal != original {
		t.Errorf("expected grand total unchanged at %d, got %d", original, flagged.GrandTotal)
	}
}

func TestInvoice_VoidReleasesBookings(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	e.addCar(t, "car-1", 250_000, "MPV", "")
	e.addCustomer(t, "cust-1")
	ctx := context.Background()

	b := e.book(t, "car-1", "cust-1", day(0), day(2))
	e.completeBooking(t, b.ID, day(2))

	invoice, err := e.invoices.Aggregate(ctx, "cust-1", []string{b.ID})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	voided, err := e.invoices.VoidInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("void: %v", err)
	}
	if voided.Status != domain.InvoiceStatusVoid {
		t.Errorf("expected VOID, got %s", voided.Status)
	}

	// The booking can be invoiced again.
	reissued, err := e.invoices.Aggregate(ctx, "cust-1", []string{b.ID})
	if err != nil {
		t.Fatalf("re-aggregate after void: %v", err)
	}
	if reissued.ID == invoice.ID {
		t.Error("expected a fresh invoice after void")
	}
}
