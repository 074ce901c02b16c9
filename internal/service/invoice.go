package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/metrics"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// InvoiceService aggregates several of a customer's bookings into one
// collective invoice. An invoice copies the price breakdown at issue time;
// cancellations afterwards flag it stale rather than rewriting it.
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	bookingRepo  repository.BookingRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	bookingRepo repository.BookingRepository,
	customerRepo repository.CustomerRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
	}
}

// Aggregate issues a collective invoice for the given bookings, which must
// all belong to customerID, must not be cancelled, and must not already be
// on an active invoice. Calling it again with exactly the bookings of an
// existing active invoice returns that invoice unchanged; a partial overlap
// is an InvoiceStateError.
func (s *InvoiceService) Aggregate(ctx context.Context, customerID string, bookingIDs []string) (*domain.CollectiveInvoice, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	if len(bookingIDs) == 0 {
		return nil, ErrNoBookings
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	bookingSet, err := s.bookingRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(bookingIDs))
	lines := make([]domain.InvoiceLine, 0, len(bookingIDs))
	var grandTotal domain.Money
	for _, id := range bookingIDs {
		if id == "" {
			return nil, ErrInvalidBookingID
		}
		if seen[id] {
			return nil, &InvoiceStateError{BookingID: id, Reason: "booking listed twice"}
		}
		seen[id] = true

		b := bookingSet.Find(id)
		if b == nil {
			return nil, repository.ErrNotFound
		}
		if b.CustomerID != customerID {
			return nil, &InvoiceStateError{BookingID: id, Reason: "booking belongs to a different customer"}
		}
		if b.Status == domain.BookingStatusCancelled {
			return nil, &InvoiceStateError{BookingID: id, Reason: "booking is cancelled"}
		}

		lines = append(lines, domain.InvoiceLine{
			BookingID:   b.ID,
			BasePrice:   b.BasePrice,
			Surcharge:   b.Surcharge,
			OvertimeFee: b.OvertimeFee,
			Total:       b.TotalPrice,
		})
		grandTotal += b.TotalPrice
	}

	invoiceSet, err := s.invoiceRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range bookingIDs {
		existing := invoiceSet.ActiveFor(id)
		if existing == nil {
			continue
		}
		if sameBookingSet(existing.BookingIDs(), bookingIDs) {
			// Re-issuing the identical set is a no-op by design intent
			// of the caller; hand back the standing invoice.
			return existing, nil
		}
		return nil, &InvoiceStateError{BookingID: id, Reason: "booking already on active invoice " + existing.ID}
	}

	invoice := &domain.CollectiveInvoice{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Lines:      lines,
		GrandTotal: grandTotal,
		Status:     domain.InvoiceStatusActive,
		CreatedAt:  time.Now(),
	}

	invoiceSet.Invoices = append(invoiceSet.Invoices, invoice)
	if err := s.invoiceRepo.Commit(ctx, invoiceSet); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrConcurrentModification
		}
		return nil, err
	}

	metrics.InvoicesAggregated.Inc()
	log.Info().
		Str("invoice_id", invoice.ID).
		Str("customer_id", customerID).
		Int("lines", len(lines)).
		Int64("grand_total", int64(grandTotal)).
		Msg("collective invoice issued")

	return invoice, nil
}

// VoidInvoice withdraws an invoice, releasing its bookings for re-invoicing.
// Only ACTIVE or STALE invoices can be voided.
func (s *InvoiceService) VoidInvoice(ctx context.Context, invoiceID string) (*domain.CollectiveInvoice, error) {
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}

	set, err := s.invoiceRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	invoice := set.Find(invoiceID)
	if invoice == nil {
		return nil, repository.ErrNotFound
	}
	if invoice.Status == domain.InvoiceStatusVoid {
		return invoice, nil
	}

	invoice.Status = domain.InvoiceStatusVoid
	if err := s.invoiceRepo.Commit(ctx, set); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrConcurrentModification
		}
		return nil, err
	}

	log.Info().Str("invoice_id", invoice.ID).Msg("invoice voided")
	return invoice, nil
}

// GetInvoice retrieves an invoice by ID.
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.CollectiveInvoice, error) {
	return s.invoiceRepo.GetByID(ctx, invoiceID)
}

// GetAllInvoices retrieves all invoices.
func (s *InvoiceService) GetAllInvoices(ctx context.Context) ([]*domain.CollectiveInvoice, error) {
	return s.invoiceRepo.GetAll(ctx)
}

// sameBookingSet compares two id lists as sets.
func sameBookingSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
