package domain

import "time"

// InvoiceStatus represents the lifecycle of a collective invoice.
type InvoiceStatus string

const (
	// InvoiceStatusActive is a live invoice; its bookings may not be
	// invoiced again while it stands.
	InvoiceStatusActive InvoiceStatus = "ACTIVE"
	// InvoiceStatusStale marks an invoice whose underlying bookings changed
	// (e.g. a cancellation) after it was issued. The document is kept as
	// issued and flagged rather than rewritten.
	InvoiceStatusStale InvoiceStatus = "STALE"
	// InvoiceStatusVoid is an explicitly withdrawn invoice; it no longer
	// blocks re-invoicing its bookings.
	InvoiceStatusVoid InvoiceStatus = "VOID"
)

// InvoiceLine preserves one booking's price breakdown for display and audit.
type InvoiceLine struct {
	BookingID   string `json:"booking_id"`
	BasePrice   Money  `json:"base_price"`
	Surcharge   Money  `json:"surcharge"`
	OvertimeFee Money  `json:"overtime_fee"`
	Total       Money  `json:"total"`
}

// CollectiveInvoice aggregates several bookings for one customer into a
// single billable document. GrandTotal is derived from the lines and never
// hand-edited.
type CollectiveInvoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Lines      []InvoiceLine `json:"lines"`
	GrandTotal Money         `json:"grand_total"`
	Status     InvoiceStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// References reports whether the invoice bills the given booking.
func (inv *CollectiveInvoice) References(bookingID string) bool {
	for _, line := range inv.Lines {
		if line.BookingID == bookingID {
			return true
		}
	}
	return false
}

// BookingIDs returns the ids billed by this invoice, in line order.
func (inv *CollectiveInvoice) BookingIDs() []string {
	ids := make([]string, 0, len(inv.Lines))
	for _, line := range inv.Lines {
		ids = append(ids, line.BookingID)
	}
	return ids
}
