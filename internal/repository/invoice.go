package repository

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
)

// InvoiceSet is a point-in-time snapshot of the collective invoice
// collection plus the version token needed to commit changes. The
// single-active-invoice-per-booking rule is enforced by re-checking against
// the snapshot and committing with its version.
type InvoiceSet struct {
	Invoices []*domain.CollectiveInvoice
	Version  kvstore.Version
}

// Find returns the invoice with the given id, or nil.
func (s *InvoiceSet) Find(id string) *domain.CollectiveInvoice {
	for _, inv := range s.Invoices {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

// ActiveFor returns the active invoice referencing the given booking, or nil.
func (s *InvoiceSet) ActiveFor(bookingID string) *domain.CollectiveInvoice {
	for _, inv := range s.Invoices {
		if inv.Status == domain.InvoiceStatusActive && inv.References(bookingID) {
			return inv
		}
	}
	return nil
}

// InvoiceRepository defines the persistence operations for collective
// invoices.
type InvoiceRepository interface {
	// Snapshot loads the committed invoice set and its version token.
	Snapshot(ctx context.Context) (*InvoiceSet, error)

	// Commit writes the full invoice set if the underlying collection is
	// still at the snapshot's version; otherwise ErrVersionConflict.
	Commit(ctx context.Context, set *InvoiceSet) error

	// GetByID retrieves an invoice by ID.
	GetByID(ctx context.Context, id string) (*domain.CollectiveInvoice, error)

	// GetAll retrieves all invoices.
	GetAll(ctx context.Context) ([]*domain.CollectiveInvoice, error)
}
