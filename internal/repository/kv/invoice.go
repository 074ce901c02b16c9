package kv

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// InvoiceRepository is a collection-store implementation of
// repository.InvoiceRepository.
type InvoiceRepository struct {
	store kvstore.Store
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(store kvstore.Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

// Snapshot loads the committed invoice set and its version token.
func (r *InvoiceRepository) Snapshot(ctx context.Context) (*repository.InvoiceSet, error) {
	invoices, version, err := loadAll[domain.CollectiveInvoice](ctx, r.store, kvstore.CollectionInvoices)
	if err != nil {
		return nil, err
	}
	return &repository.InvoiceSet{Invoices: invoices, Version: version}, nil
}

// Commit writes the full invoice set with a compare-and-swap on the
// snapshot's version.
func (r *InvoiceRepository) Commit(ctx context.Context, set *repository.InvoiceSet) error {
	return saveAll(ctx, r.store, kvstore.CollectionInvoices, set.Invoices, set.Version)
}

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.CollectiveInvoice, error) {
	set, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if inv := set.Find(id); inv != nil {
		return inv, nil
	}
	return nil, repository.ErrNotFound
}

// GetAll retrieves all invoices.
func (r *InvoiceRepository) GetAll(ctx context.Context) ([]*domain.CollectiveInvoice, error) {
	invoices, _, err := loadAll[domain.CollectiveInvoice](ctx, r.store, kvstore.CollectionInvoices)
	return invoices, err
}
