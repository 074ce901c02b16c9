// Package kv implements the repository interfaces on top of the
// named-collection store. Every repository loads its whole collection,
// works on it in memory and writes it back with the version it read.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// loadAll decodes a collection into a typed slice. A collection that was
// never written decodes to an empty slice at version 0.
func loadAll[T any](ctx context.Context, store kvstore.Store, name string) ([]*T, kvstore.Version, error) {
	data, version, err := store.Load(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	if len(data) == 0 {
		return nil, version, nil
	}

	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, 0, fmt.Errorf("decode collection %q: %w", name, err)
	}
	return items, version, nil
}

// saveAll encodes and writes a full collection, translating a store-level
// version conflict into the repository sentinel.
func saveAll[T any](ctx context.Context, store kvstore.Store, name string, items []*T, expected kvstore.Version) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", name, err)
	}

	if err := store.Save(ctx, name, data, expected); err != nil {
		if errors.Is(err, kvstore.ErrVersionConflict) {
			return repository.ErrVersionConflict
		}
		return err
	}
	return nil
}

// appendOne is the common create path: load, append, write back.
func appendOne[T any](ctx context.Context, store kvstore.Store, name string, item *T) error {
	items, version, err := loadAll[T](ctx, store, name)
	if err != nil {
		return err
	}
	items = append(items, item)
	return saveAll(ctx, store, name, items, version)
}

// Ensure concrete types implement the repository interfaces.
var (
	_ repository.CarRepository         = (*CarRepository)(nil)
	_ repository.BookingRepository     = (*BookingRepository)(nil)
	_ repository.PartnerRepository     = (*PartnerRepository)(nil)
	_ repository.CustomerRepository    = (*CustomerRepository)(nil)
	_ repository.DriverRepository      = (*DriverRepository)(nil)
	_ repository.PricingRepository     = (*PricingRepository)(nil)
	_ repository.TransactionRepository = (*TransactionRepository)(nil)
	_ repository.InvoiceRepository     = (*InvoiceRepository)(nil)
)
