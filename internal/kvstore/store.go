// Package kvstore provides the named-collection persistence layer. The
// backing store offers nothing beyond get/put of whole collections by name:
// no partial updates, no server-side filtering. Callers load a collection,
// mutate it in memory and write it back with the version token they read,
// which is the optimistic-concurrency guard for read-check-write operations.
package kvstore

import (
	"context"
	"errors"
)

// Collection names used by the engine.
const (
	CollectionCars            = "cars"
	CollectionBookings        = "bookings"
	CollectionCustomers       = "customers"
	CollectionDrivers         = "drivers"
	CollectionPartners        = "partners"
	CollectionHighSeasonRules = "highSeasonRules"
	CollectionPricingConfig   = "pricingConfig"
	CollectionRentalPackages  = "rentalPackages"
	CollectionTransactions    = "transactions"
	CollectionInvoices        = "collectiveInvoices"
)

// Version is a per-collection monotonically increasing write counter.
// Version 0 means the collection has never been written.
type Version int64

// ErrVersionConflict is returned when a Save carries a stale version token,
// meaning the collection changed since it was loaded.
var ErrVersionConflict = errors.New("collection version conflict")

// Store reads and writes whole collections keyed by name.
type Store interface {
	// Load returns the collection document and its current version.
	// A collection that was never written yields nil data and version 0.
	Load(ctx context.Context, name string) ([]byte, Version, error)

	// Save writes the full collection document. The write succeeds only if
	// the collection is still at the expected version; otherwise it fails
	// with ErrVersionConflict and nothing is written.
	Save(ctx context.Context, name string, data []byte, expected Version) error
}
