package kvstore

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMemoryStore_LoadMissingCollection(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	data, version, err := store.Load(context.Background(), CollectionCars)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data != nil || version != 0 {
		t.Errorf("expected empty collection at version 0, got %q v%d", data, version)
	}
}

func TestMemoryStore_SaveThenLoad(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, CollectionCars, []byte(`[{"id":"car-1"}]`), 0); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, version, err := store.Load(ctx, CollectionCars)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `[{"id":"car-1"}]` {
		t.Errorf("unexpected data %q", data)
	}
	if version != 1 {
		t.Errorf("expected version 1, got %d", version)
	}
}

func TestMemoryStore_StaleVersionRejected(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, CollectionBookings, []byte(`[]`), 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, CollectionBookings, []byte(`["a"]`), 1); err != nil {
		t.Fatalf("save v1: %v", err)
	}

	// Writing against the overwritten version must fail.
	err := store.Save(ctx, CollectionBookings, []byte(`["b"]`), 1)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	data, version, err := store.Load(ctx, CollectionBookings)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `["a"]` || version != 2 {
		t.Errorf("expected winning write at v2, got %q v%d", data, version)
	}
}

func TestMemoryStore_CollectionsAreIndependent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, CollectionCars, []byte(`["car"]`), 0); err != nil {
		t.Fatalf("save cars: %v", err)
	}
	if err := store.Save(ctx, CollectionBookings, []byte(`["booking"]`), 0); err != nil {
		t.Fatalf("save bookings: %v", err)
	}

	data, _, err := store.Load(ctx, CollectionCars)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `["car"]` {
		t.Errorf("cars collection polluted: %q", data)
	}
}

func TestMemoryStore_LoadedBytesAreACopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, CollectionCars, []byte(`["x"]`), 0); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, _, err := store.Load(ctx, CollectionCars)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	data[1] = 'y'

	again, _, err := store.Load(ctx, CollectionCars)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(again) != `["x"]` {
		t.Errorf("stored document mutated through loaded copy: %q", again)
	}
}

func TestMemoryStore_ConcurrentWriters_ExactlyOneWinsPerVersion(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, CollectionBookings, []byte(`[]`), 0); err != nil {
		t.Fatalf("save: %v", err)
	}

	const writers = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Save(ctx, CollectionBookings, []byte(`["w"]`), 1) == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for range wins {
		won++
	}
	if won != 1 {
		t.Errorf("expected exactly one writer to win version 1, got %d", won)
	}
}
