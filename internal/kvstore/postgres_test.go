package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresStore_LoadExisting(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT data, version FROM collections WHERE name = \$1`).
		WithArgs(CollectionCars).
		WillReturnRows(sqlmock.NewRows([]string{"data", "version"}).AddRow([]byte(`[{"id":"c1"}]`), int64(3)))

	store := NewPostgresStore(db)
	data, version, err := store.Load(context.Background(), CollectionCars)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `[{"id":"c1"}]` {
		t.Errorf("unexpected data %q", data)
	}
	if version != 3 {
		t.Errorf("expected version 3, got %d", version)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresStore_LoadMissingIsEmptyAtZero(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT data, version FROM collections WHERE name = \$1`).
		WithArgs(CollectionBookings).
		WillReturnRows(sqlmock.NewRows([]string{"data", "version"}))

	store := NewPostgresStore(db)
	data, version, err := store.Load(context.Background(), CollectionBookings)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data != nil || version != 0 {
		t.Errorf("expected empty collection at version 0, got %q v%d", data, version)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresStore_SaveNewCollectionInserts(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO collections`).
		WithArgs(CollectionCars, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPostgresStore(db)
	if err := store.Save(context.Background(), CollectionCars, []byte(`[]`), 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresStore_SaveUpdateUsesVersionCAS(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE collections`).
		WithArgs(CollectionBookings, []byte(`["b"]`), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPostgresStore(db)
	if err := store.Save(context.Background(), CollectionBookings, []byte(`["b"]`), 4); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresStore_StaleSaveReturnsVersionConflict(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// No row matches the stale version.
	mock.ExpectExec(`UPDATE collections`).
		WithArgs(CollectionBookings, []byte(`["b"]`), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewPostgresStore(db)
	err = store.Save(context.Background(), CollectionBookings, []byte(`["b"]`), 4)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresStore_DuplicateInsertConflicts(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// ON CONFLICT DO NOTHING affects zero rows when the name exists.
	mock.ExpectExec(`INSERT INTO collections`).
		WithArgs(CollectionCars, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewPostgresStore(db)
	err = store.Save(context.Background(), CollectionCars, []byte(`[]`), 0)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
