package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore keeps each collection as a single JSON document row.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// InitSchema creates the collections table if it does not exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			name    TEXT PRIMARY KEY,
			data    JSONB NOT NULL,
			version BIGINT NOT NULL
		)
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create collections table: %w", err)
	}
	return nil
}

// Load returns the collection document and its current version.
func (s *PostgresStore) Load(ctx context.Context, name string) ([]byte, Version, error) {
	query := `SELECT data, version FROM collections WHERE name = $1`

	var data []byte
	var version int64

	err := s.db.QueryRowContext(ctx, query, name).Scan(&data, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	return data, Version(version), nil
}

// Save writes the full collection document with a compare-and-swap on the
// version. Version 0 inserts; anything else updates the matching version.
func (s *PostgresStore) Save(ctx context.Context, name string, data []byte, expected Version) error {
	var result sql.Result
	var err error

	if expected == 0 {
		query := `
			INSERT INTO collections (name, data, version)
			VALUES ($1, $2, 1)
			ON CONFLICT (name) DO NOTHING
		`
		result, err = s.db.ExecContext(ctx, query, name, data)
	} else {
		query := `
			UPDATE collections
			SET data = $2, version = version + 1
			WHERE name = $1 AND version = $3
		`
		result, err = s.db.ExecContext(ctx, query, name, data, int64(expected))
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}
