package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrVersionConflict is returned when a commit carries a stale snapshot,
	// meaning the underlying collection changed since it was read.
	ErrVersionConflict = errors.New("collection changed since snapshot")
)
