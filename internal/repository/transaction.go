package repository

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
)

// TransactionRepository defines the persistence operations for ledger
// transactions.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, tx *domain.Transaction) error

	// GetByID retrieves a transaction by ID.
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)

	// GetAll retrieves all transactions.
	GetAll(ctx context.Context) ([]*domain.Transaction, error)
}
