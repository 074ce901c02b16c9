package kv

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// TransactionRepository is a collection-store implementation of
// repository.TransactionRepository.
type TransactionRepository struct {
	store kvstore.Store
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(store kvstore.Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// Create persists a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return appendOne(ctx, r.store, kvstore.CollectionTransactions, tx)
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	txs, _, err := loadAll[domain.Transaction](ctx, r.store, kvstore.CollectionTransactions)
	if err != nil {
		return nil, err
	}
	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAll retrieves all transactions.
func (r *TransactionRepository) GetAll(ctx context.Context) ([]*domain.Transaction, error) {
	txs, _, err := loadAll[domain.Transaction](ctx, r.store, kvstore.CollectionTransactions)
	return txs, err
}
