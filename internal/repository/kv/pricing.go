package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// PricingRepository is a collection-store implementation of
// repository.PricingRepository.
type PricingRepository struct {
	store kvstore.Store
}

// NewPricingRepository creates a new PricingRepository.
func NewPricingRepository(store kvstore.Store) *PricingRepository {
	return &PricingRepository{store: store}
}

// GetConfig retrieves the global pricing config.
func (r *PricingRepository) GetConfig(ctx context.Context) (*domain.PricingConfig, error) {
	data, _, err := r.store.Load(ctx, kvstore.CollectionPricingConfig)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, repository.ErrNotFound
	}

	var cfg domain.PricingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode pricing config: %w", err)
	}
	return &cfg, nil
}

// SaveConfig stores the global pricing config. The config is a single
// document; concurrent writers lose to whoever commits first.
func (r *PricingRepository) SaveConfig(ctx context.Context, cfg *domain.PricingConfig) error {
	_, version, err := r.store.Load(ctx, kvstore.CollectionPricingConfig)
	if err != nil {
		return err
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode pricing config: %w", err)
	}

	if err := r.store.Save(ctx, kvstore.CollectionPricingConfig, data, version); err != nil {
		if errors.Is(err, kvstore.ErrVersionConflict) {
			return repository.ErrVersionConflict
		}
		return err
	}
	return nil
}

// ListRules retrieves all high-season rules.
func (r *PricingRepository) ListRules(ctx context.Context) ([]*domain.HighSeasonRule, error) {
	rules, _, err := loadAll[domain.HighSeasonRule](ctx, r.store, kvstore.CollectionHighSeasonRules)
	return rules, err
}

// SaveRules replaces the high-season rule collection.
func (r *PricingRepository) SaveRules(ctx context.Context, rules []*domain.HighSeasonRule) error {
	_, version, err := r.store.Load(ctx, kvstore.CollectionHighSeasonRules)
	if err != nil {
		return err
	}
	return saveAll(ctx, r.store, kvstore.CollectionHighSeasonRules, rules, version)
}

// GetPackage retrieves a rental package by ID.
func (r *PricingRepository) GetPackage(ctx context.Context, id string) (*domain.RentalPackage, error) {
	packages, _, err := loadAll[domain.RentalPackage](ctx, r.store, kvstore.CollectionRentalPackages)
	if err != nil {
		return nil, err
	}
	for _, pkg := range packages {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ListPackages retrieves all rental packages.
func (r *PricingRepository) ListPackages(ctx context.Context) ([]*domain.RentalPackage, error) {
	packages, _, err := loadAll[domain.RentalPackage](ctx, r.store, kvstore.CollectionRentalPackages)
	return packages, err
}

// SavePackages replaces the rental package collection.
func (r *PricingRepository) SavePackages(ctx context.Context, packages []*domain.RentalPackage) error {
	_, version, err := r.store.Load(ctx, kvstore.CollectionRentalPackages)
	if err != nil {
		return err
	}
	return saveAll(ctx, r.store, kvstore.CollectionRentalPackages, packages, version)
}
