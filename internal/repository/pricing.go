package repository

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
)

// PricingRepository defines the persistence operations for pricing master
// data: the global overtime config, the high-season rules and the rental
// rate packages.
type PricingRepository interface {
	// GetConfig retrieves the global pricing config. ErrNotFound means the
	// config was never set, which is bad master data for the caller.
	GetConfig(ctx context.Context) (*domain.PricingConfig, error)

	// SaveConfig stores the global pricing config.
	SaveConfig(ctx context.Context, cfg *domain.PricingConfig) error

	// ListRules retrieves all high-season rules.
	ListRules(ctx context.Context) ([]*domain.HighSeasonRule, error)

	// SaveRules replaces the high-season rule collection.
	SaveRules(ctx context.Context, rules []*domain.HighSeasonRule) error

	// GetPackage retrieves a rental package by ID.
	GetPackage(ctx context.Context, id string) (*domain.RentalPackage, error)

	// ListPackages retrieves all rental packages.
	ListPackages(ctx context.Context) ([]*domain.RentalPackage, error)

	// SavePackages replaces the rental package collection.
	SavePackages(ctx context.Context, packages []*domain.RentalPackage) error
}
