package repository

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
)

// PartnerRepository defines the persistence operations for investor partners.
type PartnerRepository interface {
	// Create persists a new partner.
	Create(ctx context.Context, partner *domain.Partner) error

	// GetByID retrieves a partner by ID.
	GetByID(ctx context.Context, id string) (*domain.Partner, error)

	// GetAll retrieves all partners.
	GetAll(ctx context.Context) ([]*domain.Partner, error)
}

// CustomerRepository defines the persistence operations for customers.
type CustomerRepository interface {
	// Create persists a new customer.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by ID.
	GetByID(ctx context.Context, id string) (*domain.Customer, error)

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]*domain.Customer, error)
}

// DriverRepository defines the persistence operations for chauffeurs.
type DriverRepository interface {
	// Create persists a new driver.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (*domain.Driver, error)

	// GetAll retrieves all drivers.
	GetAll(ctx context.Context) ([]*domain.Driver, error)
}
