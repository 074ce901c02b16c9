package kv

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// PartnerRepository is a collection-store implementation of
// repository.PartnerRepository.
type PartnerRepository struct {
	store kvstore.Store
}

// NewPartnerRepository creates a new PartnerRepository.
func NewPartnerRepository(store kvstore.Store) *PartnerRepository {
	return &PartnerRepository{store: store}
}

// Create persists a new partner.
func (r *PartnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	return appendOne(ctx, r.store, kvstore.CollectionPartners, partner)
}

// GetByID retrieves a partner by ID.
func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	partners, _, err := loadAll[domain.Partner](ctx, r.store, kvstore.CollectionPartners)
	if err != nil {
		return nil, err
	}
	for _, partner := range partners {
		if partner.ID == id {
			return partner, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAll retrieves all partners.
func (r *PartnerRepository) GetAll(ctx context.Context) ([]*domain.Partner, error) {
	partners, _, err := loadAll[domain.Partner](ctx, r.store, kvstore.CollectionPartners)
	return partners, err
}

// CustomerRepository is a collection-store implementation of
// repository.CustomerRepository.
type CustomerRepository struct {
	store kvstore.Store
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(store kvstore.Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

// Create persists a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return appendOne(ctx, r.store, kvstore.CollectionCustomers, customer)
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	customers, _, err := loadAll[domain.Customer](ctx, r.store, kvstore.CollectionCustomers)
	if err != nil {
		return nil, err
	}
	for _, customer := range customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAll retrieves all customers.
func (r *CustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	customers, _, err := loadAll[domain.Customer](ctx, r.store, kvstore.CollectionCustomers)
	return customers, err
}

// DriverRepository is a collection-store implementation of
// repository.DriverRepository.
type DriverRepository struct {
	store kvstore.Store
}

// NewDriverRepository creates a new DriverRepository.
func NewDriverRepository(store kvstore.Store) *DriverRepository {
	return &DriverRepository{store: store}
}

// Create persists a new driver.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	return appendOne(ctx, r.store, kvstore.CollectionDrivers, driver)
}

// GetByID retrieves a driver by ID.
func (r *DriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	drivers, _, err := loadAll[domain.Driver](ctx, r.store, kvstore.CollectionDrivers)
	if err != nil {
		return nil, err
	}
	for _, driver := range drivers {
		if driver.ID == id {
			return driver, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAll retrieves all drivers.
func (r *DriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	drivers, _, err := loadAll[domain.Driver](ctx, r.store, kvstore.CollectionDrivers)
	return drivers, err
}
