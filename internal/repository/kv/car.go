package kv

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/kvstore"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// CarRepository is a collection-store implementation of
// repository.CarRepository.
type CarRepository struct {
	store kvstore.Store
}

// NewCarRepository creates a new CarRepository.
func NewCarRepository(store kvstore.Store) *CarRepository {
	return &CarRepository{store: store}
}

// Create persists a new car.
func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	return appendOne(ctx, r.store, kvstore.CollectionCars, car)
}

// GetByID retrieves a car by ID.
func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	cars, _, err := loadAll[domain.Car](ctx, r.store, kvstore.CollectionCars)
	if err != nil {
		return nil, err
	}
	for _, car := range cars {
		if car.ID == id {
			return car, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAll retrieves all cars.
func (r *CarRepository) GetAll(ctx context.Context) ([]*domain.Car, error) {
	cars, _, err := loadAll[domain.Car](ctx, r.store, kvstore.CollectionCars)
	return cars, err
}

// Update updates an existing car.
func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	cars, version, err := loadAll[domain.Car](ctx, r.store, kvstore.CollectionCars)
	if err != nil {
		return err
	}
	for i, existing := range cars {
		if existing.ID == car.ID {
			cars[i] = car
			return saveAll(ctx, r.store, kvstore.CollectionCars, cars, version)
		}
	}
	return repository.ErrNotFound
}
