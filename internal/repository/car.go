package repository

import (
	"context"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
)

// CarRepository defines the persistence operations for fleet cars.
type CarRepository interface {
	// Create persists a new car.
	Create(ctx context.Context, car *domain.Car) error

	// GetByID retrieves a car by ID.
	GetByID(ctx context.Context, id string) (*domain.Car, error)

	// GetAll retrieves all cars.
	GetAll(ctx context.Context) ([]*domain.Car, error)

	// Update updates an existing car.
	Update(ctx context.Context, car *domain.Car) error
}
