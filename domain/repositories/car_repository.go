package repositories

import (
	"context"

	"bizmanager/domain/models"
)

type CarFilter struct {
	Status string
}

type CarRepository interface {
	// Create returns ErrDuplicate when the VIN is taken
	Create(ctx context.Context, car *models.Car) error
	GetByID(ctx context.Context, id uint) (*models.Car, error)
	Update(ctx context.Context, car *models.Car) error
	Delete(ctx context.Context, id uint) error
	// List orders by brand, model, then id
	List(ctx context.Context, filter CarFilter) ([]*models.Car, error)
	Count(ctx context.Context) (int64, error)
}
