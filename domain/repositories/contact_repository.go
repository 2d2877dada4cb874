package repositories

import (
	"context"

	"bizmanager/domain/models"
)

type ContactFilter struct {
	Category string
	UserID   *uint
}

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uint) error
	// List orders by last name, then id
	List(ctx context.Context, filter ContactFilter) ([]*models.Contact, error)
	Count(ctx context.Context) (int64, error)
}
