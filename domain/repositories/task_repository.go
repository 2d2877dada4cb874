package repositories

import (
	"context"
	"time"

	"bizmanager/domain/models"
)

type TaskFilter struct {
	Status   string
	Priority string
	UserID   *uint
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	// List orders by due date (nulls last), then id
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	// ListDueBetween returns open tasks whose due date falls in [from, to]
	ListDueBetween(ctx context.Context, from, to time.Time) ([]*models.Task, error)
	Count(ctx context.Context) (int64, error)
}
