package repositories

import (
	"context"
	"time"

	"bizmanager/domain/models"
)

// EventFilter restricts start_time to [From, To] when both are set
type EventFilter struct {
	From   *time.Time
	To     *time.Time
	UserID *uint
}

func (f EventFilter) HasRange() bool {
	return f.From != nil && f.To != nil
}

type CalendarEventRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) error
	GetByID(ctx context.Context, id uint) (*models.CalendarEvent, error)
	Update(ctx context.Context, event *models.CalendarEvent) error
	Delete(ctx context.Context, id uint) error
	// List orders by start time, then id
	List(ctx context.Context, filter EventFilter) ([]*models.CalendarEvent, error)
	Count(ctx context.Context) (int64, error)
}
