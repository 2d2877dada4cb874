package database

import (
	"context"

	"gorm.io/gorm"

	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
)

type CalendarEventRepositoryImpl struct {
	db *gorm.DB
}

func NewCalendarEventRepository(db *gorm.DB) repositories.CalendarEventRepository {
	return &CalendarEventRepositoryImpl{db: db}
}

func (r *CalendarEventRepositoryImpl) Create(ctx context.Context, event *models.CalendarEvent) error {
	return translateError(r.db.WithContext(ctx).Create(event).Error)
}

func (r *CalendarEventRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

func (r *CalendarEventRepositoryImpl) Update(ctx context.Context, event *models.CalendarEvent) error {
	return translateError(r.db.WithContext(ctx).Omit("User").Save(event).Error)
}

func (r *CalendarEventRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.CalendarEvent{}, id)
}

func (r *CalendarEventRepositoryImpl) List(ctx context.Context, filter repositories.EventFilter) ([]*models.CalendarEvent, error) {
	query := r.db.WithContext(ctx).Model(&models.CalendarEvent{})
	if filter.HasRange() {
		query = query.Where("start_time >= ? AND start_time <= ?", filter.From.UTC(), filter.To.UTC())
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var events []*models.CalendarEvent
	err := query.Order("start_time ASC").Order("id ASC").Find(&events).Error
	return events, err
}

func (r *CalendarEventRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CalendarEvent{}).Count(&count).Error
	return count, err
}
