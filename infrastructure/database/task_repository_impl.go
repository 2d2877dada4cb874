package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return translateError(r.db.WithContext(ctx).Create(task).Error)
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return translateError(r.db.WithContext(ctx).Omit("User").Save(task).Error)
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Task{}, id)
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{})
	if repositories.IsFilterSet(filter.Status) {
		query = query.Where("status = ?", filter.Status)
	}
	if repositories.IsFilterSet(filter.Priority) {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var tasks []*models.Task
	err := query.
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END").
		Order("due_date ASC").
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListDueBetween(ctx context.Context, from, to time.Time) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", from, to).
		Where("status NOT IN ?", []string{models.TaskStatusCompleted, models.TaskStatusCancelled}).
		Order("due_date ASC").
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&count).Error
	return count, err
}
