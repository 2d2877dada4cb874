package database

import (
	"context"

	"gorm.io/gorm"

	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
)

type CarRepositoryImpl struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) repositories.CarRepository {
	return &CarRepositoryImpl{db: db}
}

func (r *CarRepositoryImpl) Create(ctx context.Context, car *models.Car) error {
	return translateError(r.db.WithContext(ctx).Create(car).Error)
}

func (r *CarRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &car, nil
}

func (r *CarRepositoryImpl) Update(ctx context.Context, car *models.Car) error {
	return translateError(r.db.WithContext(ctx).Save(car).Error)
}

func (r *CarRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Car{}, id)
}

func (r *CarRepositoryImpl) List(ctx context.Context, filter repositories.CarFilter) ([]*models.Car, error) {
	query := r.db.WithContext(ctx).Model(&models.Car{})
	if repositories.IsFilterSet(filter.Status) {
		query = query.Where("status = ?", filter.Status)
	}

	var cars []*models.Car
	err := query.Order("brand ASC").Order("model ASC").Order("id ASC").Find(&cars).Error
	return cars, err
}

func (r *CarRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Car{}).Count(&count).Error
	return count, err
}
