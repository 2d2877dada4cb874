package database

import (
	"context"

	"gorm.io/gorm"

	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
)

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) repositories.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *models.Contact) error {
	return translateError(r.db.WithContext(ctx).Create(contact).Error)
}

func (r *ContactRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) Update(ctx context.Context, contact *models.Contact) error {
	return translateError(r.db.WithContext(ctx).Omit("User").Save(contact).Error)
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Contact{}, id)
}

func (r *ContactRepositoryImpl) List(ctx context.Context, filter repositories.ContactFilter) ([]*models.Contact, error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{})
	if repositories.IsFilterSet(filter.Category) {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var contacts []*models.Contact
	err := query.Order("last_name ASC").Order("id ASC").Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contact{}).Count(&count).Error
	return count, err
}
