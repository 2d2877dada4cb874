package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/ports"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

type ContactServiceImpl struct {
	contactRepo   repositories.ContactRepository
	storage       ports.StoragePort
	publisher     ports.EventPublisher
	maxUploadSize int64
}

// NewContactService accepts a nil storage; photo uploads then fail with ErrStorageUnavailable
func NewContactService(contactRepo repositories.ContactRepository, storage ports.StoragePort, publisher ports.EventPublisher, maxUploadSize int64) services.ContactService {
	return &ContactServiceImpl{
		contactRepo:   contactRepo,
		storage:       storage,
		publisher:     publisher,
		maxUploadSize: maxUploadSize,
	}
}

func mapContactErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return services.ErrContactNotFound
	}
	return err
}

func (s *ContactServiceImpl) CreateContact(ctx context.Context, ownerID *uint, req *dto.CreateContactRequest) (*models.Contact, error) {
	contact, err := dto.CreateContactRequestToContact(req)
	if err != nil {
		return nil, err
	}
	contact.UserID = ownerID

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		logger.ErrorContext(ctx, "Failed to create contact", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Contact created", "contact_id", contact.ID)
	publishChange(ctx, s.publisher, ports.EntityContact, ports.ActionCreated, contact.ID, dto.ContactToContactResponse(contact))
	return contact, nil
}

func (s *ContactServiceImpl) GetContact(ctx context.Context, id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapContactErr(err)
	}
	return contact, nil
}

func (s *ContactServiceImpl) ListContacts(ctx context.Context, filter repositories.ContactFilter) ([]*models.Contact, error) {
	contacts, err := s.contactRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list contacts", "error", err)
		return nil, err
	}
	return contacts, nil
}

func (s *ContactServiceImpl) UpdateContact(ctx context.Context, id uint, req *dto.UpdateContactRequest) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Contact not found for update", "contact_id", id)
		return nil, mapContactErr(err)
	}

	if err := dto.ApplyContactUpdate(contact, req); err != nil {
		return nil, err
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		logger.ErrorContext(ctx, "Failed to update contact", "contact_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Contact updated", "contact_id", id)
	publishChange(ctx, s.publisher, ports.EntityContact, ports.ActionUpdated, contact.ID, dto.ContactToContactResponse(contact))
	return contact, nil
}

func (s *ContactServiceImpl) DeleteContact(ctx context.Context, id uint) error {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return mapContactErr(err)
	}

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.ErrorContext(ctx, "Failed to delete contact", "contact_id", id, "error", err)
		}
		return mapContactErr(err)
	}

	s.removePhoto(ctx, contact.Photo)

	logger.InfoContext(ctx, "Contact deleted", "contact_id", id)
	publishChange(ctx, s.publisher, ports.EntityContact, ports.ActionDeleted, id, nil)
	return nil
}

// removePhoto deletes a stored photo; URLs not owned by the storage are left alone
func (s *ContactServiceImpl) removePhoto(ctx context.Context, url string) {
	if url == "" || s.storage == nil {
		return
	}
	key, ok := s.storage.KeyFromURL(url)
	if !ok {
		return
	}
	if err := s.storage.DeleteFile(ctx, key); err != nil {
		logger.WarnContext(ctx, "Failed to delete contact photo", "path", key, "error", err)
	}
}

func (s *ContactServiceImpl) UploadPhoto(ctx context.Context, id uint, upload *services.PhotoUpload) (*models.Contact, error) {
	if s.storage == nil {
		return nil, services.ErrStorageUnavailable
	}

	ext := utils.FileExtension(upload.FileName)
	if ext == "" || !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, services.ErrInvalidPhoto
	}
	if s.maxUploadSize > 0 && upload.Size > s.maxUploadSize {
		return nil, services.ErrPhotoTooLarge
	}

	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapContactErr(err)
	}

	name := slug.Make(contact.FullName())
	if name == "" {
		name = "photo"
	}
	path := fmt.Sprintf("%s/%d/%s-%s%s", ports.ContactPhotoPrefix, contact.ID, name, uuid.NewString(), ext)

	url, err := s.storage.UploadFile(ctx, upload.File, upload.Size, path, upload.ContentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to store contact photo", "contact_id", id, "provider", s.storage.GetProviderName(), "error", err)
		return nil, err
	}

	previous := contact.Photo
	contact.Photo = url
	if err := s.contactRepo.Update(ctx, contact); err != nil {
		logger.ErrorContext(ctx, "Failed to save contact photo", "contact_id", id, "error", err)
		if delErr := s.storage.DeleteFile(ctx, path); delErr != nil {
			logger.WarnContext(ctx, "Failed to remove orphaned photo", "path", path, "error", delErr)
		}
		return nil, err
	}
	s.removePhoto(ctx, previous)

	logger.InfoContext(ctx, "Contact photo uploaded", "contact_id", id, "path", path)
	publishChange(ctx, s.publisher, ports.EntityContact, ports.ActionUpdated, contact.ID, dto.ContactToContactResponse(contact))
	return contact, nil
}
