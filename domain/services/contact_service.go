package services

import (
	"context"
	"io"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
)

type PhotoUpload struct {
	File        io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type ContactService interface {
	CreateContact(ctx context.Context, ownerID *uint, req *dto.CreateContactRequest) (*models.Contact, error)
	GetContact(ctx context.Context, id uint) (*models.Contact, error)
	ListContacts(ctx context.Context, filter repositories.ContactFilter) ([]*models.Contact, error)
	UpdateContact(ctx context.Context, id uint, req *dto.UpdateContactRequest) (*models.Contact, error)
	DeleteContact(ctx context.Context, id uint) error

	// UploadPhoto stores the image and replaces the contact's previous photo
	UploadPhoto(ctx context.Context, id uint, upload *PhotoUpload) (*models.Contact, error)
}
