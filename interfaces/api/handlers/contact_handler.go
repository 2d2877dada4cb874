package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bizmanager/domain/dto"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

const photoFormField = "photo"

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ContactFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	contacts, err := h.contactService.ListContacts(ctx, repositories.ContactFilter{
		Category: req.Category,
		UserID:   req.UserID,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ContactsToContactResponses(contacts))
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateContactRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	contact, err := h.contactService.CreateContact(ctx, ownerID(c), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.CreatedResponse(c, dto.ContactToContactResponse(contact))
}

func (h *ContactHandler) GetContact(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrContactNotFound.Error())
	}

	contact, err := h.contactService.GetContact(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ContactToContactResponse(contact))
}

func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrContactNotFound.Error())
	}

	var req dto.UpdateContactRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	contact, err := h.contactService.UpdateContact(ctx, id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ContactToContactResponse(contact))
}

func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrContactNotFound.Error())
	}

	if err := h.contactService.DeleteContact(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return utils.NoContentResponse(c)
}

// UploadPhoto accepts a multipart "photo" file and stores it as the contact's photo
func (h *ContactHandler) UploadPhoto(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrContactNotFound.Error())
	}

	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		logger.WarnContext(ctx, "Photo file missing", "contact_id", id, "error", err)
		return utils.ValidationErrorResponse(c, map[string]string{photoFormField: "is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded photo", "contact_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer file.Close()

	contact, err := h.contactService.UploadPhoto(ctx, id, &services.PhotoUpload{
		File:        file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ContactToContactResponse(contact))
}
