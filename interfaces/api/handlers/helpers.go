package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"bizmanager/domain/dto"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

// parseID reads the :id route parameter
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ownerID returns the authenticated user's id, nil for the static login
func ownerID(c *fiber.Ctx) *uint {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return nil
	}
	return user.UserID
}

// parseBody decodes and validates a request body, writing the error response itself
func parseBody(c *fiber.Ctx, req any) (bool, error) {
	ctx := c.UserContext()
	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return false, utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return false, utils.ValidationErrorResponse(c, errs)
	}
	return true, nil
}

// serviceError maps service sentinels to HTTP responses
func serviceError(c *fiber.Ctx, err error) error {
	ctx := c.UserContext()

	var fieldErr *dto.FieldError
	switch {
	case errors.As(err, &fieldErr):
		logger.WarnContext(ctx, "Unparseable field", "field", fieldErr.Field, "error", fieldErr.Err)
		return utils.ValidationErrorResponse(c, map[string]string{fieldErr.Field: "invalid date format"})
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrContactNotFound),
		errors.Is(err, services.ErrCarNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrDuplicateVIN):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidPhoto), errors.Is(err, services.ErrPhotoTooLarge):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrStorageUnavailable):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, utils.ErrCodeInternalError, err.Error(), nil)
	}

	logger.ErrorContext(ctx, "Request failed", "path", c.Path(), "error", err)
	return utils.InternalServerErrorResponse(c)
}
