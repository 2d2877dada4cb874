package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bizmanager/domain/dto"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

type CarHandler struct {
	carService services.CarService
}

func NewCarHandler(carService services.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

func (h *CarHandler) ListCars(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CarFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	cars, err := h.carService.ListCars(ctx, repositories.CarFilter{Status: req.Status})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CarsToCarResponses(cars))
}

func (h *CarHandler) CreateCar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCarRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	car, err := h.carService.CreateCar(ctx, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.CreatedResponse(c, dto.CarToCarResponse(car))
}

func (h *CarHandler) GetCar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrCarNotFound.Error())
	}

	car, err := h.carService.GetCar(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CarToCarResponse(car))
}

func (h *CarHandler) UpdateCar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrCarNotFound.Error())
	}

	var req dto.UpdateCarRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	car, err := h.carService.UpdateCar(ctx, id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CarToCarResponse(car))
}

func (h *CarHandler) DeleteCar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrCarNotFound.Error())
	}

	if err := h.carService.DeleteCar(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return utils.NoContentResponse(c)
}
