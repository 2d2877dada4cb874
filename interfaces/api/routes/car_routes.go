package routes

import (
	"github.com/gofiber/fiber/v2"

	"bizmanager/interfaces/api/handlers"
)

func SetupCarRoutes(api fiber.Router, h *handlers.Handlers) {
	cars := api.Group("/cars")
	cars.Get("/", h.CarHandler.ListCars)
	cars.Post("/", h.CarHandler.CreateCar)
	cars.Get("/:id", h.CarHandler.GetCar)
	cars.Put("/:id", h.CarHandler.UpdateCar)
	cars.Delete("/:id", h.CarHandler.DeleteCar)
}
