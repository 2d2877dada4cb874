package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/calendar"
	"bizmanager/pkg/utils"
)

// PageHandler renders the HTML screens
type PageHandler struct {
	taskService     services.TaskService
	calendarService services.CalendarService
	contactService  services.ContactService
	carService      services.CarService
	now             func() time.Time
}

func NewPageHandler(taskService services.TaskService, calendarService services.CalendarService, contactService services.ContactService, carService services.CarService) *PageHandler {
	return &PageHandler{
		taskService:     taskService,
		calendarService: calendarService,
		contactService:  contactService,
		carService:      carService,
		now:             utcNow,
	}
}

// page builds the template data shared by every screen
func page(c *fiber.Ctx, title string) fiber.Map {
	data := fiber.Map{"Title": title}
	if user, err := utils.GetUserFromContext(c); err == nil {
		data["User"] = user.Username
	}
	return data
}

func (h *PageHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()

	_, events, err := h.calendarService.EventsForView(ctx, calendar.ViewDay, h.now())
	if err != nil {
		return serviceError(c, err)
	}

	tasks, err := h.taskService.ListTasks(ctx, repositories.TaskFilter{})
	if err != nil {
		return serviceError(c, err)
	}
	open := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsOpen() {
			open = append(open, t)
		}
	}

	data := page(c, "Главная")
	data["Events"] = dto.EventsToEventResponses(events)
	data["Tasks"] = dto.TasksToTaskResponses(open)
	return c.Render("index", data)
}

func (h *PageHandler) Tasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	status, priority := c.Query("status"), c.Query("priority")
	tasks, err := h.taskService.ListTasks(ctx, repositories.TaskFilter{Status: status, Priority: priority})
	if err != nil {
		return serviceError(c, err)
	}

	data := page(c, "Задачи")
	data["Tasks"] = dto.TasksToTaskResponses(tasks)
	data["Status"] = status
	data["Priority"] = priority
	data["Statuses"] = models.TaskStatuses
	data["Priorities"] = models.TaskPriorities
	return c.Render("tasks", data)
}

func (h *PageHandler) Contacts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	category := c.Query("category")
	contacts, err := h.contactService.ListContacts(ctx, repositories.ContactFilter{Category: category})
	if err != nil {
		return serviceError(c, err)
	}

	data := page(c, "Контакты")
	data["Contacts"] = dto.ContactsToContactResponses(contacts)
	data["Category"] = category
	data["Categories"] = models.ContactCategories
	return c.Render("contacts", data)
}

func (h *PageHandler) Warehouse(c *fiber.Ctx) error {
	ctx := c.UserContext()

	status := c.Query("status")
	cars, err := h.carService.ListCars(ctx, repositories.CarFilter{Status: status})
	if err != nil {
		return serviceError(c, err)
	}

	data := page(c, "Склад")
	data["Cars"] = dto.CarsToCarResponses(cars)
	data["Status"] = status
	data["Statuses"] = models.CarStatuses
	return c.Render("warehouse", data)
}

// Catalog is public and lists only cars in stock
func (h *PageHandler) Catalog(c *fiber.Ctx) error {
	ctx := c.UserContext()

	cars, err := h.carService.ListCars(ctx, repositories.CarFilter{Status: models.CarStatusInStock})
	if err != nil {
		return serviceError(c, err)
	}

	data := page(c, "Каталог")
	data["Cars"] = dto.CarsToCarResponses(cars)
	return c.Render("catalog", data)
}

// Calendar renders /calendar/:view; unknown views fall back to month, bad dates to now
func (h *PageHandler) Calendar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	view := calendar.ParseView(c.Params("view"))
	date := dateOrNow(c.Query("date"), h.now())

	window, events, err := h.calendarService.EventsForView(ctx, view, date)
	if err != nil {
		return serviceError(c, err)
	}

	data := page(c, "Календарь")
	data["View"] = string(view)
	data["Date"] = date.Format(utils.DateLayout)
	data["From"] = window.From.Format(utils.DateLayout)
	data["To"] = window.To.Format(utils.DateLayout)
	data["Events"] = dto.EventsToEventResponses(events)
	return c.Render("calendar", data)
}
