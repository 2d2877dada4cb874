package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"bizmanager/domain/dto"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/calendar"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

type EventHandler struct {
	calendarService services.CalendarService
	now             func() time.Time
}

func NewEventHandler(calendarService services.CalendarService) *EventHandler {
	return &EventHandler{
		calendarService: calendarService,
		now:             utcNow,
	}
}

// utcNow reads the clock in the zone stored times and parsed dates use
func utcNow() time.Time {
	return time.Now().UTC()
}

// rangeFromQuery returns ok=false unless both bounds are present and parse
func rangeFromQuery(start, end string) (time.Time, time.Time, bool) {
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, false
	}
	from, err := utils.ParseDateTime(start)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := utils.ParseDateTime(end)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// dateOrNow parses a calendar date, falling back to now
func dateOrNow(value string, now time.Time) time.Time {
	if value == "" {
		return now
	}
	d, err := utils.ParseDate(value)
	if err != nil {
		return now
	}
	return d
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.EventFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	filter := repositories.EventFilter{UserID: req.UserID}
	if from, to, ok := rangeFromQuery(req.Start, req.End); ok {
		filter.From, filter.To = &from, &to
	} else {
		if req.Start != "" || req.End != "" {
			logger.InfoContext(ctx, "Event range incomplete or malformed, ignoring it",
				"start", req.Start,
				"end", req.End,
			)
		}
		if req.View != "" {
			window := calendar.ForView(calendar.ParseView(req.View), dateOrNow(req.Date, h.now()))
			filter.From, filter.To = &window.From, &window.To
		}
	}

	events, err := h.calendarService.ListEvents(ctx, filter)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.EventsToEventResponses(events))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateEventRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	event, err := h.calendarService.CreateEvent(ctx, ownerID(c), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.CreatedResponse(c, dto.EventToEventResponse(event))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrEventNotFound.Error())
	}

	event, err := h.calendarService.GetEvent(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.EventToEventResponse(event))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrEventNotFound.Error())
	}

	var req dto.UpdateEventRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	event, err := h.calendarService.UpdateEvent(ctx, id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.EventToEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrEventNotFound.Error())
	}

	if err := h.calendarService.DeleteEvent(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return utils.NoContentResponse(c)
}
