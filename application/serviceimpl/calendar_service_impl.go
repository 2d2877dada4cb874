package serviceimpl

import (
	"context"
	"errors"
	"time"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/ports"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/calendar"
	"bizmanager/pkg/logger"
)

type CalendarServiceImpl struct {
	eventRepo repositories.CalendarEventRepository
	publisher ports.EventPublisher
}

func NewCalendarService(eventRepo repositories.CalendarEventRepository, publisher ports.EventPublisher) services.CalendarService {
	return &CalendarServiceImpl{
		eventRepo: eventRepo,
		publisher: publisher,
	}
}

func mapEventErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return services.ErrEventNotFound
	}
	return err
}

func (s *CalendarServiceImpl) CreateEvent(ctx context.Context, ownerID *uint, req *dto.CreateEventRequest) (*models.CalendarEvent, error) {
	event, err := dto.CreateEventRequestToEvent(req)
	if err != nil {
		return nil, err
	}
	event.UserID = ownerID

	if err := s.eventRepo.Create(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to create event", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Event created", "event_id", event.ID, "start", event.StartTime)
	publishChange(ctx, s.publisher, ports.EntityEvent, ports.ActionCreated, event.ID, dto.EventToEventResponse(event))
	return event, nil
}

func (s *CalendarServiceImpl) GetEvent(ctx context.Context, id uint) (*models.CalendarEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapEventErr(err)
	}
	return event, nil
}

func (s *CalendarServiceImpl) ListEvents(ctx context.Context, filter repositories.EventFilter) ([]*models.CalendarEvent, error) {
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list events", "error", err)
		return nil, err
	}
	return events, nil
}

func (s *CalendarServiceImpl) UpdateEvent(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*models.CalendarEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Event not found for update", "event_id", id)
		return nil, mapEventErr(err)
	}

	if err := dto.ApplyEventUpdate(event, req); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to update event", "event_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Event updated", "event_id", id)
	publishChange(ctx, s.publisher, ports.EntityEvent, ports.ActionUpdated, event.ID, dto.EventToEventResponse(event))
	return event, nil
}

func (s *CalendarServiceImpl) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.ErrorContext(ctx, "Failed to delete event", "event_id", id, "error", err)
		}
		return mapEventErr(err)
	}

	logger.InfoContext(ctx, "Event deleted", "event_id", id)
	publishChange(ctx, s.publisher, ports.EntityEvent, ports.ActionDeleted, id, nil)
	return nil
}

func (s *CalendarServiceImpl) EventsForView(ctx context.Context, view calendar.View, date time.Time) (calendar.Window, []*models.CalendarEvent, error) {
	window := calendar.ForView(view, date.UTC())
	events, err := s.eventRepo.List(ctx, repositories.EventFilter{From: &window.From, To: &window.To})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load calendar view", "view", view, "error", err)
		return window, nil, err
	}
	return window, events, nil
}
