package dto

import (
	"bizmanager/domain/models"
	"bizmanager/pkg/utils"
)

// Event requests accept both the stored names (start_time) and the
// serialized ones (start) so a fetched event can be posted back.
type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	StartTime   *string `json:"start_time"`
	Start       *string `json:"start"`
	EndTime     *string `json:"end_time"`
	End         *string `json:"end"`
	EventType   string  `json:"event_type" validate:"omitempty,oneof=meeting call task reminder"`
	Type        string  `json:"type" validate:"omitempty,oneof=meeting call task reminder"`
	Location    string  `json:"location"`
	Status      string  `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=200"`
	Description *string `json:"description"`
	StartTime   *string `json:"start_time"`
	Start       *string `json:"start"`
	EndTime     *string `json:"end_time"`
	End         *string `json:"end"`
	EventType   *string `json:"event_type" validate:"omitnil,oneof=meeting call task reminder"`
	Type        *string `json:"type" validate:"omitnil,oneof=meeting call task reminder"`
	Location    *string `json:"location"`
	Status      *string `json:"status" validate:"omitnil,oneof=scheduled in_progress completed cancelled"`
}

type EventFilterRequest struct {
	Start  string `query:"start"`
	End    string `query:"end"`
	View   string `query:"view"`
	Date   string `query:"date"`
	UserID *uint  `query:"user_id"`
}

type EventResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	UserID      *uint  `json:"user_id"`
}

func firstString(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func CreateEventRequestToEvent(req *CreateEventRequest) (*models.CalendarEvent, error) {
	start := firstString(req.StartTime, req.Start)
	if start == nil || *start == "" {
		return nil, &FieldError{Field: "start_time", Err: utils.ErrInvalidTime}
	}
	end := firstString(req.EndTime, req.End)
	if end == nil || *end == "" {
		return nil, &FieldError{Field: "end_time", Err: utils.ErrInvalidTime}
	}
	startTime, err := parseDateTime("start_time", *start)
	if err != nil {
		return nil, err
	}
	endTime, err := parseDateTime("end_time", *end)
	if err != nil {
		return nil, err
	}

	event := &models.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		EventType:   firstNonEmpty(req.EventType, req.Type, models.EventTypeMeeting),
		Location:    req.Location,
		Status:      firstNonEmpty(req.Status, models.EventStatusScheduled),
	}
	return event, nil
}

func ApplyEventUpdate(event *models.CalendarEvent, req *UpdateEventRequest) error {
	assign(&event.Title, req.Title)
	assign(&event.Description, req.Description)
	assign(&event.EventType, firstString(req.EventType, req.Type))
	assign(&event.Location, req.Location)
	assign(&event.Status, req.Status)

	start, err := parseOptionalDateTime("start_time", firstString(req.StartTime, req.Start))
	if err != nil {
		return err
	}
	if start != nil {
		event.StartTime = *start
	}
	end, err := parseOptionalDateTime("end_time", firstString(req.EndTime, req.End))
	if err != nil {
		return err
	}
	if end != nil {
		event.EndTime = *end
	}
	return nil
}

func EventToEventResponse(event *models.CalendarEvent) *EventResponse {
	if event == nil {
		return nil
	}
	return &EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Start:       utils.FormatDateTime(event.StartTime),
		End:         utils.FormatDateTime(event.EndTime),
		Type:        event.EventType,
		Location:    event.Location,
		Status:      event.Status,
		UserID:      event.UserID,
	}
}

func EventsToEventResponses(events []*models.CalendarEvent) []*EventResponse {
	out := make([]*EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventToEventResponse(e))
	}
	return out
}
