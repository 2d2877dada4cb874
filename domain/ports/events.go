package ports

import (
	"context"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Change events - emitted after every successful write
// ═══════════════════════════════════════════════════════════════════════════════

const (
	EntityTask    = "task"
	EntityEvent   = "event"
	EntityContact = "contact"
	EntityCar     = "car"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionDueSoon = "due_soon"
)

type ChangeEvent struct {
	Type string    `json:"type"` // "<entity>.<action>"
	ID   uint      `json:"id"`
	Data any       `json:"data,omitempty"`
	At   time.Time `json:"at"`
}

func NewChangeEvent(entity, action string, id uint, data any) *ChangeEvent {
	return &ChangeEvent{
		Type: entity + "." + action,
		ID:   id,
		Data: data,
		At:   time.Now().UTC(),
	}
}

// EventPublisher delivers change events; failures must never fail the write
type EventPublisher interface {
	Publish(ctx context.Context, event *ChangeEvent) error
}
