package serviceimpl

import (
	"context"

	"bizmanager/domain/ports"
	"bizmanager/pkg/logger"
)

// publishChange emits a change event; errors are logged, never returned
func publishChange(ctx context.Context, publisher ports.EventPublisher, entity, action string, id uint, data any) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, ports.NewChangeEvent(entity, action, id, data)); err != nil {
		logger.WarnContext(ctx, "Failed to publish change event",
			"entity", entity,
			"action", action,
			"id", id,
			"error", err,
		)
	}
}
