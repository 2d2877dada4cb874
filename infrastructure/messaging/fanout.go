// Package messaging combines event publishers behind ports.EventPublisher.
package messaging

import (
	"context"

	"bizmanager/domain/ports"
	"bizmanager/pkg/logger"
)

// Fanout delivers each event to every publisher. A failing publisher is
// logged and skipped; Publish never returns an error.
type Fanout struct {
	publishers []ports.EventPublisher
}

func NewFanout(publishers ...ports.EventPublisher) *Fanout {
	var ps []ports.EventPublisher
	for _, p := range publishers {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return &Fanout{publishers: ps}
}

func (f *Fanout) Publish(ctx context.Context, event *ports.ChangeEvent) error {
	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			logger.WarnContext(ctx, "Failed to publish change event",
				"type", event.Type,
				"id", event.ID,
				"error", err,
			)
		}
	}
	return nil
}
