package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"bizmanager/domain/ports"
	"bizmanager/pkg/logger"
)

// Publisher sends change events to JetStream
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) ports.EventPublisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, event *ports.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := Subject(event.Type)
	ack, err := p.client.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	logger.DebugContext(ctx, "Change event published",
		"subject", subject,
		"id", event.ID,
		"sequence", ack.Sequence,
	)
	return nil
}
