package nsq

import (
	"context"
	"fmt"

	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/models"
)

// Publisher is satisfied by *nsq.Producer
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// NSQGateway announces dataset changes over NSQ
type NSQGateway struct {
	publisher Publisher
	topic     string
}

// NewNSQGateway creates a new NSQ gateway
func NewNSQGateway(publisher Publisher, topic string) *NSQGateway {
	return &NSQGateway{
		publisher: publisher,
		topic:     topic,
	}
}

// PublishSeeded publishes a seeded event. Without a publisher it only logs.
func (g *NSQGateway) PublishSeeded(ctx context.Context, event *models.SeededEvent) error {
	if g.publisher == nil {
		logger.DebugCtx(ctx, "NSQ not configured, skipping seeded event", logger.Int("records", event.Count))
		return nil
	}

	if err := g.publisher.Publish(g.topic, event); err != nil {
		return fmt.Errorf("failed to publish seeded event to %s: %w", g.topic, err)
	}
	return nil
}
