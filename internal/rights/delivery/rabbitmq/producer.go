package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"ugc-srv/internal/model"
	"ugc-srv/internal/rights"
	"ugc-srv/pkg/log"
	pkgrabbitmq "ugc-srv/pkg/rabbitmq"
)

type producer struct {
	conn  pkgrabbitmq.IRabbitMQ
	queue string
	l     log.Logger
}

// NewProducer declares the notification queue and returns a publisher for
// rights events.
func NewProducer(conn pkgrabbitmq.IRabbitMQ, queue string, l log.Logger) (rights.Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rights.rabbitmq.NewProducer: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(pkgrabbitmq.QueueArgs{
		Name:    queue,
		Durable: true,
	}); err != nil {
		return nil, fmt.Errorf("rights.rabbitmq.NewProducer: declare queue: %w", err)
	}

	return &producer{conn: conn, queue: queue, l: l}, nil
}

// PublishRightsEvent pushes one event onto the notification queue.
func (p *producer) PublishRightsEvent(ctx context.Context, event model.RightsEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("PublishRightsEvent: marshal: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("PublishRightsEvent: channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Publish(ctx, pkgrabbitmq.PublishArgs{
		RoutingKey: p.queue,
		Msg: pkgrabbitmq.Publishing{
			ContentType:  "application/json",
			DeliveryMode: 2, // persistent
			Body:         body,
		},
	}); err != nil {
		return fmt.Errorf("PublishRightsEvent: publish: %w", err)
	}

	return nil
}
