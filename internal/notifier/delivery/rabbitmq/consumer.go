package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"ugc-srv/internal/model"
	"ugc-srv/internal/notifier"
	"ugc-srv/pkg/log"
	pkgRabbitMQ "ugc-srv/pkg/rabbitmq"
)

// Consumer drains the notification queue and hands rights events to the
// notifier usecase.
type Consumer struct {
	conn  pkgRabbitMQ.IRabbitMQ
	queue string
	uc    notifier.UseCase
	l     log.Logger
}

// New - Factory
func New(conn pkgRabbitMQ.IRabbitMQ, queue string, uc notifier.UseCase, l log.Logger) (*Consumer, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is required")
	}
	if uc == nil {
		return nil, fmt.Errorf("usecase is required")
	}

	return &Consumer{
		conn:  conn,
		queue: queue,
		uc:    uc,
		l:     l,
	}, nil
}

// Consume declares the queue and starts the delivery loop in a goroutine.
// The loop ends when the context is cancelled or the channel closes.
func (c *Consumer) Consume(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(pkgRabbitMQ.QueueArgs{
		Name:    c.queue,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", c.queue, err)
	}

	deliveries, err := ch.Consume(pkgRabbitMQ.ConsumeArgs{
		Queue: c.queue,
	})
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", c.queue, err)
	}

	go func() {
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					c.l.Warn(ctx, "notifier.delivery.rabbitmq.Consume: delivery channel closed")
					return
				}
				c.handleDelivery(ctx, d)
			}
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.queue)

	return nil
}

// handleDelivery acks every message. Notifications are fire and forget,
// a failed dispatch is logged, not redelivered.
func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	defer func() {
		if err := d.Ack(false); err != nil {
			c.l.Errorf(ctx, "notifier.delivery.rabbitmq.handleDelivery: ack failed: %v", err)
		}
	}()

	var event model.RightsEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.l.Warnf(ctx, "notifier.delivery.rabbitmq.handleDelivery: Invalid message format (skipping): %v", err)
		return
	}

	if event.RequestID == "" || event.ContentID == "" {
		c.l.Warnf(ctx, "notifier.delivery.rabbitmq.handleDelivery: Invalid message: missing required fields (skipping)")
		return
	}

	if err := c.uc.Notify(ctx, event); err != nil {
		c.l.Errorf(ctx, "notifier.delivery.rabbitmq.handleDelivery: usecase Notify failed: %v", err)
	}
}
