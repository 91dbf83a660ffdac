package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueDeclare declares a queue.
func (c *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return c.ch.QueueDeclare(queue.spread())
}

// Publish publishes a message.
func (c *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return c.ch.PublishWithContext(publish.spread(ctx))
}

// Consume starts delivering messages from a queue.
func (c *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	return c.ch.Consume(consume.spread())
}

// Close closes the channel.
func (c *channelImpl) Close() error {
	return c.ch.Close()
}
