package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// ConsumeWithContext starts consuming from topics with the given handler.
func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	return c.group.Consume(ctx, topics, handler)
}

// Close closes the consumer group.
func (c *consumerImpl) Close() error {
	return c.group.Close()
}

// Errors returns a channel of errors from the consumer group.
func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}
