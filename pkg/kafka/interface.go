package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer defines the interface for the Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// IConsumer defines the interface for a Kafka consumer group.
type IConsumer interface {
	// ConsumeWithContext starts consuming from topics. Blocks until the
	// context is cancelled or the session ends (rebalance).
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	// Close closes the consumer group.
	Close() error
	// Errors returns a channel of errors from the consumer group.
	Errors() <-chan error
}

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewConsumer creates a new Kafka consumer group. Returns the interface.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}
